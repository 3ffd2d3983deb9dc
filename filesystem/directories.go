package filesystem

import (
	"errors"
	"os"
)

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0o755)
}

func IsDirectory(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.IsDir()
}

// FileExists reports whether anything exists at path.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}
