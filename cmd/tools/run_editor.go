package tools

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sethmckilla/mckilla/config"
)

var ErrNoEditor = errors.New("no editor configured")

// RunEditor opens path in the editor from `tools.editor`, or $EDITOR when
// that key is unset, attached to the current terminal.
func RunEditor(path string) error {
	editor, err := findEditor(os.Getenv)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor '%s': %w", editor, err)
	}

	return nil
}

func findEditor(getenv func(string) string) (string, error) {
	name, ok := config.Editor()
	if !ok {
		name = getenv("EDITOR")
	}

	if name == "" {
		return "", fmt.Errorf("%w: set '%s' or EDITOR", ErrNoEditor, config.KeyEditor)
	}

	return exec.LookPath(name)
}
