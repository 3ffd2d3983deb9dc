package data

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/sethmckilla/mckilla/util/slices"
	"github.com/yuin/goldmark/util"
	"gopkg.in/yaml.v2"
)

var (
	ErrNoFrontMatter           = errors.New("no front matter")
	ErrUnterminatedFrontMatter = errors.New("no front matter ending indicator")
	ErrMissingDatetime         = errors.New("field 'datetime' missing in front matter")
)

// postNamespace scopes the name based UUIDs derived from post paths.
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://mckilla.dev/posts/"))

// FrontMatter is the YAML shape of a post header.
type FrontMatter struct {
	Title       string       `yaml:"title"`
	Author      string       `yaml:"author,omitempty"`
	Datetime    YamlDatetime `yaml:"datetime"`
	Slug        string       `yaml:"postSlug,omitempty"`
	Featured    bool         `yaml:"featured,omitempty"`
	Draft       bool         `yaml:"draft"`
	Tags        TagList      `yaml:"tags,omitempty"`
	OGImage     string       `yaml:"ogImage,omitempty"`
	Description string       `yaml:"description,omitempty"`
	GUID        string       `yaml:"guid,omitempty"`
}

// ReadFrontMatter decodes the header of source into post and returns the
// remaining body.
func ReadFrontMatter(post *Post, source []byte, opts *StoreOptions) ([]byte, error) {
	fmSource, mdSource, err := SplitFrontMatterSource(source)
	if err != nil {
		return source, fmt.Errorf("read front matter: %w", err)
	}

	if fmSource == nil {
		return source, ErrNoFrontMatter
	}

	fm := FrontMatter{}

	err = yaml.Unmarshal(fmSource, &fm)
	if err != nil {
		return source, fmt.Errorf("parse YAML: %w", err)
	}

	if time.Time(fm.Datetime).IsZero() {
		return source, ErrMissingDatetime
	}

	post.Frontmatter = Frontmatter{
		Title:       fm.Title,
		Author:      fm.Author,
		Datetime:    time.Time(fm.Datetime),
		Slug:        Slugify(fm.Slug),
		Featured:    fm.Featured,
		Draft:       fm.Draft,
		Tags:        []string(fm.Tags),
		OGImage:     fm.OGImage,
		Description: fm.Description,
	}

	if post.Frontmatter.Author == "" && opts != nil {
		post.Frontmatter.Author = opts.DefaultAuthor
	}

	if post.Frontmatter.Slug == "" {
		post.Frontmatter.Slug = Slugify(fm.Title)
	}

	if fm.GUID != "" {
		post.ID, err = uuid.Parse(fm.GUID)
		if err != nil {
			return source, fmt.Errorf("parse guid '%s': %w", fm.GUID, err)
		}
	}

	return mdSource, nil
}

// ParsePost builds a post from the raw markdown source found at path.
// Without a guid the ID is derived from path.
func ParsePost(path string, source []byte, opts *StoreOptions) (Post, error) {
	return parsePost(path, path, source, opts)
}

// parsePost derives the fallback ID from idPath, which may differ from
// the file system path, e.g. relative to the store root.
func parsePost(path, idPath string, source []byte, opts *StoreOptions) (Post, error) {
	post := Post{
		Path: path,
	}

	body, err := ReadFrontMatter(&post, source, opts)
	if err != nil {
		return Post{}, err
	}

	if post.ID == uuid.Nil {
		post.ID = PostID(idPath)
	}

	post.Content = string(body)

	return post, nil
}

// PostID returns the name based UUID of a post source path. Separators
// are normalized, so the ID is the same on every platform.
func PostID(path string) uuid.UUID {
	return uuid.NewSHA1(postNamespace, []byte(filepath.ToSlash(filepath.Clean(path))))
}

// YamlDatetime accepts any timestamp layout dateparse understands.
type YamlDatetime time.Time

func (t *YamlDatetime) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var txt string
	err := unmarshal(&txt)
	if err != nil {
		return err
	}

	date, err := dateparse.ParseStrict(txt)
	if err != nil {
		return fmt.Errorf("parse datetime '%s': %w", txt, err)
	}

	*t = YamlDatetime(date)
	return nil
}

func (t YamlDatetime) MarshalYAML() (interface{}, error) {
	return time.Time(t).Format(time.RFC3339), nil
}

// TagList is either a YAML sequence of strings or a single comma
// separated string.
type TagList []string

func (l *TagList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*l = nil
	case string:
		*l = splitTags(v)
	case []interface{}:
		tags, rest := slices.PartitionStrings(v)
		if len(rest) > 0 {
			return fmt.Errorf("tags must be strings, got %v", rest)
		}
		*l = tags
	default:
		return fmt.Errorf("unsupported type for 'tags': %T", raw)
	}

	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range bytes.Split([]byte(s), []byte{','}) {
		if tag := bytes.TrimSpace(part); len(tag) > 0 {
			tags = append(tags, string(tag))
		}
	}

	return tags
}

// SplitFrontMatterSource separates a leading '---' delimited block from
// the rest of source. A source without the opening marker has no front
// matter and is returned as body.
func SplitFrontMatterSource(source []byte) ([]byte, []byte, error) {
	nSkipWhite := util.FirstNonSpacePosition(source)
	if nSkipWhite < 0 || !startsWithFrontMatterMarker(source[nSkipWhite:]) {
		// Assume no front-matter
		return nil, source, nil
	}

	startPos := nSkipWhite + 3
	endPos, ok := findEndPos(source[startPos:])
	if !ok {
		return nil, source, ErrUnterminatedFrontMatter
	}
	endPos += startPos

	body := bytes.TrimLeft(source[endPos+3:], "\r\n")

	return source[startPos:endPos], body, nil
}

// findEndPos locates a closing marker at the start of a line.
func findEndPos(source []byte) (int, bool) {
	for i := 1; i+3 <= len(source); i++ {
		if source[i-1] == '\n' && startsWithFrontMatterMarker(source[i:]) {
			return i, true
		}
	}

	return 0, false
}

// startsWithFrontMatterMarker matches a line that is exactly "---".
func startsWithFrontMatterMarker(source []byte) bool {
	rest, ok := bytes.CutPrefix(source, []byte("---"))
	if !ok {
		return false
	}

	rest = bytes.TrimPrefix(rest, []byte{'\r'})

	return len(rest) == 0 || rest[0] == '\n'
}
