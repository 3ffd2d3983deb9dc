package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrDuplicatePost reports two posts sharing an ID or a slug.
var ErrDuplicatePost = errors.New("duplicate post")

type StoreOptions struct {
	DefaultAuthor string   // Used for posts without an author
	Extensions    []string // Lower case, with dot; defaults to .md and .markdown
}

func (o *StoreOptions) extensions() []string {
	if o == nil || len(o.Extensions) == 0 {
		return []string{".md", ".markdown"}
	}

	return o.Extensions
}

// Store holds every post found below a content directory. It is read only
// once constructed.
type Store struct {
	RootDirectory string
	posts         []Post
	tagBySlug     map[string]Tag
	options       *StoreOptions
}

func NewStore(rootDirectory string, options *StoreOptions) (*Store, error) {
	store := &Store{
		RootDirectory: rootDirectory,
		tagBySlug:     make(map[string]Tag),
		options:       options,
	}

	var err error
	store.posts, err = store.LoadPosts(rootDirectory)
	if err != nil {
		return nil, fmt.Errorf("load posts failed: %w", err)
	}

	if err := checkUnique(store.posts); err != nil {
		return nil, err
	}

	for _, post := range store.posts {
		for _, raw := range post.Frontmatter.Tags {
			tag := Tag{Raw: raw}
			slug := tag.Normalize()
			if _, ok := store.tagBySlug[slug]; !ok {
				store.tagBySlug[slug] = tag
			}
		}
	}

	return store, nil
}

// Posts returns a copy of all posts, drafts included, in file order.
func (s *Store) Posts() []Post {
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

func (s *Store) Len() int {
	return len(s.posts)
}

func (s *Store) PostBySlug(slug string) (Post, bool) {
	slug = Slugify(slug)
	for _, post := range s.posts {
		if post.Frontmatter.Slug == slug {
			return post, true
		}
	}

	return Post{}, false
}

func (s *Store) PostByID(id uuid.UUID) (Post, bool) {
	for _, post := range s.posts {
		if post.ID == id {
			return post, true
		}
	}

	return Post{}, false
}

func (s *Store) TagByName(name string) (Tag, bool) {
	if tag, ok := s.tagBySlug[Slugify(name)]; ok {
		return tag, true
	}

	return Tag{}, false
}

func (s *Store) LoadPosts(rootDirectory string) ([]Post, error) {
	var posts []Post

	err := filepath.WalkDir(rootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !s.isPostFile(path) {
			return nil
		}

		post, err := s.LoadPost(path)
		if err != nil {
			return err
		}

		posts = append(posts, post)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not load posts: %w", err)
	}

	return posts, nil
}

// LoadPost reads a single post. Its fallback ID is derived from the path
// relative to the store root, so it survives moving the content directory.
func (s *Store) LoadPost(path string) (Post, error) {
	sourceText, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("could not read source file: %w", err)
	}

	idPath, err := filepath.Rel(s.RootDirectory, path)
	if err != nil {
		return Post{}, fmt.Errorf("post '%s': %w", path, err)
	}

	post, err := parsePost(path, idPath, sourceText, s.options)
	if err != nil {
		return Post{}, fmt.Errorf("post '%s': %w", path, err)
	}

	return post, nil
}

func (s *Store) isPostFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.options.extensions() {
		if e == ext {
			return true
		}
	}

	return false
}

func checkUnique(posts []Post) error {
	byID := make(map[uuid.UUID]string, len(posts))
	bySlug := make(map[string]string, len(posts))

	for _, post := range posts {
		if other, ok := byID[post.ID]; ok {
			return fmt.Errorf("%w: '%s' and '%s' share ID %s", ErrDuplicatePost, other, post.Path, post.ID)
		}
		byID[post.ID] = post.Path

		if other, ok := bySlug[post.Frontmatter.Slug]; ok {
			return fmt.Errorf("%w: '%s' and '%s' share slug '%s'", ErrDuplicatePost, other, post.Path, post.Frontmatter.Slug)
		}
		bySlug[post.Frontmatter.Slug] = post.Path
	}

	return nil
}
