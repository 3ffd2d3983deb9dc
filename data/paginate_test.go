package data

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numberedPosts(t *testing.T, n int) []Post {
	t.Helper()

	posts := make([]Post, n)
	for i := range posts {
		posts[i] = newPost(t, fmt.Sprintf("post-%d", i+1), "2023-01-01T00:00:00Z", false)
	}

	return posts
}

func TestPaginate(t *testing.T) {
	posts := numberedPosts(t, 7)

	tests := []struct {
		page      int
		want      []string
		total     int
		prev, nxt bool
	}{
		{1, []string{"post-1", "post-2", "post-3"}, 3, false, true},
		{2, []string{"post-4", "post-5", "post-6"}, 3, true, true},
		{3, []string{"post-7"}, 3, true, false},
	}

	for _, tt := range tests {
		page, err := Paginate(posts, 3, tt.page)
		if err != nil {
			t.Fatalf("Paginate(page %d) failed: %v", tt.page, err)
		}

		if diff := cmp.Diff(tt.want, titles(page.Posts)); diff != "" {
			t.Errorf("page %d mismatch (-want +got):\n%s", tt.page, diff)
		}
		if page.Total != tt.total {
			t.Errorf("page %d: Total = %d, want %d", tt.page, page.Total, tt.total)
		}
		if page.HasPrev() != tt.prev {
			t.Errorf("page %d: HasPrev = %v, want %v", tt.page, page.HasPrev(), tt.prev)
		}
		if page.HasNext() != tt.nxt {
			t.Errorf("page %d: HasNext = %v, want %v", tt.page, page.HasNext(), tt.nxt)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, err := Paginate(nil, 3, 1)
	if err != nil {
		t.Fatalf("Paginate(nil) failed: %v", err)
	}
	if page.Total != 1 || len(page.Posts) != 0 {
		t.Errorf("Paginate(nil) = %+v, want a single empty page", page)
	}
}

func TestPaginateErrors(t *testing.T) {
	posts := numberedPosts(t, 4)

	if _, err := Paginate(posts, 0, 1); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("perPage 0: err = %v, want ErrInvalidPageSize", err)
	}
	if _, err := Paginate(posts, 3, 0); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("page 0: err = %v, want ErrPageOutOfRange", err)
	}
	if _, err := Paginate(posts, 3, 3); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("page 3 of 2: err = %v, want ErrPageOutOfRange", err)
	}
}

func TestPaginatePageCannotGrowIntoNext(t *testing.T) {
	posts := numberedPosts(t, 4)

	page, err := Paginate(posts, 2, 1)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	page.Posts = append(page.Posts, newPost(t, "extra", "2023-01-01T00:00:00Z", false))

	if got := posts[2].Frontmatter.Title; got != "post-3" {
		t.Errorf("posts[2] = %q after append, want %q", got, "post-3")
	}
}
