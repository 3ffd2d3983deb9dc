package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpEmptyEqual = cmpopts.EquateEmpty()

func clonePosts(posts []Post) []Post {
	cloned := make([]Post, len(posts))
	for i, p := range posts {
		p.Frontmatter.Tags = append([]string(nil), p.Frontmatter.Tags...)
		cloned[i] = p
	}

	return cloned
}

func TestSortedPostsDrafts(t *testing.T) {
	posts := []Post{
		newPost(t, "2023-01-01", "2023-01-01T00:00:00Z", false),
		newPost(t, "2023-06-15", "2023-06-15T12:00:00Z", false),
		newPost(t, "2024-01-01", "2024-01-01T00:00:00Z", true),
	}

	got := titles(SortedPosts(posts, Production))
	want := []string{"2023-06-15", "2023-01-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("production: SortedPosts mismatch (-want +got):\n%s", diff)
	}

	got = titles(SortedPosts(posts, Development))
	want = []string{"2024-01-01", "2023-06-15", "2023-01-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("development: SortedPosts mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedPostsIgnoresSubSecondDifferences(t *testing.T) {
	posts := []Post{
		newPost(t, "early", "2023-01-01T00:00:00.100Z", false),
		newPost(t, "late", "2023-01-01T00:00:00.900Z", false),
		newPost(t, "next second", "2023-01-01T00:00:01Z", false),
	}

	got := titles(SortedPosts(posts, Production))
	want := []string{"next second", "early", "late"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedPosts mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedPostsIsStable(t *testing.T) {
	posts := []Post{
		newPost(t, "a", "2023-01-01T00:00:00Z", false),
		newPost(t, "b", "2023-05-01T00:00:00Z", false),
		newPost(t, "c", "2023-01-01T00:00:00Z", false),
		newPost(t, "d", "2023-01-01T00:00:00Z", true),
		newPost(t, "e", "2023-01-01T00:00:00+00:00", false),
	}

	want := []string{"b", "a", "c", "e"}
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(want, titles(SortedPosts(posts, Production))); diff != "" {
			t.Fatalf("run %d: SortedPosts mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestSortedPostsComparesInstants(t *testing.T) {
	posts := []Post{
		newPost(t, "utc", "2023-01-01T10:00:00Z", false),
		newPost(t, "berlin", "2023-01-01T12:00:00+01:00", false),
	}

	got := titles(SortedPosts(posts, Production))
	want := []string{"berlin", "utc"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedPosts mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedPostsEmpty(t *testing.T) {
	for _, env := range []Environment{Production, Development} {
		got := SortedPosts(nil, env)
		if got == nil || len(got) != 0 {
			t.Errorf("%v: SortedPosts(nil) = %#v, want empty non-nil slice", env, got)
		}
	}
}

func TestSortedPostsDoesNotMutateInput(t *testing.T) {
	posts := []Post{
		newPost(t, "old", "2020-01-01T00:00:00Z", false, "go"),
		newPost(t, "draft", "2024-01-01T00:00:00Z", true),
		newPost(t, "new", "2023-01-01T00:00:00Z", false),
	}
	before := clonePosts(posts)

	_ = SortedPosts(posts, Production)
	_ = SortedPosts(posts, Development)

	if diff := cmp.Diff(before, posts); diff != "" {
		t.Errorf("input changed (-before +after):\n%s", diff)
	}
}

func TestSortedPostsIsIdempotent(t *testing.T) {
	posts := []Post{
		newPost(t, "x", "2021-03-01T00:00:00Z", false),
		newPost(t, "y", "2022-03-01T00:00:00Z", false),
		newPost(t, "z", "2021-03-01T00:00:00Z", false),
	}

	once := SortedPosts(posts, Production)
	twice := SortedPosts(once, Production)

	if diff := cmp.Diff(titles(once), titles(twice)); diff != "" {
		t.Errorf("second sort changed order (-once +twice):\n%s", diff)
	}
}

func TestSortedPostsOrderProperty(t *testing.T) {
	posts := []Post{
		newPost(t, "p1", "2019-12-31T23:59:59.999Z", false),
		newPost(t, "p2", "2021-07-04T08:00:00-04:00", false),
		newPost(t, "p3", "2020-01-01T00:00:00Z", true),
		newPost(t, "p4", "1969-12-31T23:59:59.500Z", false),
		newPost(t, "p5", "2021-07-04T12:00:00.750Z", false),
	}

	for _, env := range []Environment{Production, Development} {
		sorted := SortedPosts(posts, env)
		for i := 1; i < len(sorted); i++ {
			prev := sorted[i-1].Frontmatter.Datetime.Unix()
			curr := sorted[i].Frontmatter.Datetime.Unix()
			if prev < curr {
				t.Errorf("%v: %s (%d) listed before %s (%d)", env,
					sorted[i-1].Frontmatter.Title, prev, sorted[i].Frontmatter.Title, curr)
			}
		}

		for _, p := range sorted {
			if p.Frontmatter.Draft && !env.ShowDrafts() {
				t.Errorf("%v: draft %s listed", env, p.Frontmatter.Title)
			}
		}
	}
}
