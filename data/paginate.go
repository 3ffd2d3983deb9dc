package data

import "errors"

var (
	ErrInvalidPageSize = errors.New("page size must be at least 1")
	ErrPageOutOfRange  = errors.New("page out of range")
)

type Page struct {
	Number int // 1-based
	Total  int
	Posts  []Post
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.Total
}

// Paginate cuts posts into pages of perPage entries and returns the
// requested one. An empty list still has a single, empty page.
func Paginate(posts []Post, perPage, number int) (Page, error) {
	if perPage < 1 {
		return Page{}, ErrInvalidPageSize
	}

	total := (len(posts) + perPage - 1) / perPage
	if total == 0 {
		total = 1
	}

	if number < 1 || number > total {
		return Page{}, ErrPageOutOfRange
	}

	start := (number - 1) * perPage
	end := min(start+perPage, len(posts))

	return Page{
		Number: number,
		Total:  total,
		Posts:  posts[start:end:end],
	}, nil
}
