package listing

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sethmckilla/mckilla/data"
)

// TagSet hands out one color per tag slug for the lifetime of the set.
type TagSet struct {
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	var (
		c  colorful.Color
		ok bool
	)

	slug := data.Slugify(tag)
	if c, ok = ts.colors[slug]; !ok {
		c = colorful.HappyColor()
		ts.colors[slug] = c
	}

	return c.Hex()
}

func (ts *TagSet) Len() int {
	return len(ts.colors)
}
