package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goodsign/monday"
	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/util/dates"
)

// TagCount pairs a tag with the number of listed posts carrying it.
type TagCount struct {
	Tag   data.Tag
	Count int
}

// CountTags counts, for every tag, the posts in posts listed under it.
func CountTags(posts []data.Post, tags []data.Tag, env data.Environment) []TagCount {
	counts := make([]TagCount, 0, len(tags))
	for _, tag := range tags {
		count := 0
		for _, post := range posts {
			if post.VisibleIn(env) && post.HasTag(tag.Raw) {
				count++
			}
		}

		counts = append(counts, TagCount{Tag: tag, Count: count})
	}

	return counts
}

// Formatter writes post listings to a terminal. Colors are dropped when
// out is not a terminal.
type Formatter struct {
	out    io.Writer
	locale monday.Locale
	tags   *TagSet

	heading lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	draft   lipgloss.Style
	tag     lipgloss.Style
}

func NewFormatter(out io.Writer, locale string) *Formatter {
	if locale == "" {
		locale = string(monday.LocaleEnUS)
	}

	r := lipgloss.NewRenderer(out)

	return &Formatter{
		out:     out,
		locale:  monday.Locale(locale),
		tags:    NewTagSet(),
		heading: r.NewStyle().Bold(true).Underline(true),
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Faint(true),
		draft:   r.NewStyle().Foreground(lipgloss.Color("#d7875f")).Italic(true),
		tag:     r.NewStyle(),
	}
}

func (f *Formatter) MonthHeading(group PostGroup) string {
	return monday.Format(group.Date, "January 2006", f.locale)
}

func (f *Formatter) WriteGroups(groups []PostGroup) error {
	for i, group := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(f.out); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(f.out, f.heading.Render(f.MonthHeading(group))); err != nil {
			return err
		}

		if err := f.WritePosts(group.Posts); err != nil {
			return err
		}
	}

	return nil
}

func (f *Formatter) WritePosts(posts []data.Post) error {
	for _, post := range posts {
		if _, err := fmt.Fprintln(f.out, f.PostLine(post)); err != nil {
			return err
		}
	}

	return nil
}

// PostLine renders one post as "date  title  [draft]  #tag ...".
func (f *Formatter) PostLine(post data.Post) string {
	fm := post.Frontmatter

	parts := []string{
		f.muted.Render(dates.DateString(fm.Datetime)),
		f.title.Render(fm.Title),
	}

	if fm.Draft {
		parts = append(parts, f.draft.Render("[draft]"))
	}

	if len(fm.Tags) > 0 {
		parts = append(parts, f.tagList(fm.Tags))
	}

	return "  " + strings.Join(parts, "  ")
}

func (f *Formatter) tagList(tags []string) string {
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		color := lipgloss.Color(f.tags.HexColor(tag))
		rendered[i] = f.tag.Foreground(color).Render("#" + data.Slugify(tag))
	}

	return strings.Join(rendered, " ")
}

func (f *Formatter) WriteTags(counts []TagCount) error {
	for _, c := range counts {
		color := lipgloss.Color(f.tags.HexColor(c.Tag.Raw))
		line := fmt.Sprintf(
			"  %s  %s %s",
			f.tag.Foreground(color).Render(c.Tag.Normalize()),
			c.Tag.String(),
			f.muted.Render(fmt.Sprintf("(%d)", c.Count)),
		)

		if _, err := fmt.Fprintln(f.out, line); err != nil {
			return err
		}
	}

	return nil
}

// WritePageFooter prints the page position and the flags reaching the
// neighbouring pages.
func (f *Formatter) WritePageFooter(page data.Page) error {
	footer := fmt.Sprintf("page %d of %d", page.Number, page.Total)

	var hints []string
	if page.HasPrev() {
		hints = append(hints, fmt.Sprintf("previous: --page %d", page.Number-1))
	}
	if page.HasNext() {
		hints = append(hints, fmt.Sprintf("next: --page %d", page.Number+1))
	}
	if len(hints) > 0 {
		footer += " (" + strings.Join(hints, ", ") + ")"
	}

	_, err := fmt.Fprintln(f.out, f.muted.Render(footer))
	return err
}

// WritePost prints a single post: its listing line, ID, description and
// the raw markdown body.
func (f *Formatter) WritePost(post data.Post) error {
	lines := []string{
		f.PostLine(post),
		f.muted.Render("  id: " + post.ID.String()),
	}

	if desc := strings.TrimSpace(post.Frontmatter.Description); desc != "" {
		lines = append(lines, "", "  "+desc)
	}

	if body := strings.TrimSpace(post.Content); body != "" {
		lines = append(lines, "", body)
	}

	_, err := fmt.Fprintln(f.out, strings.Join(lines, "\n"))
	return err
}
