package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hasbyte1/go-utilkit/arr"
	"github.com/hasbyte1/go-utilkit/collections"
	"github.com/hasbyte1/go-utilkit/internal/catalog"
	"github.com/hasbyte1/go-utilkit/strs"
)

type styles struct {
	Name       lipgloss.Style
	Category   lipgloss.Style
	Signature  lipgloss.Style
	Muted      lipgloss.Style
	Deprecated lipgloss.Style
	Heading    lipgloss.Style
	Tag        lipgloss.Style
	Box        lipgloss.Style
}

// newStyles builds styles for w. With color disabled every style renders
// its input unchanged.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		Name:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Category:   r.NewStyle().Foreground(lipgloss.Color("13")),
		Signature:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:      r.NewStyle().Faint(true),
		Deprecated: r.NewStyle().Foreground(lipgloss.Color("9")),
		Heading:    r.NewStyle().Bold(true).Underline(true),
		Tag:        r.NewStyle().Foreground(lipgloss.Color("14")),
		Box:        r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

const descriptionWidth = 72

func (s styles) renderList(w io.Writer, entries []catalog.Entry, total int) {
	width := 0
	for _, e := range entries {
		width = max(width, len([]rune(e.Name)))
	}
	for _, e := range entries {
		name := s.Name.Render(strs.PadEnd(e.Name, width, " "))
		line := fmt.Sprintf("%s  %s", name, s.Category.Render(e.Category))
		if e.Since != "" {
			line += "  " + s.Muted.Render("since "+e.Since)
		}
		if e.Deprecated {
			line += "  " + s.Deprecated.Render("deprecated")
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "    "+s.Signature.Render(e.Signature))
		desc := strs.Truncate(e.Description, strs.TruncateOptions{Length: descriptionWidth, Omission: "...", Separator: " "})
		fmt.Fprintln(w, "    "+desc)
	}
	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d of %d entries", len(entries), total)))
}

func (s styles) renderEntry(w io.Writer, e catalog.Entry) {
	header := s.Name.Render(e.Name) + "  " + s.Category.Render(e.Category)
	if e.Since != "" {
		header += "  " + s.Muted.Render("since "+e.Since)
	}
	if e.Deprecated {
		header += "  " + s.Deprecated.Render("deprecated")
	}
	fmt.Fprintln(w, s.Box.Render(header))
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Signature.Render(e.Signature))
	fmt.Fprintln(w)
	fmt.Fprintln(w, e.Description)

	if len(e.Params) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Heading.Render("Parameters"))
		width := 0
		for _, p := range e.Params {
			width = max(width, len([]rune(p.Name)))
		}
		for _, p := range e.Params {
			line := fmt.Sprintf("  %s  %s", strs.PadEnd(p.Name, width, " "), s.Signature.Render(p.Type))
			if p.Optional {
				line += " " + s.Muted.Render("(optional)")
			}
			if p.Description != "" {
				line += "  " + p.Description
			}
			fmt.Fprintln(w, line)
		}
	}
	if e.Returns != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Heading.Render("Returns"))
		fmt.Fprintln(w, "  "+s.Signature.Render(e.Returns))
	}
	if len(e.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Heading.Render("Examples"))
		for _, ex := range e.Examples {
			fmt.Fprintln(w, "  "+ex)
		}
	}
	if len(e.Tags) > 0 {
		fmt.Fprintln(w)
		tags := collections.Map(e.Tags, func(t string, _ int) string { return s.Tag.Render("#" + t) })
		fmt.Fprintln(w, strings.Join(tags, " "))
	}
	fmt.Fprintln(w, s.Muted.Render("id "+e.ID()))
}

func (s styles) renderCategories(w io.Writer, cats []catalog.CategoryCount) {
	width := 0
	for _, c := range cats {
		width = max(width, len([]rune(c.Name)))
	}
	for _, c := range cats {
		fmt.Fprintf(w, "%s  %d\n", s.Category.Render(strs.PadEnd(c.Name, width, " ")), c.Count)
	}
	total := collections.Reduce(cats, func(sum int, c catalog.CategoryCount, _ int) int { return sum + c.Count }, 0)
	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d categories, %d entries", len(cats), total)))
}

// suggest returns up to three entry names sharing a prefix with name.
func suggest(entries []catalog.Entry, name string) []string {
	prefix := strings.ToLower(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	matches := collections.Filter(entries, func(e catalog.Entry, _ int) bool {
		return strings.HasPrefix(strings.ToLower(e.Name), prefix)
	})
	names := collections.Map(matches, func(e catalog.Entry, _ int) string { return e.Name })
	return arr.Take(collections.SortBy(names, strings.ToLower), 3)
}
