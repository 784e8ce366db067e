package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column widths of the rendered roster table, in characters.
const (
	IndexWidth  = 4
	NameWidth   = 30
	ZodiacWidth = 20
	YearWidth   = 15
)

// Table header captions.
const (
	IndexHeader  = "No"
	NameHeader   = "Name"
	ZodiacHeader = "Zodiac"
	YearHeader   = "Year"
)

// Render formats the roster as a fixed-width text table. Cells wider than
// their column are printed in full and push the row out; nothing is cut.
func (r *Roster) Render() string {
	border := "+-" + strings.Join([]string{
		strings.Repeat("-", IndexWidth),
		strings.Repeat("-", NameWidth),
		strings.Repeat("-", ZodiacWidth),
		strings.Repeat("-", YearWidth),
	}, "-+-") + "-+"

	lines := make([]string, 0, len(r.people)+4)
	lines = append(lines,
		border,
		fmt.Sprintf("| %s | %s | %s | %s |",
			center(IndexHeader, IndexWidth),
			center(NameHeader, NameWidth),
			center(ZodiacHeader, ZodiacWidth),
			center(YearHeader, YearWidth),
		),
		border,
	)

	for i, p := range r.people {
		lines = append(lines, fmt.Sprintf("| %*d | %-*s | %-*s | %*s |",
			IndexWidth, i+1,
			NameWidth, p.Name,
			ZodiacWidth, p.Zodiac,
			YearWidth, p.Year,
		))
	}

	lines = append(lines, border)

	return strings.Join(lines, "\n")
}

// center pads s to width characters, putting the odd space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	left := (width - n) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
