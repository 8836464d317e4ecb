package informer

import (
	"strings"
	"unicode/utf8"
)

// panelInnerWidth is the number of display columns between the two
// vertical border glyphs.
const panelInnerWidth = 65

// fieldWidth is what remains of a content line once the spaces next to
// the border glyphs are accounted for.
const fieldWidth = panelInnerWidth - 2

// RenderPanel draws report as a fixed-width bordered panel. Every line
// spans the same number of display columns; overlong fields are
// truncated, never wrapped.
func RenderPanel(report *FileReport) string {
	horizontalLine := strings.Repeat("─", panelInnerWidth)

	lines := []string{
		"╭" + horizontalLine + "╮",
		"│ " + centerField(report.Name, fieldWidth) + " │",
		"├" + horizontalLine + "┤",
		contentLine("Size: ", report.Size),
		contentLine("Permissions: ", report.Permissions.String()),
		contentLine("Type: ", report.Kind.String()),
		contentLine("Created: ", report.Dates.Created),
		contentLine("Modified: ", report.Dates.Modified),
		contentLine("Accessed: ", report.Dates.Accessed),
		"╰" + horizontalLine + "╯",
	}

	return strings.Join(lines, "\n")
}

func contentLine(label, value string) string {
	return "│ " + label + leftAlignField(value, fieldWidth-utf8.RuneCountInString(label)) + " │"
}

// leftAlignField pads value with spaces up to width columns, truncating
// it first if it is too long.
func leftAlignField(value string, width int) string {
	value = truncateField(value, width)
	return value + strings.Repeat(" ", width-utf8.RuneCountInString(value))
}

// centerField places value in the middle of width columns, any odd spare
// column going to the right.
func centerField(value string, width int) string {
	value = truncateField(value, width)
	padding := width - utf8.RuneCountInString(value)
	left := padding / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", padding-left)
}

func truncateField(value string, width int) string {
	if utf8.RuneCountInString(value) <= width {
		return value
	}
	return string([]rune(value)[:width])
}
