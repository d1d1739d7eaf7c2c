package main

import (
	"strings"

	"github.com/muesli/termenv"
)

// colorizeLine applies the conventional unified-diff coloring to a single
// output line (including its trailing terminator): green for additions, red
// for deletions, cyan for hunk headers, bold for file headers. Context
// lines pass through unchanged. Coloring never changes the bytes of a line
// other than wrapping them in ANSI escapes, so it must only ever be applied
// after the byte-identical core has produced its output.
func colorizeLine(p termenv.Profile, line string) string {
	switch {
	case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
		return termenv.String(line).Bold().String()
	case strings.HasPrefix(line, "@@"):
		return termenv.String(line).Foreground(p.Color("6")).String()
	case strings.HasPrefix(line, "+"):
		return termenv.String(line).Foreground(p.Color("2")).String()
	case strings.HasPrefix(line, "-"):
		return termenv.String(line).Foreground(p.Color("1")).String()
	default:
		return line
	}
}

// colorizeDiff splits text on its own embedded line terminators and
// colorizes each line independently, rejoining them without altering
// anything but the escape sequences added around each line.
func colorizeDiff(p termenv.Profile, text string) string {
	if text == "" {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = colorizeLine(p, line)
	}
	return strings.Join(lines, "")
}
