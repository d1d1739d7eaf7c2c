package difflib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UnifiedDiff holds the parameters for a single unified-diff rendering.
type UnifiedDiff struct {
	A []string // first sequence of lines
	B []string // second sequence of lines

	FromFile string // label for the --- header line
	ToFile   string // label for the +++ header line
	FromDate string // optional date, joined to FromFile with a tab
	ToDate   string // optional date, joined to ToFile with a tab

	Context  int    // lines of context around each change; negative treated as 0
	LineTerm string // appended to header and hunk-header lines; zero value means none
}

// NewUnifiedDiff returns a UnifiedDiff for a and b with the conventional
// defaults applied: 3 lines of context and "\n" as the header/hunk-header
// line terminator. Construct a UnifiedDiff literal directly instead when a
// different Context or a terminator-free LineTerm is wanted; the zero
// value of LineTerm is taken literally rather than silently replaced with
// "\n", so that passing LineTerm: "" against already-stripped input lines
// produces genuinely terminator-free output, per the contract in the
// package's unified_diff-equivalent operation.
func NewUnifiedDiff(a, b []string) UnifiedDiff {
	return UnifiedDiff{A: a, B: b, Context: 3, LineTerm: "\n"}
}

// WriteUnifiedDiff writes the unified diff between diff.A and diff.B to
// writer. Header lines (---, +++) are written only if at least one hunk
// is produced. Body lines are copied verbatim from A or B with a single
// ' ', '-', or '+' prefix; whatever line terminator the input lines carry
// is preserved as-is, since LineTerm only applies to header and hunk-header
// lines.
func WriteUnifiedDiff(w io.Writer, diff UnifiedDiff) error {
	lineterm := diff.LineTerm

	context := diff.Context
	if context < 0 {
		context = 0
	}

	buf := bufio.NewWriter(w)
	m := NewMatcher(diff.A, diff.B)
	groups := m.GetGroupedOpCodes(context)

	started := false
	for _, group := range groups {
		if !started {
			started = true
			fromDate, toDate := "", ""
			if diff.FromDate != "" {
				fromDate = "\t" + diff.FromDate
			}
			if diff.ToDate != "" {
				toDate = "\t" + diff.ToDate
			}
			if _, err := fmt.Fprintf(buf, "--- %s%s%s", diff.FromFile, fromDate, lineterm); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(buf, "+++ %s%s%s", diff.ToFile, toDate, lineterm); err != nil {
				return err
			}
		}

		first, last := group[0], group[len(group)-1]
		rangeA := formatRangeUnified(first.I1, last.I2)
		rangeB := formatRangeUnified(first.J1, last.J2)
		if _, err := fmt.Fprintf(buf, "@@ -%s +%s @@%s", rangeA, rangeB, lineterm); err != nil {
			return err
		}

		for _, c := range group {
			if c.Tag == OpEqual {
				for _, line := range diff.A[c.I1:c.I2] {
					if _, err := buf.WriteString(" " + line); err != nil {
						return err
					}
				}
				continue
			}
			if c.Tag == OpReplace || c.Tag == OpDelete {
				for _, line := range diff.A[c.I1:c.I2] {
					if _, err := buf.WriteString("-" + line); err != nil {
						return err
					}
				}
			}
			if c.Tag == OpReplace || c.Tag == OpInsert {
				for _, line := range diff.B[c.J1:c.J2] {
					if _, err := buf.WriteString("+" + line); err != nil {
						return err
					}
				}
			}
		}
	}
	return buf.Flush()
}

// GetUnifiedDiffString renders the unified diff between diff.A and diff.B
// to a single string.
func GetUnifiedDiffString(diff UnifiedDiff) (string, error) {
	var sb strings.Builder
	if err := WriteUnifiedDiff(&sb, diff); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatRangeUnified formats a half-open range [start, stop) for a hunk
// header, following the unified-diff convention: a length-1 range is
// shown as a bare line number, and an empty range is shown as "N,0" where
// N is the (1-based) position just before the range.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start
	switch length {
	case 1:
		return fmt.Sprintf("%d", beginning)
	case 0:
		return fmt.Sprintf("%d,0", start)
	default:
		return fmt.Sprintf("%d,%d", beginning, length)
	}
}
