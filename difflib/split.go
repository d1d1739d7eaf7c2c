package difflib

// SplitLines splits s into lines on \n, \r\n, and \r. When keepends is
// true each returned line retains its original terminator; otherwise
// terminators are stripped. This is the convenience collaborator behind
// UnifiedDiffString: the core pipeline itself never splits strings, it
// only ever compares sequences the caller has already split.
func SplitLines(s string, keepends bool) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			end := i + 1
			if keepends {
				lines = append(lines, s[start:end])
			} else {
				lines = append(lines, s[start:i])
			}
			start = end
		case '\r':
			end := i + 1
			if end < len(s) && s[end] == '\n' {
				end++
			}
			if keepends {
				lines = append(lines, s[start:end])
			} else {
				lines = append(lines, s[start:i])
			}
			start = end
			i = end - 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// UnifiedDiffString splits a and b into lines with SplitLines and renders
// their unified diff as a single string. It is the string-oriented
// convenience entry point described alongside the line-sequence primary
// operation; it delegates line splitting entirely to SplitLines and
// otherwise behaves exactly like GetUnifiedDiffString.
func UnifiedDiffString(a, b string, fromFile, toFile, fromDate, toDate string, n int, lineterm string, keepends bool) (string, error) {
	diff := UnifiedDiff{
		A:        SplitLines(a, keepends),
		B:        SplitLines(b, keepends),
		FromFile: fromFile,
		ToFile:   toFile,
		FromDate: fromDate,
		ToDate:   toDate,
		Context:  n,
		LineTerm: lineterm,
	}
	return GetUnifiedDiffString(diff)
}
