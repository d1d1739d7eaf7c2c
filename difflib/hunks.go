package difflib

// GetGroupedOpCodes splits the opcode stream into hunks bounded by n lines
// of context on either side, trimming the leading and trailing equal runs
// down to n lines and starting a fresh hunk whenever an equal run exceeds
// 2n lines. A negative n is treated as 0. If a and b are equal in full,
// it returns no hunks at all.
func (m *SequenceMatcher) GetGroupedOpCodes(n int) [][]OpCode {
	if n < 0 {
		n = 0
	}
	codes := m.GetOpCodes()
	if len(codes) == 0 {
		codes = []OpCode{{OpEqual, 0, 1, 0, 1}}
	}

	// Work on a copy: the first/last trim below mutates entries, and
	// GetOpCodes's result is memoized and shared with other callers.
	codes = append([]OpCode(nil), codes...)

	if codes[0].Tag == OpEqual {
		c := codes[0]
		codes[0] = OpCode{c.Tag, max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}
	}
	if last := len(codes) - 1; codes[last].Tag == OpEqual {
		c := codes[last]
		codes[last] = OpCode{c.Tag, c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)}
	}

	nn := n + n
	var groups [][]OpCode
	var group []OpCode
	for _, c := range codes {
		i1, i2, j1, j2 := c.I1, c.I2, c.J1, c.J2
		if c.Tag == OpEqual && i2-i1 > nn {
			group = append(group, OpCode{c.Tag, i1, min(i2, i1+n), j1, min(j2, j1+n)})
			groups = append(groups, group)
			group = nil
			i1, j1 = max(i1, i2-n), max(j1, j2-n)
		}
		group = append(group, OpCode{c.Tag, i1, i2, j1, j2})
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Tag == OpEqual) {
		groups = append(groups, group)
	}
	return groups
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
