package difflib

// GetOpCodes returns the opcodes describing how to turn a into b. The
// first opcode starts at (0, 0); each later opcode's (I1, J1) equals the
// previous one's (I2, J2). Tags are:
//
//	replace: a[I1:I2] should be replaced by b[J1:J2]
//	delete:  a[I1:I2] should be deleted; J1 == J2
//	insert:  b[J1:J2] should be inserted at a[I1:I1]; I1 == I2
//	equal:   a[I1:I2] == b[J1:J2]
func (m *SequenceMatcher) GetOpCodes() []OpCode {
	if m.opCodes != nil {
		return m.opCodes
	}
	i, j := 0, 0
	var codes []OpCode
	for _, block := range m.GetMatchingBlocks() {
		ai, bj, size := block.A, block.B, block.Size

		var tag Op
		switch {
		case i < ai && j < bj:
			tag = OpReplace
		case i < ai:
			tag = OpDelete
		case j < bj:
			tag = OpInsert
		}
		if tag != 0 {
			codes = append(codes, OpCode{tag, i, ai, j, bj})
		}

		i, j = ai+size, bj+size
		// The matching-block list is terminated by a zero-size
		// sentinel; don't emit an equal opcode for it.
		if size > 0 {
			codes = append(codes, OpCode{OpEqual, ai, i, bj, j})
		}
	}
	m.opCodes = codes
	return m.opCodes
}
