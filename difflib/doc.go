// Package difflib computes unified diffs between sequences of text lines.
//
// It is a line-oriented port of the SequenceMatcher / unified_diff pair
// from Python's difflib module: an autojunk-aware longest-common-subsequence
// matcher in the Ratcliff/Obershelp tradition, an opcode grouper that
// consolidates edits into context-bounded hunks, and a formatter that
// renders those hunks in the canonical unified-diff format. Output is
// byte-identical to the reference implementation for the same inputs.
//
// The matcher intentionally does not produce a minimal edit distance (that
// is Myers' algorithm's job); it maximizes the longest common contiguous
// block first and recurses into the remaining gaps, which tends to produce
// diffs that read naturally to people even though they aren't provably
// shortest.
package difflib
