package fixedwidth

import (
	"unicode/utf8"
)

// rawLine is a line of input that can be addressed by byte or by codepoint.
type rawLine struct {
	data string

	// Used when SetUseCodepointIndices has been called on Decoder. A mapping
	// of codepoint indices into data, so codepointIndices[n] is the starting
	// byte of the n-th codepoint. nil when every position is one byte wide.
	codepointIndices []int
}

func newRawLine(data string, useCodepointIndices bool) rawLine {
	line := rawLine{data: data}
	if !useCodepointIndices {
		return line
	}

	bytesIdx := findFirstMultiByteChar(data)
	if bytesIdx == len(data) {
		return line
	}
	// The prefix is ASCII, so its indices are the identity.
	indices := make([]int, bytesIdx, len(data))
	for i := range indices {
		indices[i] = i
	}
	for bytesIdx < len(data) {
		// Invalid UTF-8 decodes as a single byte wide codepoint.
		_, size := utf8.DecodeRuneInString(data[bytesIdx:])
		indices = append(indices, bytesIdx)
		bytesIdx += size
	}
	line.codepointIndices = indices
	return line
}

// len returns the length of the line in addressing units.
func (l rawLine) len() int {
	if l.codepointIndices == nil {
		return len(l.data)
	}
	return len(l.codepointIndices)
}

func (l rawLine) byteIndex(pos int) int {
	if l.codepointIndices == nil {
		return pos
	}
	if pos == len(l.codepointIndices) {
		return len(l.data)
	}
	return l.codepointIndices[pos]
}

// slice returns the text in [start, end). The caller guarantees
// 0 <= start <= end <= l.len().
func (l rawLine) slice(start, end int) string {
	return l.data[l.byteIndex(start):l.byteIndex(end)]
}

// Scans data, looking for multi-byte characters, returns either the index of
// the first multi-byte character or the length of the string if there are none.
func findFirstMultiByteChar(data string) int {
	for i := 0; i < len(data); i++ {
		if data[i]&0x80 == 0x80 {
			return i
		}
	}
	return len(data)
}
