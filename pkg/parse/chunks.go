package parse

import (
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
)

// Chunk is a block of input lines cut out of a larger document.
type Chunk struct {
	Text string
	// Offset is the zero-based index of the chunk's first line in the document.
	Offset int
}

// TwoChunks splits input at its first blank line into two non-empty chunks.
//
// Windows line endings are detected from the separator itself. The
// descriptions name each chunk in the *EmptyChunkError reported for it.
func TwoChunks(input, firstDescription, secondDescription string) (Chunk, Chunk, error) {
	delimiter := "\n\n"
	if strings.Contains(input, "\r\n\r\n") {
		delimiter = "\r\n\r\n"
	}

	first, second, found := strings.Cut(input, delimiter)
	if !found {
		return Chunk{}, Chunk{}, &customErr.ChunkDelimiterError{Delimiter: delimiter}
	}
	if first == "" {
		return Chunk{}, Chunk{}, &customErr.EmptyChunkError{ChunkNumber: 1, Description: firstDescription}
	}
	if second == "" {
		return Chunk{}, Chunk{}, &customErr.EmptyChunkError{ChunkNumber: 2, Description: secondDescription}
	}

	// one line for the blank separator
	secondOffset := len(SplitLines(first)) + 1
	return Chunk{Text: first}, Chunk{Text: second, Offset: secondOffset}, nil
}
