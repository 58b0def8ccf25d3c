package cli

import (
	"bufio"
	"io"
	"strings"
)

// InputReader reads interactive lines, reporting EOF as a closed prompt.
type InputReader struct {
	scanner *bufio.Scanner
}

// NewInputReader wraps a reader.
func NewInputReader(in io.Reader) *InputReader {
	return &InputReader{scanner: bufio.NewScanner(in)}
}

// ReadLine returns the next trimmed line; ok is false on EOF.
func (reader *InputReader) ReadLine() (string, bool) {
	if !reader.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(reader.scanner.Text()), true
}
