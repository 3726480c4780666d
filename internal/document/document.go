package document

import (
	"io"
	"os"
	"strings"
)

// Document is the immutable set of text lines being paged through.
// It is built once at startup and never mutated afterwards.
type Document struct {
	lines [][]rune
}

// Load reads the whole file at path into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(string(data)), nil
}

// Read buffers r to completion and builds a Document from it.
// The stream is read fully before the pager starts.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(string(data)), nil
}

// FromLines builds a Document directly from logical lines.
func FromLines(lines ...string) *Document {
	d := &Document{lines: make([][]rune, len(lines))}
	for i, line := range lines {
		d.lines[i] = []rune(line)
	}
	return d
}

// parse splits text into lines. A trailing newline does not produce
// a final empty line, so empty input yields zero lines.
func parse(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Document{lines: lines}
}

// Len returns the number of logical lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i. The caller must not modify the returned slice.
func (d *Document) Line(i int) []rune {
	return d.lines[i]
}
