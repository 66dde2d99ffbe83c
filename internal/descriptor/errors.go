package descriptor

import (
	"fmt"

	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// DescriptorError describes an existing descriptor that could not be read as a JSON object.
// It matches extdesc.ErrParse via errors.Is.
type DescriptorError struct {
	Path    string // Path of the descriptor file
	Line    int    // Line number (0 if unknown)
	Column  int    // Column number (0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *DescriptorError) Error() string {
	location := e.Path
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", e.Path, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
		}
	}

	msg := fmt.Sprintf("failed to parse %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match extdesc.ErrParse.
func (e *DescriptorError) Unwrap() error {
	return extdesc.ErrParse
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(content []byte, offset int64) (int, int) {
	if offset <= 0 {
		return 0, 0
	}
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	line, col := 1, 1
	for _, b := range content[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
