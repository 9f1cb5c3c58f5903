package batch

import (
	"errors"
	"fmt"
)

// ErrTruncatedInput is returned when the stream ends before the number of
// domain lines announced by a count line.
var ErrTruncatedInput = errors.New("truncated input")

// MalformedCountError reports a count line that is not a non-negative integer.
type MalformedCountError struct {
	Section string // "blocklist" or "queries"
	Line    int    // 1-based line number in the stream
	Value   string // raw line content
	Err     error  // underlying parse error
}

func (e *MalformedCountError) Error() string {
	return fmt.Sprintf("malformed %s count on line %d: %q: %v", e.Section, e.Line, e.Value, e.Err)
}

func (e *MalformedCountError) Unwrap() error { return e.Err }
