package batch

import (
	"bufio"
	"io"

	"github.com/haukened/domcheck/internal/dns/domain"
)

// Writer encodes verdicts, one "Good" or "Bad" line per query.
// Output is buffered; call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteVerdict writes a single newline-terminated verdict line.
func (w *Writer) WriteVerdict(v domain.Verdict) error {
	if _, err := w.w.WriteString(v.String()); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered output.
func (w *Writer) Flush() error { return w.w.Flush() }
