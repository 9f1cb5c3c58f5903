package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	logpkg "github.com/haukened/domcheck/internal/dns/common/log"
)

// Section names used in errors and log fields.
const (
	SectionBlocklist = "blocklist"
	SectionQueries   = "queries"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Reader decodes the two-section batch protocol:
//
//	N
//	<N blocklist domains>
//	M
//	<M query domains>
//
// Lines are trimmed of surrounding whitespace (including a trailing '\r') and
// a UTF-8 BOM is dropped from the first line. Empty domain lines are valid.
type Reader struct {
	scanner *bufio.Scanner
	logger  logpkg.Logger
	line    int
}

// NewReader wraps r.
func NewReader(r io.Reader, logger logpkg.Logger) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{scanner: s, logger: logger}
}

// ReadSection reads one count line followed by that many domain lines.
func (r *Reader) ReadSection(section string) ([]string, error) {
	n, err := r.ReadCount(section)
	if err != nil {
		return nil, err
	}
	return r.ReadDomains(section, n)
}

// ReadCount reads a count line. A missing line, a non-numeric value or a
// negative value is a *MalformedCountError.
func (r *Reader) ReadCount(section string) (int, error) {
	raw, ok, err := r.next()
	if err != nil {
		return 0, fmt.Errorf("read %s count: %w", section, err)
	}
	if !ok {
		return 0, &MalformedCountError{Section: section, Line: r.line + 1, Err: io.ErrUnexpectedEOF}
	}
	n, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &MalformedCountError{Section: section, Line: r.line, Value: raw, Err: err}
	}
	r.logger.Debug(map[string]any{"section": section, "line": r.line, "count": n}, "batch_count")
	return int(n), nil
}

// ReadDomains reads exactly n domain lines.
func (r *Reader) ReadDomains(section string, n int) ([]string, error) {
	out := make([]string, 0, min(n, 1<<16))
	for i := 0; i < n; i++ {
		raw, ok, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("read %s domain %d: %w", section, i+1, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: got %d of %d domains: %w", section, i, n, ErrTruncatedInput)
		}
		if raw == "" {
			r.logger.Debug(map[string]any{"section": section, "line": r.line}, "batch_empty_domain")
		}
		out = append(out, raw)
	}
	return out, nil
}

// next returns the next trimmed line. ok is false at end of input.
func (r *Reader) next() (string, bool, error) {
	if !r.scanner.Scan() {
		return "", false, r.scanner.Err()
	}
	r.line++
	line := r.scanner.Text()
	if r.line == 1 {
		line = strings.TrimPrefix(line, "\uFEFF")
	}
	return strings.TrimSpace(line), true, nil
}
