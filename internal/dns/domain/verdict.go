package domain

import "fmt"

// Verdict is the per-query label written by the batch protocol.
type Verdict uint8

const (
	// Good marks a domain that no blocked root covers.
	Good Verdict = iota
	// Bad marks a forbidden domain.
	Bad
)

// VerdictFor maps a forbidden flag to its Verdict.
func VerdictFor(forbidden bool) Verdict {
	if forbidden {
		return Bad
	}
	return Good
}

// String returns the exact output literal, "Good" or "Bad".
func (v Verdict) String() string {
	switch v {
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	default:
		return fmt.Sprintf("Verdict(%d)", v)
	}
}
