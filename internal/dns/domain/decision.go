package domain

// Decision is the outcome of evaluating a domain against the blocklist.
// Pure value type, no external dependencies.
type Decision struct {
	Forbidden   bool   // true if the name equals or is under a blocked root
	MatchedRoot string // blocked root that covered the name, empty when allowed
}

// Verdict returns the output label for the decision.
func (d Decision) Verdict() Verdict { return VerdictFor(d.Forbidden) }

// AllowDecision returns a not-forbidden decision.
func AllowDecision() Decision { return Decision{} }
