package domain

import "strings"

// LabelSeparator terminates every canonical key. It is the DNS label separator,
// so a prefix match on keys always ends on a label boundary.
const LabelSeparator = '.'

// NormalizedDomain is a domain name in canonical form for suffix comparison.
//
// The canonical key is the byte-reversed name with a trailing LabelSeparator,
// e.g. "a.b.com" becomes "moc.b.a.". Under this encoding "X is a subdomain of Y"
// turns into "key(Y) is a prefix of key(X)", which lets plain lexicographic
// ordering and binary search do the matching.
//
// The zero value is not meaningful; use NewNormalizedDomain.
type NormalizedDomain struct {
	key string
}

// NewNormalizedDomain builds the canonical form of raw. It never fails; an empty
// string yields the degenerate key ".".
func NewNormalizedDomain(raw string) NormalizedDomain {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	for i := len(raw) - 1; i >= 0; i-- {
		b.WriteByte(raw[i])
	}
	b.WriteByte(LabelSeparator)
	return NormalizedDomain{key: b.String()}
}

// Key returns the canonical key.
func (d NormalizedDomain) Key() string { return d.key }

// Name recovers the domain name the value was built from.
func (d NormalizedDomain) Name() string {
	rev := strings.TrimSuffix(d.key, string(LabelSeparator))
	b := make([]byte, len(rev))
	for i := 0; i < len(rev); i++ {
		b[len(rev)-1-i] = rev[i]
	}
	return string(b)
}

// String implements fmt.Stringer and returns Name.
func (d NormalizedDomain) String() string { return d.Name() }

// Equal reports whether d and other have character-equal canonical keys.
func (d NormalizedDomain) Equal(other NormalizedDomain) bool {
	return d.key == other.key
}

// Less orders domains by canonical key. The order has no meaning beyond
// grouping every domain right after its ancestors.
func (d NormalizedDomain) Less(other NormalizedDomain) bool {
	return d.key < other.key
}

// Compare returns -1, 0 or +1 like strings.Compare on the canonical keys.
func (d NormalizedDomain) Compare(other NormalizedDomain) int {
	return strings.Compare(d.key, other.key)
}

// IsSubdomain reports whether d is ancestor itself or a strict descendant of it.
// "habr.com" is a subdomain of "com"; "dotcom" is not.
func (d NormalizedDomain) IsSubdomain(ancestor NormalizedDomain) bool {
	if len(ancestor.key) > len(d.key) {
		return false
	}
	return strings.HasPrefix(d.key, ancestor.key)
}
