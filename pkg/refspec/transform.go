package refspec

import (
	"fmt"
	"strings"
)

// SrcMatches reports whether a reference name matches the source pattern.
func (s *RefSpec) SrcMatches(name string) bool {
	return patternMatches(s.src, name)
}

// DstMatches reports whether a reference name matches the destination pattern.
func (s *RefSpec) DstMatches(name string) bool {
	return patternMatches(s.dst, name)
}

// Transform maps a source-side reference name to its destination-side
// counterpart. The name must match the source pattern, otherwise Transform
// fails with [ErrNoMatch].
func (s *RefSpec) Transform(name string) (string, error) {
	return substitute(s.src, s.dst, name)
}

// RTransform maps a destination-side reference name back to its source-side
// counterpart. The name must match the destination pattern, otherwise
// RTransform fails with [ErrNoMatch].
func (s *RefSpec) RTransform(name string) (string, error) {
	return substitute(s.dst, s.src, name)
}

// patternMatches matches a reference name against a pattern side. A pattern
// without a wildcard only matches itself; a wildcard matches any capture,
// including the empty one.
func patternMatches(pattern, name string) bool {
	prefix, suffix, wild := strings.Cut(pattern, "*")
	if !wild {
		return pattern == name
	}
	return len(name) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(name, prefix) &&
		strings.HasSuffix(name, suffix)
}

// substitute rewrites name from one pattern side onto the other, carrying the
// wildcard capture across.
func substitute(from, to, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty reference name", ErrNoMatch)
	}
	if !patternMatches(from, name) {
		return "", fmt.Errorf("%w: %q against %q", ErrNoMatch, name, from)
	}

	fromPrefix, fromSuffix, wild := strings.Cut(from, "*")
	if !wild {
		// exact pattern, the whole destination side is the result
		return to, nil
	}
	capture := name[len(fromPrefix) : len(name)-len(fromSuffix)]

	toPrefix, toSuffix, _ := strings.Cut(to, "*")
	var b strings.Builder
	b.Grow(len(to) + len(name) + 1) // worst case: the whole name replaces the wildcard
	b.WriteString(toPrefix)
	b.WriteString(capture)
	b.WriteString(toSuffix)
	return b.String(), nil
}
