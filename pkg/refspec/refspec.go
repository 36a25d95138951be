// Package refspec implements the reference specification grammar mapping
// remote reference names to local ones and back.
//
// A refspec is a pattern pair "source:destination", optionally prefixed with
// "+" to permit non-fast-forward updates. Each side may contain at most one
// "*" wildcard, and a wildcard on one side requires one on the other.
package refspec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed indicates a refspec string does not satisfy the grammar.
	ErrMalformed = errors.New("malformed refspec")
	// ErrNoMatch indicates a reference name does not match the pattern it is
	// being transformed against.
	ErrNoMatch = errors.New("reference name does not match pattern")
)

// Direction is the transfer direction a refspec applies to.
type Direction int

// Transfer directions.
const (
	Fetch Direction = iota
	Push
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Fetch:
		return "fetch"
	case Push:
		return "push"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// RefSpec is a single source to destination mapping pattern. It is immutable
// after Parse; all methods are safe for concurrent readers.
type RefSpec struct {
	src   string
	dst   string
	force bool
	dir   Direction
}

// Parse validates a refspec string in canonical "[+]source:destination" form.
func Parse(spec string, dir Direction) (*RefSpec, error) {
	raw := spec
	force := strings.HasPrefix(spec, "+")
	spec = strings.TrimPrefix(spec, "+")

	src, dst, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("%w: missing ':' separator in %q", ErrMalformed, raw)
	}
	if src == "" && dst == "" {
		return nil, fmt.Errorf("%w: empty refspec %q", ErrMalformed, raw)
	}
	if strings.Contains(dst, ":") {
		return nil, fmt.Errorf("%w: multiple ':' separators in %q", ErrMalformed, raw)
	}

	srcWild, err := wildcards(src, raw)
	if err != nil {
		return nil, err
	}
	dstWild, err := wildcards(dst, raw)
	if err != nil {
		return nil, err
	}
	if srcWild != dstWild {
		return nil, fmt.Errorf("%w: wildcard on only one side of %q", ErrMalformed, raw)
	}

	return &RefSpec{
		src:   src,
		dst:   dst,
		force: force,
		dir:   dir,
	}, nil
}

// wildcards reports whether a pattern side carries a wildcard, rejecting more
// than one.
func wildcards(side, raw string) (bool, error) {
	switch strings.Count(side, "*") {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: more than one wildcard per side in %q", ErrMalformed, raw)
	}
}

// Source returns the source pattern.
func (s *RefSpec) Source() string { return s.src }

// Destination returns the destination pattern.
func (s *RefSpec) Destination() string { return s.dst }

// IsForced reports whether the refspec permits non-fast-forward updates.
func (s *RefSpec) IsForced() bool { return s.force }

// Direction returns the transfer direction the refspec applies to.
func (s *RefSpec) Direction() Direction { return s.dir }

// String returns the canonical refspec form, "[+]source:destination".
func (s *RefSpec) String() string {
	var b strings.Builder
	b.Grow(len(s.src) + len(s.dst) + 2)
	if s.force {
		b.WriteByte('+')
	}
	b.WriteString(s.src)
	b.WriteByte(':')
	b.WriteString(s.dst)
	return b.String()
}
