package model

import "math"

// Unbounded is the MaxElems value for "no limit".
const Unbounded = math.MaxInt

// Element is one displayable unit of a path.
type Element struct {
	Text string // Component text, already converted to valid UTF-8
	Home bool   // True for the synthetic home marker
}

// String returns the element text.
func (e Element) String() string {
	return e.Text
}

// HomeElement returns the synthetic home marker element.
func HomeElement() Element {
	return Element{Text: HomeMarker, Home: true}
}

// JoinPolicy controls how elements are combined into one line.
//
// Ellipsis is carried along with the policy but is not written when elements
// are dropped beyond MaxElems: truncation is silent.
type JoinPolicy struct {
	Separator string
	MaxElems  int // Zero renders nothing
	Ellipsis  string
}

// DefaultJoinPolicy returns the policy used for prompt rendering.
func DefaultJoinPolicy() JoinPolicy {
	return JoinPolicy{
		Separator: DefaultSeparator,
		MaxElems:  5,
		Ellipsis:  DefaultEllipsis,
	}
}

// Style is a foreground/background color pair.
// Empty colors mean the terminal default.
type Style struct {
	Foreground string
	Background string
}

// IsZero reports whether the style sets no colors at all.
func (s Style) IsZero() bool {
	return s.Foreground == "" && s.Background == ""
}
