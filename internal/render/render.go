// Package render joins path elements into a single prompt line.
//
// Write and String handle the bounded join; WriteStyled brackets a render
// with color directives on a StyleWriter.
package render

import (
	"io"
	"iter"
	"strings"

	"pathseg/internal/model"
)

// Write writes at most p.MaxElems elements from elems to w, joined by
// p.Separator. Elements beyond the limit are dropped without a marker.
// The first failing write aborts the render and its error is returned as-is.
func Write(w io.Writer, elems iter.Seq[model.Element], p model.JoinPolicy) error {
	first := true
	for e := range Take(elems, p.MaxElems) {
		if !first {
			if _, err := io.WriteString(w, p.Separator); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, e.Text); err != nil {
			return err
		}
	}
	return nil
}

// Take yields the first n elements of elems and stops pulling after that.
// n <= 0 yields nothing and never starts elems.
func Take(elems iter.Seq[model.Element], n int) iter.Seq[model.Element] {
	return func(yield func(model.Element) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for e := range elems {
			if !yield(e) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// String renders elems with p and returns the text.
func String(elems iter.Seq[model.Element], p model.JoinPolicy) string {
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = Write(&sb, elems, p)
	return sb.String()
}

// Join renders every element of elems separated by sep.
func Join(elems iter.Seq[model.Element], sep string) string {
	return String(elems, model.JoinPolicy{Separator: sep, MaxElems: model.Unbounded})
}
