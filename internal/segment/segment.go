// Package segment turns a filesystem path into the ordered elements shown in
// a prompt, abbreviating the home directory to a marker.
package segment

import (
	"iter"
	"strings"

	"pathseg/internal/logging"
	"pathseg/internal/model"
)

// Path is a read-only view over a path to display.
type Path struct {
	path     string
	home     string // Empty when the home directory could not be resolved
	showHome bool
}

// New returns a Path for path. home is the user's home directory, or "" if
// it is unknown; it is only consulted when showHome is set.
func New(path, home string, showHome bool) *Path {
	return &Path{path: path, home: home, showHome: showHome}
}

// Source returns the path as given to New.
func (p *Path) Source() string {
	return p.path
}

// Elements returns the display elements of the path, root to leaf.
//
// When home display is on and the path lies inside the home directory, the
// home marker comes first, followed by the components below home. Otherwise
// every component of the path is yielded. Each call starts a fresh traversal.
func (p *Path) Elements() iter.Seq[model.Element] {
	return func(yield func(model.Element) bool) {
		skip, inHome := p.homeDepth()
		if inHome {
			if !yield(model.HomeElement()) {
				return
			}
		}
		for c := range Components(p.path) {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(toElement(c)) {
				return
			}
		}
	}
}

// Len counts the elements Elements would yield.
func (p *Path) Len() int {
	n := 0
	for range p.Elements() {
		n++
	}
	return n
}

// homeDepth reports whether the path lies inside (or at) the home directory,
// comparing whole components, and if so how many leading path components
// the home directory covers. Only as many path components as home has are
// read.
func (p *Path) homeDepth() (int, bool) {
	if !p.showHome || p.home == "" {
		return 0, false
	}

	next, stop := iter.Pull(Components(p.path))
	defer stop()

	depth := 0
	for h := range Components(p.home) {
		c, ok := next()
		if !ok || c != h {
			logger := logging.GetLogger("segment")
			logger.Trace().
				Str("path", p.path).
				Str("home", p.home).
				Msg("Path is outside home")
			return 0, false
		}
		depth++
	}
	return depth, depth > 0
}

func toElement(component string) model.Element {
	return model.Element{Text: strings.ToValidUTF8(component, "\uFFFD")}
}
