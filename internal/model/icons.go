package model

// Markers used when rendering path elements.
// Keep these single-width so prompt length stays predictable.
const (
	HomeMarker       = "~"   // Replaces the home directory prefix
	DefaultEllipsis  = "..." // Truncation marker (not written, see JoinPolicy)
	DefaultSeparator = " / "
	ArrowSeparator   = " > "
)
