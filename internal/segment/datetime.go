package segment

import (
	"iter"
	"time"

	"github.com/ncruces/go-strftime"

	"pathseg/internal/model"
)

// DefaultTimeFormat is the default --time-format: 24-hour clock with seconds.
const DefaultTimeFormat = "%H:%M:%S"

// DateTime is a segment showing a single timestamp, formatted with
// strftime-style directives (%Y-%m-%d, %H:%M, ...).
type DateTime struct {
	at     time.Time
	format string
}

// NewDateTime returns a DateTime for at. The caller supplies the clock so
// the segment stays deterministic.
func NewDateTime(at time.Time, format string) *DateTime {
	return &DateTime{at: at, format: format}
}

// Elements yields the formatted timestamp as one element, or nothing when
// the format renders to an empty string.
func (d *DateTime) Elements() iter.Seq[model.Element] {
	return func(yield func(model.Element) bool) {
		text := strftime.Format(d.format, d.at)
		if text == "" {
			return
		}
		yield(model.Element{Text: text})
	}
}
