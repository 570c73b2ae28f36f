package render

import (
	"io"
	"iter"

	"pathseg/internal/model"
)

// StyleWriter is a sink that can switch its output color.
type StyleWriter interface {
	io.Writer
	SetStyle(s model.Style) error
	Reset() error
}

// WriteStyled renders elems to w between s and a style reset.
//
// The reset is attempted on every path out, including when setting the
// style or writing fails. A render error takes priority over a reset error.
func WriteStyled(w StyleWriter, elems iter.Seq[model.Element], p model.JoinPolicy, s model.Style) (err error) {
	defer func() {
		if resetErr := w.Reset(); err == nil {
			err = resetErr
		}
	}()

	if err := w.SetStyle(s); err != nil {
		return err
	}
	return Write(w, elems, p)
}
