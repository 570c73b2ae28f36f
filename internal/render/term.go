package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"pathseg/internal/model"
	"pathseg/internal/shell"
)

// ColorMode selects when TermWriter emits color.
type ColorMode int

const (
	// ColorAlways emits color even when the sink is not a terminal, which is
	// the normal case inside a prompt's command substitution.
	ColorAlways ColorMode = iota
	// ColorAuto emits color only to a terminal, honoring NO_COLOR.
	ColorAuto
	// ColorNever disables color.
	ColorNever
)

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "always", "":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never", "off":
		return ColorNever, nil
	default:
		return ColorAlways, fmt.Errorf("unknown color mode: %s", s)
	}
}

// ProfileFor picks the termenv color profile for writing to out.
func ProfileFor(mode ColorMode, out *os.File) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" || out == nil {
			return termenv.Ascii
		}
		if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	default:
		switch strings.ToLower(os.Getenv("COLORTERM")) {
		case "truecolor", "24bit":
			return termenv.TrueColor
		}
		return termenv.ANSI256
	}
}

// TermWriter is a StyleWriter that emits ANSI SGR sequences.
type TermWriter struct {
	w       io.Writer
	profile termenv.Profile
	shell   shell.Shell
}

// NewTermWriter wraps w. Colors are degraded to what profile supports;
// termenv.Ascii turns styling off. A nil sh writes escapes unwrapped.
func NewTermWriter(w io.Writer, profile termenv.Profile, sh shell.Shell) *TermWriter {
	if sh == nil {
		sh = &shell.PlainShell{}
	}
	return &TermWriter{w: w, profile: profile, shell: sh}
}

// Write writes prompt text, escaped for the shell.
func (t *TermWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(t.w, t.shell.EscapeText(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SetStyle switches the sink to the colors of s.
func (t *TermWriter) SetStyle(s model.Style) error {
	seq := t.sequence(s)
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(t.w, t.shell.WrapEscape(seq))
	return err
}

// Reset restores the terminal's default colors.
func (t *TermWriter) Reset() error {
	if t.profile == termenv.Ascii {
		return nil
	}
	_, err := io.WriteString(t.w, t.shell.WrapEscape(termenv.CSI+termenv.ResetSeq+"m"))
	return err
}

func (t *TermWriter) sequence(s model.Style) string {
	var codes []string
	if c := t.profile.Color(s.Foreground); c != nil {
		if seq := c.Sequence(false); seq != "" {
			codes = append(codes, seq)
		}
	}
	if c := t.profile.Color(s.Background); c != nil {
		if seq := c.Sequence(true); seq != "" {
			codes = append(codes, seq)
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}
