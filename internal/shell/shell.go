// Package shell knows how each supported shell expects prompt text.
package shell

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Shell describes how to embed pathseg output in a shell prompt.
type Shell interface {
	Name() string
	// WrapEscape marks a terminal escape sequence as zero-width so the
	// shell's line editor computes the prompt length correctly.
	WrapEscape(seq string) string
	// EscapeText protects literal prompt text from prompt expansion.
	EscapeText(text string) string
	// InitScript returns the snippet that installs exe into the prompt.
	InitScript(exe string) string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string {
	return "zsh"
}

func (s *ZshShell) WrapEscape(seq string) string {
	return "%{" + seq + "%}"
}

// EscapeText doubles % since PROMPT_SUBST output is percent-expanded.
func (s *ZshShell) EscapeText(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}

func (s *ZshShell) InitScript(exe string) string {
	return fmt.Sprintf("setopt PROMPT_SUBST\nPROMPT='$(%s --shell zsh) %%# '\n", quote(exe))
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string {
	return "bash"
}

// WrapEscape uses the raw readline markers; \[ \] are not honored inside
// command substitution output.
func (s *BashShell) WrapEscape(seq string) string {
	return "\x01" + seq + "\x02"
}

func (s *BashShell) EscapeText(text string) string {
	return text
}

func (s *BashShell) InitScript(exe string) string {
	return fmt.Sprintf("PS1='$(%s --shell bash) \\$ '\n", quote(exe))
}

// PlainShell writes escapes and text untouched.
type PlainShell struct{}

func (s *PlainShell) Name() string                  { return "plain" }
func (s *PlainShell) WrapEscape(seq string) string  { return seq }
func (s *PlainShell) EscapeText(text string) string { return text }
func (s *PlainShell) InitScript(exe string) string  { return "" }

// Lookup returns the Shell for a name. The empty name and "plain" select
// PlainShell.
func Lookup(name string) (Shell, error) {
	switch strings.ToLower(name) {
	case "", "plain", "none":
		return &PlainShell{}, nil
	case "zsh":
		return &ZshShell{}, nil
	case "bash":
		return &BashShell{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (want zsh, bash or plain)", name)
	}
}

// DetectShell identifies the user's shell from a $SHELL value, defaulting to
// Zsh.
func DetectShell(shellPath string) Shell {
	if strings.Contains(filepath.Base(shellPath), "bash") {
		return &BashShell{}
	}
	return &ZshShell{}
}

// quote turns exe into one shell word that survives the single-quoted prompt
// assignment. Plain paths are left as they are.
func quote(exe string) string {
	if !strings.ContainsAny(exe, " \t\"'$`\\") {
		return exe
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`", "'", `'\''`).Replace(exe) + `"`
}
