package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{"empty is plain", "", "plain", false},
		{"plain", "plain", "plain", false},
		{"none alias", "none", "plain", false},
		{"zsh", "zsh", "zsh", false},
		{"bash upper case", "BASH", "bash", false},
		{"fish unsupported", "fish", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, err := Lookup(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported shell")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, sh.Name())
		})
	}
}

func TestDetectShell(t *testing.T) {
	assert.Equal(t, "bash", DetectShell("/usr/local/bin/bash").Name())
	assert.Equal(t, "zsh", DetectShell("/bin/zsh").Name())
	assert.Equal(t, "zsh", DetectShell("").Name())
	assert.Equal(t, "zsh", DetectShell("/opt/bash-tools/fish").Name())
}

func TestWrapEscape(t *testing.T) {
	seq := "\x1b[34m"
	assert.Equal(t, "%{\x1b[34m%}", (&ZshShell{}).WrapEscape(seq))
	assert.Equal(t, "\x01\x1b[34m\x02", (&BashShell{}).WrapEscape(seq))
	assert.Equal(t, seq, (&PlainShell{}).WrapEscape(seq))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "100%% done", (&ZshShell{}).EscapeText("100% done"))
	assert.Equal(t, "100% done", (&BashShell{}).EscapeText("100% done"))
	assert.Equal(t, "100% done", (&PlainShell{}).EscapeText("100% done"))
}

func TestInitScript(t *testing.T) {
	zsh := (&ZshShell{}).InitScript("/usr/local/bin/pathseg")
	assert.Contains(t, zsh, "setopt PROMPT_SUBST")
	assert.Contains(t, zsh, "PROMPT='$(/usr/local/bin/pathseg --shell zsh) %# '")

	bash := (&BashShell{}).InitScript("pathseg")
	assert.Equal(t, "PS1='$(pathseg --shell bash) \\$ '\n", bash)

	assert.Empty(t, (&PlainShell{}).InitScript("pathseg"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "/bin/pathseg", quote("/bin/pathseg"))
	assert.Equal(t, `"/Applications/My Tools/pathseg"`, quote("/Applications/My Tools/pathseg"))
	assert.Equal(t, `"/opt/\$x/pathseg"`, quote("/opt/$x/pathseg"))
	assert.Equal(t, `"/opt/it'\''s/pathseg"`, quote("/opt/it's/pathseg"))
}
