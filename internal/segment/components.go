package segment

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Components yields the components of a host path, root to leaf.
//
// A rooted path yields the root separator as its own component, so
// "/etc/nginx" gives "/", "etc", "nginx". Repeated and trailing separators
// collapse and interior "." components are skipped. A relative path that
// starts with "./" keeps the leading ".". ".." is yielded as-is.
func Components(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := path
		if vol := filepath.VolumeName(rest); vol != "" {
			if !yield(vol) {
				return
			}
			rest = rest[len(vol):]
		}

		switch {
		case rest != "" && os.IsPathSeparator(rest[0]):
			if !yield(string(filepath.Separator)) {
				return
			}
		case rest == "." || (len(rest) > 1 && rest[0] == '.' && os.IsPathSeparator(rest[1])):
			if !yield(".") {
				return
			}
		}

		for name := range strings.FieldsFuncSeq(rest, isSeparator) {
			if name == "." {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
