package model

import (
	"fmt"
	"strconv"
	"strings"
)

var colorNames = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// NormalizeColor validates a color spec and returns it in the form terminal
// libraries accept: an ANSI index ("0".."255") or a "#rrggbb" hex triplet.
// The eight basic color names are mapped to their index.
func NormalizeColor(spec string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return "", nil
	}
	if idx, ok := colorNames[s]; ok {
		return idx, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return "", fmt.Errorf("invalid hex color %q: want #rrggbb", spec)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", spec)
		}
		return s, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", fmt.Errorf("invalid color %q: want a name, 0-255 or #rrggbb", spec)
	}
	return strconv.Itoa(n), nil
}
