package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
// Colors without an alpha pair are opaque.
func ParseHex(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("canvas: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("canvas: invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		return 0xFF000000 | uint32(v), nil
	}
	// rrggbbaa -> aarrggbb
	return uint32(v)>>8 | uint32(v)<<24, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func Hex(c uint32) string {
	if c>>24 == 0xFF {
		return fmt.Sprintf("#%06x", c&0xFFFFFF)
	}
	return fmt.Sprintf("#%06x%02x", c&0xFFFFFF, c>>24)
}
