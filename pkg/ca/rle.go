package ca

import (
	"fmt"
	"strings"
)

// ParseRLE parses a run-length-encoded pattern into a KnownPattern at
// generation zero. Lines starting with 'x' or '#' are header lines and
// are discarded; the remaining body is a token stream scanned left to
// right: an optional decimal run-count (default 1) followed by exactly
// one of 'b' (dead run), 'o' (alive run), '$' (line break) or '!' (end
// of pattern). Whitespace between tokens is ignored.
func ParseRLE(data string) (*KnownPattern, error) {
	var body strings.Builder
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 && (trimmed[0] == 'x' || trimmed[0] == '#') {
			continue
		}
		body.WriteString(line)
	}

	live := map[Point]bool{}
	col, row := 0, 0
	count := 0
	haveCount := false

	s := body.String()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			haveCount = true

		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue

		case c == 'b' || c == 'o' || c == '$' || c == '!':
			n := 1
			if haveCount {
				n = count
			}
			count, haveCount = 0, false

			switch c {
			case 'b':
				col += n
			case 'o':
				for k := 0; k < n; k++ {
					live[Point{X: col, Y: row}] = true
					col++
				}
			case '$':
				row += n
				col = 0
			case '!':
				return NewKnownPattern(live, Point{}), nil
			}

		default:
			return nil, fmt.Errorf("ca: invalid RLE token %q at offset %d", c, i)
		}
	}

	return nil, fmt.Errorf("ca: RLE input missing terminator '!'")
}
