package gowordle

import (
	"fmt"
	"strings"
)

// Hint is the feedback for one letter of a guess
type Hint uint8

const (
	Missing Hint = iota
	Exist
	Exact
)

// Hints is the feedback for a whole guess, it is comparable and used as a map key
type Hints [WordLen]Hint

func (h Hint) Glyph() string {
	switch h {
	case Exact:
		return "🟩"
	case Exist:
		return "🟨"
	case Missing:
		return "⬜️"
	}
	panic(fmt.Sprintf("can not render hint %d", h))
}

// Color is the single letter code used on the command line: g, y or r
func (h Hint) Color() byte {
	switch h {
	case Exact:
		return 'g'
	case Exist:
		return 'y'
	case Missing:
		return 'r'
	}
	panic(fmt.Sprintf("can not render hint %d", h))
}

func (h Hint) Name() string {
	switch h {
	case Exact:
		return "Exact"
	case Exist:
		return "Exist"
	case Missing:
		return "Missing"
	}
	return fmt.Sprintf("Hint(%d)", h)
}

func (h Hints) String() string {
	var sb strings.Builder
	for _, hint := range h {
		sb.WriteString(hint.Glyph())
	}
	return sb.String()
}

// Colors returns the hints as g/y/r letters like ggyrr
func (h Hints) Colors() string {
	ret := make([]byte, WordLen)
	for i, hint := range h {
		ret[i] = hint.Color()
	}
	return string(ret)
}

func (h Hints) AllExact() bool {
	for _, hint := range h {
		if hint != Exact {
			return false
		}
	}
	return true
}

// Count returns how many positions carry the given hint
func (h Hints) Count(hint Hint) int {
	ret := 0
	for _, got := range h {
		if got == hint {
			ret++
		}
	}
	return ret
}

// ParseHints reads the g/y/r form, the inverse of Colors
func ParseHints(colors string) (Hints, error) {
	var ret Hints
	if len(colors) != WordLen {
		return ret, fmt.Errorf("hints %q: want %d letters of g, y or r", colors, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch colors[i] {
		case 'g':
			ret[i] = Exact
		case 'y':
			ret[i] = Exist
		case 'r':
			ret[i] = Missing
		default:
			return ret, fmt.Errorf("hints %q: bad color %q at %d", colors, colors[i], i)
		}
	}
	return ret, nil
}
