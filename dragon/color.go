package dragon

import (
	"fmt"
	"strings"
)

type Color string

// ColorNone is the absent color. It is a legal value and can be counted.
const ColorNone Color = ""

const (
	Green  Color = "GREEN"
	Red    Color = "RED"
	Black  Color = "BLACK"
	Blue   Color = "BLUE"
	Orange Color = "ORANGE"
)

var Colors = []Color{Green, Red, Black, Blue, Orange}

// ParseColor accepts a color name in any case. "", "none" and "null" map to
// ColorNone.
func ParseColor(s string) (Color, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "", "NONE", "NULL":
		return ColorNone, nil
	}
	c := Color(s)
	if !c.IsValid() {
		return ColorNone, fmt.Errorf("unknown color %q, expected one of %v", s, Colors)
	}
	return c, nil
}

func (c Color) IsValid() bool {
	if c == ColorNone {
		return true
	}
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

func (c Color) String() string {
	if c == ColorNone {
		return "NONE"
	}
	return string(c)
}
