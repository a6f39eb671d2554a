package style

import "image/color"

// TODO use standard palette
//
// https://pkg.go.dev/github.com/AntoineAugusti/colors#StringToHexColor
//
func ParseColor(s string) (color.Color, bool) {
	if len(s) == 7 && s[0] == '#' {
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexDigit(s[1+2*i])
			lo, ok2 := hexDigit(s[2+2*i])
			if !ok1 || !ok2 {
				return nil, false
			}
			rgb[i] = hi<<4 | lo
		}
		return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}, true
	}
	switch s {
	case "black":
		return color.Black, true
	case "white":
		return color.White, true
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}, true
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}, true
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}, true
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}, true
	}
	return nil, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r >= 0x90 {
		return "red"
	} else if g >= 0x90 {
		return "green"
	} else if b >= 0x90 {
		return "blue"
	}
	return "gray"
}
