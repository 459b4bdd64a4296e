package colorlab

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"material-color-service/internal/model"
)

func toColorful(c model.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func rgbToHSV(c model.RGB) model.HSV {
	h, s, v := toColorful(c).Hsv()
	return model.HSV{H: h, S: s, V: v}
}

// rgbToLab keeps the luma-weighted approximation the existing dashboard
// exports were computed with. L tracks Rec.709 luma scaled to 0-100; a and b
// are opponent channel differences. Swatch matching uses real CIE Lab instead
// (see swatch.go).
func rgbToLab(c model.RGB) model.Lab {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0
	luma := 0.2126*r + 0.7152*g + 0.0722*b
	return model.Lab{
		L: luma * 100,
		A: (r - g) * 128,
		B: (g - b) * 128,
	}
}

// FormatHex renders a color as "#rrggbb".
func FormatHex(c model.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (model.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return model.RGB{}, err
	}
	r, g, b := c.RGB255()
	return model.RGB{R: r, G: g, B: b}, nil
}

func colorSpaces(c model.RGB) model.ColorSpaces {
	cf := toColorful(c)
	x, y, z := cf.Xyz()
	h, ch, l := cf.Hcl()
	cy, m, ye, k := color.RGBToCMYK(c.R, c.G, c.B)
	return model.ColorSpaces{
		Hex: FormatHex(c),
		RGB: c,
		HSV: rgbToHSV(c),
		Lab: rgbToLab(c),
		XYZ: model.XYZ{X: x, Y: y, Z: z},
		LCH: model.LCH{L: l, C: ch, H: h},
		CMYK: model.CMYK{
			C: float64(cy) / 255.0,
			M: float64(m) / 255.0,
			Y: float64(ye) / 255.0,
			K: float64(k) / 255.0,
		},
	}
}

// nameColor produces a coarse human-readable name from HSV.
func nameColor(hsv model.HSV) string {
	if hsv.V < 0.12 {
		return "black"
	}
	if hsv.S < 0.1 {
		switch {
		case hsv.V > 0.92:
			return "white"
		case hsv.V > 0.6:
			return "light gray"
		default:
			return "gray"
		}
	}

	base := hueName(hsv.H)
	switch {
	case hsv.V < 0.35:
		return "dark " + base
	case hsv.S < 0.35:
		return "pale " + base
	case hsv.V > 0.85 && hsv.S > 0.75:
		return "vivid " + base
	default:
		return base
	}
}

func hueName(h float64) string {
	switch {
	case h < 15 || h >= 345:
		return "red"
	case h < 40:
		return "orange"
	case h < 65:
		return "yellow"
	case h < 150:
		return "green"
	case h < 200:
		return "cyan"
	case h < 255:
		return "blue"
	case h < 290:
		return "purple"
	case h < 330:
		return "magenta"
	default:
		return "pink"
	}
}
