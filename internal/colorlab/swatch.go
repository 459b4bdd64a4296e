package colorlab

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"material-color-service/internal/model"
)

// Swatch is one entry in a named reference palette (RAL Classic by default).
type Swatch struct {
	Code string
	Name string
	RGB  model.RGB
}

var (
	rgbToXYZ = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	labToXYZ = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

func cieLab(c model.RGB) chromath.Lab {
	xyz := rgbToXYZ.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
	return labToXYZ.Invert(xyz)
}

// SwatchMatcher performs nearest-neighbour lookups against a swatch table
// using CIE deltaE2000 in Lab space.
type SwatchMatcher struct {
	swatches []Swatch
	labs     []chromath.Lab
}

func NewSwatchMatcher(swatches []Swatch) *SwatchMatcher {
	labs := make([]chromath.Lab, len(swatches))
	for i, s := range swatches {
		labs[i] = cieLab(s.RGB)
	}
	return &SwatchMatcher{swatches: swatches, labs: labs}
}

func (m *SwatchMatcher) Len() int {
	return len(m.swatches)
}

// Nearest returns the closest swatch and its deltaE2000 distance.
func (m *SwatchMatcher) Nearest(c model.RGB) (Swatch, float64) {
	if len(m.swatches) == 0 {
		return Swatch{}, math.Inf(1)
	}
	target := cieLab(c)
	bestIdx := 0
	bestDist := math.MaxFloat64
	for i, lab := range m.labs {
		d := deltae.CIE2000(target, lab, &deltae.KLChDefault)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return m.swatches[bestIdx], bestDist
}

func (m *SwatchMatcher) nearestRef(c model.RGB) model.SwatchRef {
	s, d := m.Nearest(c)
	return model.SwatchRef{
		Code:     s.Code,
		Name:     s.Name,
		Hex:      FormatHex(s.RGB),
		Distance: d,
	}
}

// DefaultSwatches is an embedded subset of the RAL Classic palette with the
// conventionally published sRGB approximations.
func DefaultSwatches() []Swatch {
	return []Swatch{
		{"RAL 1000", "Green beige", model.RGB{R: 0xBE, G: 0xBD, B: 0x7F}},
		{"RAL 1001", "Beige", model.RGB{R: 0xC2, G: 0xB0, B: 0x78}},
		{"RAL 1002", "Sand yellow", model.RGB{R: 0xC6, G: 0xA6, B: 0x64}},
		{"RAL 1003", "Signal yellow", model.RGB{R: 0xE5, G: 0xBE, B: 0x01}},
		{"RAL 1013", "Oyster white", model.RGB{R: 0xEA, G: 0xE6, B: 0xCA}},
		{"RAL 1015", "Light ivory", model.RGB{R: 0xE6, G: 0xD6, B: 0x90}},
		{"RAL 1018", "Zinc yellow", model.RGB{R: 0xF8, G: 0xF3, B: 0x2B}},
		{"RAL 1021", "Rape yellow", model.RGB{R: 0xF3, G: 0xDA, B: 0x0B}},
		{"RAL 1023", "Traffic yellow", model.RGB{R: 0xFA, G: 0xD2, B: 0x01}},
		{"RAL 2002", "Vermilion", model.RGB{R: 0xCB, G: 0x28, B: 0x21}},
		{"RAL 2003", "Pastel orange", model.RGB{R: 0xFF, G: 0x75, B: 0x14}},
		{"RAL 2004", "Pure orange", model.RGB{R: 0xF4, G: 0x46, B: 0x11}},
		{"RAL 3000", "Flame red", model.RGB{R: 0xAF, G: 0x2B, B: 0x1E}},
		{"RAL 3001", "Signal red", model.RGB{R: 0xA5, G: 0x20, B: 0x19}},
		{"RAL 3003", "Ruby red", model.RGB{R: 0x9B, G: 0x11, B: 0x1E}},
		{"RAL 3005", "Wine red", model.RGB{R: 0x5E, G: 0x21, B: 0x29}},
		{"RAL 3009", "Oxide red", model.RGB{R: 0x64, G: 0x24, B: 0x24}},
		{"RAL 3015", "Light pink", model.RGB{R: 0xEA, G: 0x89, B: 0x9A}},
		{"RAL 3020", "Traffic red", model.RGB{R: 0xCC, G: 0x06, B: 0x05}},
		{"RAL 4001", "Red lilac", model.RGB{R: 0x6D, G: 0x3F, B: 0x5B}},
		{"RAL 4005", "Blue lilac", model.RGB{R: 0x76, G: 0x68, B: 0x9A}},
		{"RAL 4006", "Traffic purple", model.RGB{R: 0x90, G: 0x33, B: 0x73}},
		{"RAL 4008", "Signal violet", model.RGB{R: 0x92, G: 0x4E, B: 0x7D}},
		{"RAL 5002", "Ultramarine blue", model.RGB{R: 0x20, G: 0x21, B: 0x4F}},
		{"RAL 5005", "Signal blue", model.RGB{R: 0x1E, G: 0x24, B: 0x60}},
		{"RAL 5010", "Gentian blue", model.RGB{R: 0x0E, G: 0x29, B: 0x4B}},
		{"RAL 5012", "Light blue", model.RGB{R: 0x3B, G: 0x83, B: 0xBD}},
		{"RAL 5015", "Sky blue", model.RGB{R: 0x22, G: 0x71, B: 0xB3}},
		{"RAL 5017", "Traffic blue", model.RGB{R: 0x06, G: 0x39, B: 0x71}},
		{"RAL 5018", "Turquoise blue", model.RGB{R: 0x3F, G: 0x88, B: 0x8F}},
		{"RAL 5024", "Pastel blue", model.RGB{R: 0x5D, G: 0x9B, B: 0x9B}},
		{"RAL 6001", "Emerald green", model.RGB{R: 0x36, G: 0x67, B: 0x35}},
		{"RAL 6002", "Leaf green", model.RGB{R: 0x32, G: 0x59, B: 0x28}},
		{"RAL 6010", "Grass green", model.RGB{R: 0x35, G: 0x68, B: 0x2D}},
		{"RAL 6018", "Yellow green", model.RGB{R: 0x57, G: 0xA6, B: 0x39}},
		{"RAL 6019", "Pastel green", model.RGB{R: 0xBD, G: 0xEC, B: 0xB6}},
		{"RAL 6027", "Light green", model.RGB{R: 0x84, G: 0xC3, B: 0xBE}},
		{"RAL 6029", "Mint green", model.RGB{R: 0x20, G: 0x60, B: 0x3D}},
		{"RAL 7001", "Silver grey", model.RGB{R: 0x8A, G: 0x95, B: 0x97}},
		{"RAL 7004", "Signal grey", model.RGB{R: 0x96, G: 0x99, B: 0x92}},
		{"RAL 7016", "Anthracite grey", model.RGB{R: 0x29, G: 0x31, B: 0x33}},
		{"RAL 7035", "Light grey", model.RGB{R: 0xD7, G: 0xD7, B: 0xD7}},
		{"RAL 7040", "Window grey", model.RGB{R: 0x9D, G: 0xA1, B: 0xAA}},
		{"RAL 8001", "Ochre brown", model.RGB{R: 0x95, G: 0x5F, B: 0x20}},
		{"RAL 8003", "Clay brown", model.RGB{R: 0x73, G: 0x42, B: 0x22}},
		{"RAL 8011", "Nut brown", model.RGB{R: 0x5B, G: 0x3A, B: 0x29}},
		{"RAL 8017", "Chocolate brown", model.RGB{R: 0x45, G: 0x32, B: 0x2E}},
		{"RAL 8023", "Orange brown", model.RGB{R: 0xA6, G: 0x5E, B: 0x2E}},
		{"RAL 9001", "Cream", model.RGB{R: 0xFD, G: 0xF4, B: 0xE3}},
		{"RAL 9003", "Signal white", model.RGB{R: 0xF4, G: 0xF4, B: 0xF4}},
		{"RAL 9005", "Jet black", model.RGB{R: 0x0A, G: 0x0A, B: 0x0A}},
		{"RAL 9006", "White aluminium", model.RGB{R: 0xA5, G: 0xA5, B: 0xA5}},
		{"RAL 9007", "Grey aluminium", model.RGB{R: 0x8F, G: 0x8F, B: 0x8F}},
		{"RAL 9010", "Pure white", model.RGB{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"RAL 9016", "Traffic white", model.RGB{R: 0xF6, G: 0xF6, B: 0xF6}},
	}
}
