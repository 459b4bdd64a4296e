package colorlab

import (
	"math"

	"material-color-service/internal/model"
)

// classifyHarmony derives the harmony classification and its three scores
// from the output color set. The formulas are the behavioral contract the
// dashboard depends on and are kept as-is.
func classifyHarmony(colors []model.Color) model.ColorHarmony {
	h := model.ColorHarmony{Type: harmonyType(colors)}
	if len(colors) == 0 {
		return h
	}

	ideal := 1.0 / float64(len(colors))
	dev := 0.0
	minV, maxV := colors[0].HSV.V, colors[0].HSV.V
	sumS := 0.0
	for _, c := range colors {
		dev += math.Abs(c.Percentage - ideal)
		minV = math.Min(minV, c.HSV.V)
		maxV = math.Max(maxV, c.HSV.V)
		sumS += c.HSV.S
	}

	h.Balance = math.Max(0, 1.0-dev)
	h.Contrast = maxV - minV
	h.Vibrancy = sumS / float64(len(colors))
	return h
}

func harmonyType(colors []model.Color) model.HarmonyType {
	if len(colors) == 0 {
		return model.HarmonyMonochromatic
	}

	minH, maxH := colors[0].HSV.H, colors[0].HSV.H
	for _, c := range colors {
		minH = math.Min(minH, c.HSV.H)
		maxH = math.Max(maxH, c.HSV.H)
	}
	if maxH-minH < 30 {
		return model.HarmonyMonochromatic
	}

	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			d := math.Abs(colors[i].HSV.H - colors[j].HSV.H)
			if d >= 150 && d <= 210 {
				return model.HarmonyComplementary
			}
		}
	}

	switch len(colors) {
	case 3:
		return model.HarmonyTriadic
	case 4:
		return model.HarmonyTetradic
	default:
		return model.HarmonyAnalogous
	}
}
