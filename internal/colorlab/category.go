package colorlab

import "material-color-service/internal/model"

// categorize assigns one semantic tag per color. The neutral rule
// (saturation < 0.2, confidence 1-s) is the fixed contract; the remaining
// thresholds follow the same taxonomy but live here as orderable rules.
func categorize(c model.Color) model.ColorCategory {
	h, s, v := c.HSV.H, c.HSV.S, c.HSV.V
	out := model.ColorCategory{Hex: c.Hex}

	switch {
	case s < 0.2:
		out.Category = model.CategoryNeutral
		out.Confidence = 1 - s
	case s < 0.35 && v >= 0.55 && v < 0.9:
		out.Category = model.CategoryMetallic
		out.Confidence = 0.5 + (0.35-s)
	case v > 0.85 && s < 0.5:
		out.Category = model.CategoryPastel
		out.Confidence = v * (1 - s)
	case h >= 20 && h <= 50 && s <= 0.65 && v <= 0.7:
		out.Category = model.CategoryEarth
		out.Confidence = 1 - v*0.5
	case s >= 0.85 && v >= 0.75:
		out.Category = model.CategoryBold
		out.Confidence = s * v
	case h < 90 || h >= 330:
		out.Category = model.CategoryWarm
		out.Confidence = s
	default:
		out.Category = model.CategoryCool
		out.Confidence = s
	}

	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out
}

func categorizeAll(colors []model.Color) []model.ColorCategory {
	out := make([]model.ColorCategory, 0, len(colors))
	for _, c := range colors {
		out = append(out, categorize(c))
	}
	return out
}
