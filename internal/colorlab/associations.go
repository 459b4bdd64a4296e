package colorlab

import (
	"github.com/lucasb-eyer/go-colorful"

	"material-color-service/internal/model"
)

// The cultural and psychological tables are deliberately plain data: the
// taxonomy is fixed, the entries are replaceable.

type hueBand struct {
	from, to float64 // degrees, from <= h < to
	cultural []model.CulturalAssociation
	traits   []string
}

var hueBands = []hueBand{
	{from: 345, to: 360, cultural: redAssociations, traits: []string{"passionate", "urgent"}},
	{from: 0, to: 15, cultural: redAssociations, traits: []string{"passionate", "urgent"}},
	{from: 15, to: 45, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "energy, affordability"},
		{Culture: "Eastern", Meaning: "courage, spirituality"},
	}, traits: []string{"enthusiastic", "playful"}},
	{from: 45, to: 70, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "optimism, caution"},
		{Culture: "Eastern", Meaning: "imperial, sacred"},
	}, traits: []string{"optimistic", "attention-seeking"}},
	{from: 70, to: 160, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "nature, growth"},
		{Culture: "Middle Eastern", Meaning: "fertility, luck"},
	}, traits: []string{"balanced", "restorative"}},
	{from: 160, to: 260, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "trust, stability"},
		{Culture: "Eastern", Meaning: "immortality, healing"},
	}, traits: []string{"calm", "dependable"}},
	{from: 260, to: 310, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "luxury, creativity"},
		{Culture: "Eastern", Meaning: "nobility, mourning"},
	}, traits: []string{"imaginative", "introspective"}},
	{from: 310, to: 345, cultural: []model.CulturalAssociation{
		{Culture: "Western", Meaning: "romance, tenderness"},
		{Culture: "Eastern", Meaning: "trust, femininity"},
	}, traits: []string{"gentle", "nurturing"}},
}

var redAssociations = []model.CulturalAssociation{
	{Culture: "Western", Meaning: "passion, danger"},
	{Culture: "Eastern", Meaning: "luck, prosperity"},
}

func bandFor(h float64) hueBand {
	for _, b := range hueBands {
		if h >= b.from && h < b.to {
			return b
		}
	}
	return hueBands[0]
}

func culturalAssociations(colors []model.Color) []model.CulturalAssociation {
	out := make([]model.CulturalAssociation, 0, len(colors)*2)
	for _, c := range colors {
		if c.HSV.S < 0.15 {
			// Near-grays carry no hue meaning.
			continue
		}
		for _, a := range bandFor(c.HSV.H).cultural {
			a.Hex = c.Hex
			out = append(out, a)
		}
	}
	return out
}

func psychologicalProfile(colors []model.Color, categories []model.ColorCategory) model.PsychologicalProfile {
	p := model.PsychologicalProfile{Traits: []string{}}
	if len(colors) == 0 {
		return p
	}

	energy := 0.0
	warmth := 0.0
	seen := map[string]struct{}{}
	for i, c := range colors {
		energy += c.Percentage * c.HSV.S * c.HSV.V
		switch categories[i].Category {
		case model.CategoryWarm, model.CategoryEarth:
			warmth += c.Percentage
		case model.CategoryBold:
			warmth += c.Percentage * 0.5
		}
		if c.HSV.S >= 0.15 {
			for _, tr := range bandFor(c.HSV.H).traits {
				if _, ok := seen[tr]; ok {
					continue
				}
				seen[tr] = struct{}{}
				p.Traits = append(p.Traits, tr)
			}
		}
	}

	p.Energy = clampFloat(energy, 0, 1)
	p.Warmth = clampFloat(warmth, 0, 1)
	switch {
	case p.Energy > 0.55 && p.Warmth > 0.5:
		p.Mood = "energetic"
	case p.Energy > 0.55:
		p.Mood = "vibrant"
	case p.Warmth > 0.5:
		p.Mood = "cozy"
	case p.Energy < 0.15:
		p.Mood = "muted"
	default:
		p.Mood = "calming"
	}
	return p
}

// paletteRecommendations derives companion palettes by rotating the dominant
// hue, in the same spirit as the hue-wheel suggestions the dashboard shows.
func paletteRecommendations(colors []model.Color) []model.ColorPalette {
	if len(colors) == 0 {
		return nil
	}
	base := colors[0].HSV

	rotate := func(deg float64) string {
		h := base.H + deg
		for h >= 360 {
			h -= 360
		}
		for h < 0 {
			h += 360
		}
		return colorful.Hsv(h, base.S, base.V).Clamped().Hex()
	}
	shade := func(v float64) string {
		return colorful.Hsv(base.H, base.S, clampFloat(v, 0, 1)).Clamped().Hex()
	}

	return []model.ColorPalette{
		{
			Name:   "complementary",
			Colors: []string{rotate(0), rotate(180)},
			Usage:  "accent pairing with maximum hue contrast",
		},
		{
			Name:   "analogous",
			Colors: []string{rotate(-30), rotate(0), rotate(30)},
			Usage:  "low-tension scheme for large surfaces",
		},
		{
			Name:   "triadic",
			Colors: []string{rotate(0), rotate(120), rotate(240)},
			Usage:  "balanced three-way scheme",
		},
		{
			Name:   "monochromatic",
			Colors: []string{shade(base.V * 0.4), shade(base.V * 0.7), rotate(0), shade(base.V*1.3 + 0.05)},
			Usage:  "tonal ramp of the dominant color",
		},
	}
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
