package colorlab

import (
	"math"
	"testing"

	"material-color-service/internal/model"
)

func hsvColor(h, s, v, pct float64) model.Color {
	return model.Color{HSV: model.HSV{H: h, S: s, V: v}, Percentage: pct}
}

func TestHarmonyComplementaryAtOppositeHues(t *testing.T) {
	colors := []model.Color{
		hsvColor(0, 1, 1, 0.5),
		hsvColor(180, 1, 1, 0.5),
	}
	h := classifyHarmony(colors)
	if h.Type != model.HarmonyComplementary {
		t.Fatalf("expected complementary, got %s", h.Type)
	}
}

func TestHarmonyMonochromaticSingleColor(t *testing.T) {
	h := classifyHarmony([]model.Color{hsvColor(120, 0.7, 0.6, 1)})
	if h.Type != model.HarmonyMonochromatic {
		t.Fatalf("expected monochromatic, got %s", h.Type)
	}
	if h.Contrast != 0 {
		t.Fatalf("expected zero contrast, got %f", h.Contrast)
	}
}

func TestHarmonyTriadicThreeSpreadHues(t *testing.T) {
	colors := []model.Color{
		hsvColor(0, 1, 1, 0.4),
		hsvColor(60, 1, 1, 0.3),
		hsvColor(120, 1, 1, 0.3),
	}
	h := classifyHarmony(colors)
	if h.Type != model.HarmonyTriadic {
		t.Fatalf("expected triadic, got %s", h.Type)
	}
}

func TestHarmonyTetradicFourSpreadHues(t *testing.T) {
	colors := []model.Color{
		hsvColor(0, 1, 1, 0.25),
		hsvColor(40, 1, 1, 0.25),
		hsvColor(80, 1, 1, 0.25),
		hsvColor(120, 1, 1, 0.25),
	}
	h := classifyHarmony(colors)
	if h.Type != model.HarmonyTetradic {
		t.Fatalf("expected tetradic, got %s", h.Type)
	}
}

// Hues 0 and 240 sit outside the 150-210 complementary band, so the red/blue
// pair falls through to analogous.
func TestHarmonyRedBluePairIsOutsideComplementaryBand(t *testing.T) {
	colors := []model.Color{
		hsvColor(0, 1, 1, 0.5),
		hsvColor(240, 1, 1, 0.5),
	}
	h := classifyHarmony(colors)
	if h.Type != model.HarmonyAnalogous {
		t.Fatalf("expected analogous, got %s", h.Type)
	}
}

func TestHarmonyScores(t *testing.T) {
	colors := []model.Color{
		hsvColor(0, 1.0, 1.0, 0.5),
		hsvColor(200, 0.5, 0.2, 0.5),
	}
	h := classifyHarmony(colors)
	if math.Abs(h.Balance-1.0) > 1e-9 {
		t.Fatalf("expected perfect balance for an even split, got %f", h.Balance)
	}
	if math.Abs(h.Contrast-0.8) > 1e-9 {
		t.Fatalf("expected contrast 0.8, got %f", h.Contrast)
	}
	if math.Abs(h.Vibrancy-0.75) > 1e-9 {
		t.Fatalf("expected vibrancy 0.75, got %f", h.Vibrancy)
	}
}
