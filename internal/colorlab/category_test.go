package colorlab

import (
	"math"
	"testing"

	"material-color-service/internal/model"
)

func TestCategorizeNeutralBelowSaturationThreshold(t *testing.T) {
	c := categorize(hsvColor(300, 0.1, 0.5, 1))
	if c.Category != model.CategoryNeutral {
		t.Fatalf("expected neutral, got %s", c.Category)
	}
	if math.Abs(c.Confidence-0.9) > 1e-9 {
		t.Fatalf("expected confidence 1-s = 0.9, got %f", c.Confidence)
	}
}

func TestCategorizeRules(t *testing.T) {
	cases := []struct {
		name    string
		h, s, v float64
		want    model.Category
	}{
		{"metallic", 200, 0.25, 0.7, model.CategoryMetallic},
		{"pastel", 340, 0.3, 0.95, model.CategoryPastel},
		{"earth", 30, 0.5, 0.5, model.CategoryEarth},
		{"bold", 120, 0.95, 0.9, model.CategoryBold},
		{"warm", 10, 0.7, 0.5, model.CategoryWarm},
		{"cool", 220, 0.7, 0.5, model.CategoryCool},
	}
	for _, tc := range cases {
		got := categorize(hsvColor(tc.h, tc.s, tc.v, 1))
		if got.Category != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got.Category)
		}
		if got.Confidence <= 0 || got.Confidence > 1 {
			t.Fatalf("%s: confidence out of range: %f", tc.name, got.Confidence)
		}
	}
}
