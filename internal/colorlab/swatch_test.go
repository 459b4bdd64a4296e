package colorlab

import (
	"testing"

	"material-color-service/internal/model"
)

func TestSwatchNearestExactMatch(t *testing.T) {
	m := NewSwatchMatcher(DefaultSwatches())

	// RAL 3020 Traffic red.
	s, dist := m.Nearest(model.RGB{R: 0xCC, G: 0x06, B: 0x05})
	if s.Code != "RAL 3020" {
		t.Fatalf("expected RAL 3020, got %s (%s)", s.Code, s.Name)
	}
	if dist > 0.001 {
		t.Fatalf("expected near-zero distance for exact match, got %f", dist)
	}
}

func TestSwatchNearestPerturbedMatch(t *testing.T) {
	m := NewSwatchMatcher(DefaultSwatches())

	s, _ := m.Nearest(model.RGB{R: 0xCF, G: 0x08, B: 0x08})
	if s.Code != "RAL 3020" {
		t.Fatalf("expected RAL 3020 for a slightly perturbed traffic red, got %s", s.Code)
	}
}

func TestSwatchNearestRefFields(t *testing.T) {
	m := NewSwatchMatcher(DefaultSwatches())

	ref := m.nearestRef(model.RGB{R: 0xFF, G: 0xFF, B: 0xFF})
	if ref.Code != "RAL 9010" {
		t.Fatalf("expected RAL 9010 for pure white, got %s", ref.Code)
	}
	if ref.Hex != "#ffffff" {
		t.Fatalf("unexpected swatch hex: %s", ref.Hex)
	}
	if ref.Name != "Pure white" {
		t.Fatalf("unexpected swatch name: %s", ref.Name)
	}
}

func TestSwatchMatcherEmptyTable(t *testing.T) {
	m := NewSwatchMatcher(nil)
	if m.Len() != 0 {
		t.Fatalf("expected empty matcher, got %d swatches", m.Len())
	}
	s, _ := m.Nearest(model.RGB{R: 1, G: 2, B: 3})
	if s.Code != "" {
		t.Fatalf("expected zero swatch from empty table, got %+v", s)
	}
}
