package colorlab

import (
	"testing"

	"material-color-service/internal/model"
)

func TestFormatHex(t *testing.T) {
	if got := FormatHex(model.RGB{R: 0xCC, G: 0x06, B: 0x05}); got != "#cc0605" {
		t.Fatalf("unexpected hex: %s", got)
	}
	if got := FormatHex(model.RGB{}); got != "#000000" {
		t.Fatalf("unexpected hex for black: %s", got)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	want := model.RGB{R: 0x3B, G: 0x83, B: 0xBD}
	got, err := ParseHex(FormatHex(want))
	if err != nil {
		t.Fatalf("parse hex: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
