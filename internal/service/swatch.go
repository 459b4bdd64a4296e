package service

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"material-color-service/internal/colorlab"
	"material-color-service/internal/model"
)

// SwatchService owns the named swatch table. An external file (one
// `CODE:Name:#hex` entry per line) can replace the embedded RAL Classic
// subset; an empty path keeps the embedded table.
type SwatchService struct {
	matcher *colorlab.SwatchMatcher
}

func NewSwatchService(path string) (*SwatchService, error) {
	if path == "" {
		return &SwatchService{matcher: colorlab.NewSwatchMatcher(colorlab.DefaultSwatches())}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	swatches := make([]colorlab.Swatch, 0, 64)
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("swatch db line %d: want CODE:Name:#hex, got %q", lineNo, line)
		}
		rgb, err := colorlab.ParseHex(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("swatch db line %d: %v", lineNo, err)
		}
		swatches = append(swatches, colorlab.Swatch{
			Code: strings.TrimSpace(parts[0]),
			Name: strings.TrimSpace(parts[1]),
			RGB:  rgb,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(swatches) == 0 {
		return nil, fmt.Errorf("swatch db %s has no entries", path)
	}

	return &SwatchService{matcher: colorlab.NewSwatchMatcher(swatches)}, nil
}

func (s *SwatchService) Matcher() *colorlab.SwatchMatcher {
	return s.matcher
}

func (s *SwatchService) Count() int {
	return s.matcher.Len()
}

// Nearest resolves an arbitrary hex color to its closest named swatch.
func (s *SwatchService) Nearest(hex string) (model.SwatchRef, error) {
	rgb, err := colorlab.ParseHex(hex)
	if err != nil {
		return model.SwatchRef{}, err
	}
	sw, dist := s.matcher.Nearest(rgb)
	return model.SwatchRef{
		Code:     sw.Code,
		Name:     sw.Name,
		Hex:      colorlab.FormatHex(sw.RGB),
		Distance: dist,
	}, nil
}
