// Package colorlab extracts dominant colors from decoded images via k-means
// clustering and derives harmony, category, and palette data from them. One
// analysis call owns all of its buffers, so a single Analyzer is safe for
// concurrent use.
package colorlab

import (
	"fmt"
	"image"
	"math/rand"
	"sort"
	"time"

	"github.com/disintegration/imaging"

	"material-color-service/internal/model"
)

type Options struct {
	// ClusterCount is k for the k-means pass.
	ClusterCount int
	// SampleCap bounds how many pixels are fed to clustering.
	SampleCap int
	// MaxDimension caps the working raster size; larger images are downscaled.
	MaxDimension int
	// MaxIterations caps the clustering loop.
	MaxIterations int
	// Seed pins centroid initialization for reproducible runs. Zero means
	// time-seeded.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		ClusterCount:  8,
		SampleCap:     1000,
		MaxDimension:  400,
		MaxIterations: 50,
	}
}

func (o Options) validate() error {
	if o.ClusterCount <= 0 {
		return fmt.Errorf("%w: cluster count must be > 0", ErrConfig)
	}
	if o.SampleCap <= 0 {
		return fmt.Errorf("%w: sample cap must be > 0", ErrConfig)
	}
	if o.MaxDimension <= 0 {
		return fmt.Errorf("%w: max dimension must be > 0", ErrConfig)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be > 0", ErrConfig)
	}
	return nil
}

// Analyzer is the color analysis engine. It holds configuration only; callers
// construct it once and share it.
type Analyzer struct {
	opts     Options
	decoder  Decoder
	swatches *SwatchMatcher
}

func NewAnalyzer(opts Options, decoder Decoder, swatches *SwatchMatcher) (*Analyzer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if decoder == nil {
		decoder = StdDecoder{}
	}
	if swatches == nil {
		swatches = NewSwatchMatcher(DefaultSwatches())
	}
	return &Analyzer{opts: opts, decoder: decoder, swatches: swatches}, nil
}

// AnalyzeBytes decodes via the raster collaborator and analyzes the result.
// Decode failures surface as ErrDecode with no partial result.
func (a *Analyzer) AnalyzeBytes(b []byte) (model.Analysis, error) {
	img, err := a.decoder.Decode(b)
	if err != nil {
		return model.Analysis{}, err
	}
	return a.AnalyzeImage(img)
}

// AnalyzeImage runs the full pipeline on an already-decoded raster.
func (a *Analyzer) AnalyzeImage(img image.Image) (model.Analysis, error) {
	img = a.bound(img)
	samples := subsample(img, a.opts.SampleCap)
	if len(samples) == 0 {
		return model.Analysis{}, ErrEmptyImage
	}

	seed := a.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	clusters, iterations := runKMeans(samples, a.opts.ClusterCount, a.opts.MaxIterations, rng)
	total := float64(len(samples))

	colors := make([]model.Color, 0, len(clusters))
	for _, cl := range clusters {
		hsv := rgbToHSV(cl.centroid)
		colors = append(colors, model.Color{
			RGB:        cl.centroid,
			HSV:        hsv,
			Lab:        rgbToLab(cl.centroid),
			Hex:        FormatHex(cl.centroid),
			Swatch:     a.swatches.nearestRef(cl.centroid),
			Percentage: float64(cl.count) / total,
			Name:       nameColor(hsv),
		})
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Percentage > colors[j].Percentage
	})

	categories := categorizeAll(colors)
	return model.Analysis{
		DominantColors:         colors,
		Harmony:                classifyHarmony(colors),
		Categories:             categories,
		Spaces:                 colorSpaces(colors[0].RGB),
		CulturalAssociations:   culturalAssociations(colors),
		Psychology:             psychologicalProfile(colors, categories),
		PaletteRecommendations: paletteRecommendations(colors),
		SampleCount:            len(samples),
		Iterations:             iterations,
	}, nil
}

// bound caps the working raster so neither dimension exceeds MaxDimension.
// This is a resource bound, not a correctness requirement.
func (a *Analyzer) bound(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= a.opts.MaxDimension && b.Dy() <= a.opts.MaxDimension {
		return img
	}
	return imaging.Fit(img, a.opts.MaxDimension, a.opts.MaxDimension, imaging.Lanczos)
}

// subsample strides through the raster so at most cap samples are taken.
// The stride makes sampling deterministic for a given image; fully
// transparent pixels are skipped.
func subsample(img image.Image, sampleCap int) []model.RGB {
	b := img.Bounds()
	totalPixels := b.Dx() * b.Dy()
	if totalPixels == 0 {
		return nil
	}
	stride := totalPixels / sampleCap
	if stride < 1 {
		stride = 1
	}

	samples := make([]model.RGB, 0, sampleCap)
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if idx%stride != 0 {
				idx++
				continue
			}
			idx++
			r, g, bl, alpha := img.At(x, y).RGBA()
			if alpha == 0 {
				continue
			}
			samples = append(samples, model.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
			})
			if len(samples) >= sampleCap {
				return samples
			}
		}
	}
	return samples
}
