package model

import "time"

type HarmonyType string

const (
	HarmonyMonochromatic HarmonyType = "monochromatic"
	HarmonyAnalogous     HarmonyType = "analogous"
	HarmonyComplementary HarmonyType = "complementary"
	HarmonyTriadic       HarmonyType = "triadic"
	HarmonyTetradic      HarmonyType = "tetradic"
)

type Category string

const (
	CategoryWarm     Category = "warm"
	CategoryCool     Category = "cool"
	CategoryNeutral  Category = "neutral"
	CategoryEarth    Category = "earth"
	CategoryPastel   Category = "pastel"
	CategoryBold     Category = "bold"
	CategoryMetallic Category = "metallic"
)

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Lab is the simplified luma-based approximation the dashboard exports were
// built against, not a CIE transform.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

type SwatchRef struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

type Color struct {
	RGB        RGB       `json:"rgb"`
	HSV        HSV       `json:"hsv"`
	Lab        Lab       `json:"lab"`
	Hex        string    `json:"hex"`
	Swatch     SwatchRef `json:"swatch"`
	Percentage float64   `json:"percentage"`
	Name       string    `json:"name"`
}

type ColorHarmony struct {
	Type     HarmonyType `json:"type"`
	Balance  float64     `json:"balance"`
	Contrast float64     `json:"contrast"`
	Vibrancy float64     `json:"vibrancy"`
}

type ColorCategory struct {
	Hex        string   `json:"hex"`
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// ColorSpaces projects the dominant color into the representations the
// dashboard renders side by side.
type ColorSpaces struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSV  HSV    `json:"hsv"`
	Lab  Lab    `json:"lab"`
	XYZ  XYZ    `json:"xyz"`
	LCH  LCH    `json:"lch"`
	CMYK CMYK   `json:"cmyk"`
}

type CulturalAssociation struct {
	Hex     string `json:"hex"`
	Culture string `json:"culture"`
	Meaning string `json:"meaning"`
}

type PsychologicalProfile struct {
	Mood   string   `json:"mood"`
	Energy float64  `json:"energy"`
	Warmth float64  `json:"warmth"`
	Traits []string `json:"traits"`
}

type ColorPalette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Usage  string   `json:"usage"`
}

type Analysis struct {
	DominantColors         []Color               `json:"dominant_colors"`
	Harmony                ColorHarmony          `json:"color_harmony"`
	Categories             []ColorCategory       `json:"color_categories"`
	Spaces                 ColorSpaces           `json:"color_spaces"`
	CulturalAssociations   []CulturalAssociation `json:"cultural_associations"`
	Psychology             PsychologicalProfile  `json:"psychological_profile"`
	PaletteRecommendations []ColorPalette        `json:"palette_recommendations"`
	SampleCount            int                   `json:"sample_count"`
	Iterations             int                   `json:"iterations"`
}

type AnalysisRecord struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	SourceName   string   `json:"source_name"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	ClusterCount int      `json:"cluster_count"`
	Analysis     Analysis `json:"analysis"`
	CreatedAt    int64    `json:"created_at_unix_ms"`
}

type StoredState struct {
	LatestAnalysis     *AnalysisRecord           `json:"latest_analysis,omitempty"`
	RecentAnalyses     []AnalysisRecord          `json:"recent_analyses"`
	LastAnalysisByUser map[string]AnalysisRecord `json:"last_analysis_by_user"`
	LastUpdatedUnixMS  int64                     `json:"last_updated_unix_ms"`
	CreatedAt          time.Time                 `json:"created_at"`
}

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt int64       `json:"created_at_unix_ms"`
}
