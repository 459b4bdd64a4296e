package service

import (
	"time"

	"github.com/google/uuid"

	"material-color-service/internal/colorlab"
	"material-color-service/internal/config"
	"material-color-service/internal/model"
	"material-color-service/internal/storage"
	"material-color-service/internal/ws"
)

// AnalysisService runs the color analysis engine and fans results out to the
// store and connected dashboard clients.
type AnalysisService struct {
	cfg      config.Config
	store    *storage.Store
	hub      *ws.Hub
	swatches *colorlab.SwatchMatcher
	decoder  colorlab.Decoder
}

func NewAnalysisService(cfg config.Config, store *storage.Store, hub *ws.Hub, swatches *colorlab.SwatchMatcher) *AnalysisService {
	return &AnalysisService{
		cfg:      cfg,
		store:    store,
		hub:      hub,
		swatches: swatches,
		decoder:  colorlab.StdDecoder{},
	}
}

func (s *AnalysisService) baseOptions() colorlab.Options {
	return colorlab.Options{
		ClusterCount:  s.cfg.ClusterCount,
		SampleCap:     s.cfg.SampleCap,
		MaxDimension:  s.cfg.MaxImageDimension,
		MaxIterations: s.cfg.MaxIterations,
	}
}

// Analyze decodes the upload, extracts its dominant colors, and persists the
// record. clusterCount overrides the configured k when > 0.
func (s *AnalysisService) Analyze(userID, sourceName string, imageBytes []byte, clusterCount int) (model.AnalysisRecord, error) {
	opts := s.baseOptions()
	if clusterCount > 0 {
		opts.ClusterCount = clusterCount
	}
	analyzer, err := colorlab.NewAnalyzer(opts, s.decoder, s.swatches)
	if err != nil {
		return model.AnalysisRecord{}, err
	}

	img, err := s.decoder.Decode(imageBytes)
	if err != nil {
		return model.AnalysisRecord{}, err
	}
	analysis, err := analyzer.AnalyzeImage(img)
	if err != nil {
		return model.AnalysisRecord{}, err
	}

	bounds := img.Bounds()
	rec := model.AnalysisRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		SourceName:   sourceName,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		ClusterCount: opts.ClusterCount,
		Analysis:     analysis,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.store.AddAnalysis(rec, s.cfg.RecentAnalysesLimit); err != nil {
		return model.AnalysisRecord{}, err
	}
	s.hub.BroadcastEvent(model.Event{Type: "analysis.completed", Payload: rec, CreatedAt: time.Now().UnixMilli()})
	return rec, nil
}
