package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"material-color-service/internal/config"
	"material-color-service/internal/service"
	"material-color-service/internal/storage"
	"material-color-service/internal/ws"
)

func NewRouter(
	cfg config.Config,
	store *storage.Store,
	hub *ws.Hub,
	analysisSvc *service.AnalysisService,
	swatchSvc *service.SwatchService,
) http.Handler {
	h := &Handler{
		cfg:         cfg,
		store:       store,
		hub:         hub,
		analysisSvc: analysisSvc,
		swatchSvc:   swatchSvc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/v1/ws", h.WebSocket)
	mux.HandleFunc("/v1/analyze", h.Analyze)
	mux.HandleFunc("/v1/analysis/latest", h.LatestAnalysis)
	mux.HandleFunc("/v1/analysis/recent", h.RecentAnalyses)
	mux.HandleFunc("/v1/swatches/nearest", h.NearestSwatch)

	return limitBody(cfg.MaxUploadSizeBytes, mux)
}

func limitBody(maxSize int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next.ServeHTTP(w, r)
	})
}
