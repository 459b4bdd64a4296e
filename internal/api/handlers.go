package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"material-color-service/internal/colorlab"
	"material-color-service/internal/config"
	"material-color-service/internal/model"
	"material-color-service/internal/service"
	"material-color-service/internal/storage"
	"material-color-service/internal/ws"
)

type Handler struct {
	cfg         config.Config
	store       *storage.Store
	hub         *ws.Hub
	analysisSvc *service.AnalysisService
	swatchSvc   *service.SwatchService
	upgrader    websocket.Upgrader
}

type apiError struct {
	Error string `json:"error"`
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("websocket requires GET"))
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		writeErr(w, http.StatusBadRequest, errors.New("websocket upgrade required"))
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: remote=%s host=%s uri=%s err=%v", r.RemoteAddr, r.Host, r.RequestURI, err)
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	client := ws.NewClient(h.hub, conn)
	h.hub.BroadcastEvent(model.Event{Type: "ws.client_connected", Payload: map[string]string{"id": uuid.NewString()}, CreatedAt: time.Now().UnixMilli()})
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSizeBytes); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	userID := firstOr(r.FormValue("user_id"), userIDFromRequest(r))
	clusterCount := atoiDefault(r.FormValue("cluster_count"), 0)

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	if err := validateImageUpload(fileHeader); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	b, err := io.ReadAll(file)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	rec, err := h.analysisSvc.Analyze(userID, fileHeader.Filename, b, clusterCount)
	if err != nil {
		writeErr(w, statusForAnalysisError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) LatestAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	rec := h.store.GetLatestAnalysis()
	if rec == nil {
		writeErr(w, http.StatusNotFound, errors.New("no analysis data"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) RecentAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyses": h.store.ListRecentAnalyses(),
	})
}

func (h *Handler) NearestSwatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	hex := strings.TrimSpace(r.URL.Query().Get("hex"))
	if hex == "" {
		writeErr(w, http.StatusBadRequest, errors.New("hex required"))
		return
	}
	ref, err := h.swatchSvc.Nearest(hex)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func statusForAnalysisError(err error) int {
	switch {
	case errors.Is(err, colorlab.ErrDecode),
		errors.Is(err, colorlab.ErrEmptyImage),
		errors.Is(err, colorlab.ErrConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func validateImageUpload(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return nil
	default:
		return errors.New("unsupported image format")
	}
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, apiError{Error: err.Error()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func firstOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func userIDFromRequest(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if v != "" {
		return v
	}
	return "anon"
}

func atoiDefault(v string, d int) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return d
	}
	n := 0
	for _, ch := range v {
		if ch < '0' || ch > '9' {
			return d
		}
		n = n*10 + int(ch-'0')
	}
	if n <= 0 {
		return d
	}
	return n
}
