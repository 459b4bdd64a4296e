package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"material-color-service/internal/colorlab"
	"material-color-service/internal/config"
	"material-color-service/internal/model"
	"material-color-service/internal/service"
	"material-color-service/internal/storage"
	"material-color-service/internal/ws"
)

func newTestRouter(t *testing.T) (http.Handler, *storage.Store) {
	t.Helper()
	cfg := config.Config{
		DataPath:            filepath.Join(t.TempDir(), "state.json"),
		ClusterCount:        8,
		SampleCap:           1000,
		MaxImageDimension:   400,
		MaxIterations:       50,
		RecentAnalysesLimit: 10,
		MaxUploadSizeBytes:  8 * 1024 * 1024,
	}
	store, err := storage.NewStore(cfg.DataPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	swatchSvc, err := service.NewSwatchService("")
	if err != nil {
		t.Fatalf("new swatch service: %v", err)
	}
	hub := ws.NewHub()
	analysisSvc := service.NewAnalysisService(cfg, store, hub, swatchSvc.Matcher())
	return NewRouter(cfg, store, hub, analysisSvc, swatchSvc), store
}

func multipartImage(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 40, A: 255})
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if err := png.Encode(fw, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router, store := newTestRouter(t)

	body, contentType := multipartImage(t, "image", "brick.png")
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "inspector-1")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rr.Code, rr.Body.String())
	}

	var rec model.AnalysisRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rec.UserID != "inspector-1" {
		t.Fatalf("unexpected user id: %s", rec.UserID)
	}
	if rec.SourceName != "brick.png" {
		t.Fatalf("unexpected source name: %s", rec.SourceName)
	}
	if len(rec.Analysis.DominantColors) == 0 {
		t.Fatal("expected dominant colors in response")
	}
	if store.GetLatestAnalysis() == nil {
		t.Fatal("analysis not persisted")
	}
}

func TestAnalyzeRequiresPost(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/analyze", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartImage(t, "image", "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestAnalyzeRejectsMissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("user_id", "u1")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestLatestAnalysisNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/analysis/latest", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestNearestSwatchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/swatches/nearest?hex=%23cc0605", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rr.Code, rr.Body.String())
	}

	var ref model.SwatchRef
	if err := json.Unmarshal(rr.Body.Bytes(), &ref); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ref.Code != "RAL 3020" {
		t.Fatalf("expected RAL 3020, got %s", ref.Code)
	}
}

func TestStatusForAnalysisError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{colorlab.ErrDecode, http.StatusBadRequest},
		{colorlab.ErrEmptyImage, http.StatusBadRequest},
		{colorlab.ErrConfig, http.StatusBadRequest},
		{errors.New("store write failed"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusForAnalysisError(tc.err); got != tc.want {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestNearestSwatchRejectsBadHex(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/swatches/nearest?hex=zzz", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/swatches/nearest", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for missing hex: %d", rr.Code)
	}
}
