package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwash/internal/http/handlers"
	"inkwash/internal/infra"
	"inkwash/internal/providers/image"
	"inkwash/internal/providers/vision"
)

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, _ image.RenderRequest) (*image.Asset, error) {
	return &image.Asset{Data: []byte("png"), MIME: "image/png"}, nil
}

type stubDescriber struct{}

func (stubDescriber) Describe(_ context.Context, _ vision.DescribeRequest) (string, error) {
	return "a quiet pier at sunset", nil
}

func newTestRouter(rateLimit int) http.Handler {
	cfg := &infra.Config{
		AppEnv:           "test",
		StyleDefault:     "inkwash",
		AspectRatio:      "1:1",
		OutputMIME:       "image/png",
		DefaultLocale:    "en",
		AllowedOrigins:   []string{"*"},
		RateLimitPerMin:  rateLimit,
		MaxImageBytes:    8 << 20,
		MaxActiveRenders: 2,
	}
	logger := infra.NewLogger("test")
	app := handlers.NewApp(cfg, logger, stubGenerator{}, stubDescriber{})
	return NewRouter(app, nil)
}

func TestRouterServesClientAndReadRoutes(t *testing.T) {
	router := newTestRouter(100)

	testCases := []struct {
		path     string
		wantBody string
	}{
		{"/", "<title>Inkwash</title>"},
		{"/docs", "redoc"},
		{"/v1/openapi.json", `"openapi"`},
		{"/v1/healthz", `"ok"`},
		{"/v1/styles", `"inkwash"`},
		{"/v1/stats", `"renders"`},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
			}
			if !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("GET %s body missing %q: %s", tc.path, tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRouterRenderRoundTrip(t *testing.T) {
	router := newTestRouter(100)

	req := httptest.NewRequest("POST", "/v1/renders", strings.NewReader(`{"prompt":"a harbor at dawn"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}

	var resp struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Filename != "inkwash-aharboratdawn.png" {
		t.Fatalf("filename = %q", resp.Filename)
	}
}

func TestRouterPreflight(t *testing.T) {
	router := newTestRouter(100)

	req := httptest.NewRequest("OPTIONS", "/v1/renders", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want *", got)
	}
}

func TestRouterRateLimitsGenerationOnly(t *testing.T) {
	router := newTestRouter(2)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/v1/renders", strings.NewReader(`{"prompt":"a harbor at dawn"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		last = rr.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third render status = %d, want %d", last, http.StatusTooManyRequests)
	}

	req := httptest.NewRequest("GET", "/v1/styles", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("styles status = %d, want %d after limit", rr.Code, http.StatusOK)
	}
}
