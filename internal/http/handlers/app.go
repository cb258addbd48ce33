package handlers

import (
	"encoding/json"
	"net/http"

	"inkwash/internal/infra"
	"inkwash/internal/providers/image"
	"inkwash/internal/providers/vision"
	"inkwash/internal/stats"
)

// App bundles the dependencies the HTTP handlers need. The render limiter
// bounds how many remote generations run at once across both endpoints;
// requests that cannot get a slot are answered with 503 rather than queued.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Generator image.Generator
	Describer vision.Describer
	Stats     *stats.Counters

	renderLimiter chan struct{}
}

func NewApp(cfg *infra.Config, logger infra.Logger, generator image.Generator, describer vision.Describer) *App {
	slots := 1
	if cfg != nil && cfg.MaxActiveRenders > 0 {
		slots = cfg.MaxActiveRenders
	}
	return &App{
		Config:        cfg,
		Logger:        logger,
		Generator:     generator,
		Describer:     describer,
		Stats:         stats.New(),
		renderLimiter: make(chan struct{}, slots),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

// acquireRender reserves a generation slot without blocking. Sends on a nil
// limiter are never ready, so an App built without one reports busy instead
// of hanging.
func (a *App) acquireRender() bool {
	select {
	case a.renderLimiter <- struct{}{}:
		return true
	default:
		return false
	}
}

func (a *App) releaseRender() {
	<-a.renderLimiter
}
