package handlers

import (
	"net/http"

	"inkwash/internal/stylize"
)

type styleResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Default bool   `json:"default"`
}

func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	defaultStyle, _ := a.resolveStyle("")

	registry := stylize.Registry()
	items := make([]styleResponse, 0, len(registry))
	for _, s := range registry {
		items = append(items, styleResponse{
			ID:      s.ID,
			Label:   s.Label,
			Default: s.ID == defaultStyle.ID,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"styles": items})
}
