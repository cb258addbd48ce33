package handlers

import (
	"net/http"

	"inkwash/internal/stats"
)

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	if a.Stats == nil {
		a.json(w, http.StatusOK, stats.Summary{})
		return
	}
	a.json(w, http.StatusOK, a.Stats.Snapshot())
}
