package handlers

import (
	"net/http"
)

// Health answers liveness probes. It deliberately skips the Gemini backend;
// a slow upstream should not flap the service out of the load balancer.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
