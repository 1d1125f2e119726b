package handler

import (
	"log"
	"net/http"

	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/types"
)

// StatsHandler serves the aggregate statistics endpoint.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Get handles GET /api/stats. Store failures degrade to all-zero stats
// so dashboards keep rendering.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		log.Printf("Warning: failed to compute stats: %v", err)
		stats = types.EmptyStats()
	}

	writeJSON(w, http.StatusOK, stats)
}
