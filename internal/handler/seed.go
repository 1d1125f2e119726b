package handler

import (
	"net/http"

	"github.com/vportella/feedbackiq/pkg/store"
)

// SeedHandler inserts demo feedback rows for local development.
type SeedHandler struct {
	store *store.Store
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(st *store.Store) *SeedHandler {
	return &SeedHandler{store: st}
}

// Seed handles POST /api/seed.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.SeedDemoData(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Mock data seeded successfully",
		"count":   count,
	})
}
