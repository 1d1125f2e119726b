package handler

import (
	"net/http"
	"strconv"

	"github.com/vportella/feedbackiq/internal/processor"
	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/types"
)

// FeedbackHandler serves feedback submission and listing.
type FeedbackHandler struct {
	processor *processor.Processor
	store     *store.Store
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(proc *processor.Processor, st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{processor: proc, store: st}
}

type createFeedbackResponse struct {
	types.Feedback
	Message string `json:"message"`
}

// Create handles POST /api/feedback.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req processor.IngestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	feedback, err := h.processor.Ingest(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createFeedbackResponse{
		Feedback: *feedback,
		Message:  "Feedback created successfully",
	})
}

// List handles GET /api/feedback with optional source, sentiment,
// user_tier, theme_id and limit query filters.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := types.FeedbackFilter{
		Source:    q.Get("source"),
		Sentiment: q.Get("sentiment"),
		UserTier:  q.Get("user_tier"),
		ThemeID:   q.Get("theme_id"),
	}
	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	items, err := h.store.ListFeedback(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}
	if items == nil {
		items = []types.Feedback{}
	}

	writeJSON(w, http.StatusOK, items)
}
