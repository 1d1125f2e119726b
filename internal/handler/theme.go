package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/vportella/feedbackiq/internal/processor"
	"github.com/vportella/feedbackiq/pkg/notify"
	"github.com/vportella/feedbackiq/pkg/themes"
	"github.com/vportella/feedbackiq/pkg/types"
)

// ThemeHandler serves theme creation, listing, detail and analysis.
type ThemeHandler struct {
	registry  *themes.Registry
	processor *processor.Processor
	notifier  *notify.SlackNotifier
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(registry *themes.Registry, proc *processor.Processor, notifier *notify.SlackNotifier) *ThemeHandler {
	return &ThemeHandler{registry: registry, processor: proc, notifier: notifier}
}

type createThemeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type createThemeResponse struct {
	types.Theme
	Message string `json:"message"`
}

// Create handles POST /api/themes.
func (h *ThemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	theme, err := h.registry.CreateTheme(r.Context(), themes.CreateThemeParams{
		Name:         req.Name,
		Description:  req.Description,
		PriorityBand: types.PriorityBand(req.Priority),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	if h.notifier != nil && theme.PriorityBand == types.PriorityCritical {
		if err := h.notifier.NotifyCriticalTheme(theme); err != nil {
			log.Printf("Warning: failed to send Slack notification: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, createThemeResponse{
		Theme:   *theme,
		Message: "Theme created successfully",
	})
}

// List handles GET /api/themes: active themes with aggregates, ranked
// by priority score.
func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	stats, err := h.registry.ListActive(r.Context(), limit)
	if err != nil {
		// dashboards keep rendering on a broken store
		log.Printf("Warning: failed to list themes: %v", err)
		stats = nil
	}
	if stats == nil {
		stats = []types.ThemeStats{}
	}

	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /api/themes/{id}: the theme plus its linked
// feedback.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.registry.GetTheme(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

type analyzeResponse struct {
	Message string `json:"message"`
	processor.AnalyzeResult
}

// Analyze handles POST /api/themes/analyze: runs one theme-extraction
// pass over the unthemed backlog.
func (h *ThemeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	result, err := h.processor.AnalyzeThemes(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	message := "Themes analyzed successfully"
	if result.AnalyzedFeedback == 0 {
		message = "No unthemed feedback to analyze"
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Message:       message,
		AnalyzeResult: *result,
	})
}
