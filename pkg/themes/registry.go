package themes

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/types"
)

// extractedPriorityScore is the fixed score for themes created from
// extraction proposals. It sits between the high and low bands so
// machine-found themes neither dominate nor vanish from the ranking.
const extractedPriorityScore = 10

// PriorityScore maps a priority band to its numeric ranking weight.
// Unknown bands score as medium.
func PriorityScore(band types.PriorityBand) int {
	switch band {
	case types.PriorityCritical:
		return 25
	case types.PriorityHigh:
		return 15
	case types.PriorityLow:
		return 3
	default:
		return 8
	}
}

// Registry creates themes, links feedback to them and serves theme
// reads over the store.
type Registry struct {
	store *store.Store
}

// NewRegistry creates a registry over the given store.
func NewRegistry(st *store.Store) *Registry {
	return &Registry{store: st}
}

// CreateThemeParams are the caller-supplied fields for a manually
// created theme.
type CreateThemeParams struct {
	Name         string
	Description  string
	PriorityBand types.PriorityBand
}

// CreateTheme registers a manually created theme. The priority score is
// derived from the band once here and never recomputed.
func (r *Registry) CreateTheme(ctx context.Context, params CreateThemeParams) (*types.Theme, error) {
	if params.Name == "" {
		return nil, types.NewValidationError("name required")
	}

	band := params.PriorityBand
	if band == "" {
		band = types.PriorityMedium
	}

	now := time.Now().UTC()
	theme := &types.Theme{
		ID:            uuid.New().String(),
		Name:          params.Name,
		Description:   params.Description,
		PriorityBand:  band,
		PriorityScore: PriorityScore(band),
		Status:        types.ThemeActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := r.store.InsertTheme(ctx, theme); err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}
	return theme, nil
}

// CreateFromProposals registers themes for model-proposed candidates.
// Proposals without a name are skipped. Extracted themes land in the
// medium band with a fixed score.
func (r *Registry) CreateFromProposals(ctx context.Context, proposals []types.ThemeProposal) ([]types.ThemeRef, error) {
	refs := []types.ThemeRef{}

	for _, p := range proposals {
		if p.Name == "" {
			log.Printf("Warning: skipping theme proposal without a name")
			continue
		}

		now := time.Now().UTC()
		theme := &types.Theme{
			ID:            uuid.New().String(),
			Name:          p.Name,
			Description:   p.Description,
			PriorityBand:  types.PriorityMedium,
			PriorityScore: extractedPriorityScore,
			Status:        types.ThemeActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := r.store.InsertTheme(ctx, theme); err != nil {
			return refs, fmt.Errorf("failed to create theme %q: %w", p.Name, err)
		}
		refs = append(refs, types.ThemeRef{ID: theme.ID, Name: theme.Name})
	}

	return refs, nil
}

// LinkFeedback assigns a feedback item to a theme. Both sides must
// exist; re-linking an existing pair is a no-op.
func (r *Registry) LinkFeedback(ctx context.Context, feedbackID, themeID string) error {
	if _, err := r.store.GetTheme(ctx, themeID); err != nil {
		return err
	}
	return r.store.LinkFeedback(ctx, feedbackID, themeID)
}

// GetTheme returns a theme with its linked feedback, most recent first.
func (r *Registry) GetTheme(ctx context.Context, id string) (*types.ThemeDetail, error) {
	theme, err := r.store.GetTheme(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback, err := r.store.ListFeedbackForTheme(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme feedback: %w", err)
	}
	if feedback == nil {
		feedback = []types.Feedback{}
	}

	return &types.ThemeDetail{Theme: *theme, Feedback: feedback}, nil
}

// ListActive returns active themes with aggregates, ranked by priority
// score.
func (r *Registry) ListActive(ctx context.Context, limit int) ([]types.ThemeStats, error) {
	stats, err := r.store.ListActiveThemeStats(ctx, limit)
	if err != nil {
		return nil, err
	}
	return Rank(stats), nil
}
