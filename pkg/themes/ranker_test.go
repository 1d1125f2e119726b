package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/feedbackiq/pkg/types"
)

func themeStats(name string, score int, status types.ThemeStatus) types.ThemeStats {
	return types.ThemeStats{
		Theme: types.Theme{
			ID:            name,
			Name:          name,
			PriorityScore: score,
			Status:        status,
		},
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	ranked := Rank([]types.ThemeStats{
		themeStats("low", 3, types.ThemeActive),
		themeStats("critical", 25, types.ThemeActive),
		themeStats("medium", 8, types.ThemeActive),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "critical", ranked[0].Name)
	assert.Equal(t, "medium", ranked[1].Name)
	assert.Equal(t, "low", ranked[2].Name)
}

func TestRankDropsNonActive(t *testing.T) {
	ranked := Rank([]types.ThemeStats{
		themeStats("archived", 25, types.ThemeArchived),
		themeStats("active", 3, types.ThemeActive),
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, "active", ranked[0].Name)
}

func TestRankIsStableForEqualScores(t *testing.T) {
	ranked := Rank([]types.ThemeStats{
		themeStats("first", 8, types.ThemeActive),
		themeStats("second", 8, types.ThemeActive),
		themeStats("third", 8, types.ThemeActive),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
