package themes

import (
	"sort"

	"github.com/vportella/feedbackiq/pkg/types"
)

// Rank orders themes by priority score descending. Non-active themes
// are dropped. The sort is stable so equal scores keep their incoming
// order.
func Rank(stats []types.ThemeStats) []types.ThemeStats {
	ranked := make([]types.ThemeStats, 0, len(stats))
	for _, s := range stats {
		if s.Status != types.ThemeActive {
			continue
		}
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}
