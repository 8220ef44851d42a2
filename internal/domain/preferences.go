package domain

import "sort"

// RankedCount is a name with its occurrence count, used for preference
// rankings.
type RankedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UserPreferenceProfile is a human-readable summary of a user's activity.
// It is derived on demand and never persisted; a user with no activity gets
// a zero-valued profile rather than an error.
type UserPreferenceProfile struct {
	FavoriteIngredients      []RankedCount `json:"favorite_ingredients"`
	FavoriteCategories       []RankedCount `json:"favorite_categories"`
	FavoriteTags             []RankedCount `json:"favorite_tags"`
	TotalActivities          int           `json:"total_activities"`
	CookingFrequencyPerMonth float64       `json:"cooking_frequency_per_month"`
	AverageCookTimeMinutes   float64       `json:"average_cook_time_minutes"`
	PreferredDifficulty      string        `json:"preferred_difficulty,omitempty"`
}

// RankCounts orders counts descending, breaking ties alphabetically, and
// keeps at most limit entries. A limit of zero or below keeps everything.
func RankCounts(counts map[string]int, limit int) []RankedCount {
	ranked := make([]RankedCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, RankedCount{Name: name, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
