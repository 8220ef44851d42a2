package domain

import "time"

// TrendingConfig holds the sliding window and per-activity weights used for
// recency-weighted popularity.
type TrendingConfig struct {
	// Window is the trailing interval events must fall within to count.
	Window time.Duration

	// CookedWeight, FavoritedWeight and ViewedWeight weight the raw event
	// counts. Other activity types do not contribute.
	CookedWeight    float64
	FavoritedWeight float64
	ViewedWeight    float64
}

// DefaultTrendingConfig returns the default trending configuration.
func DefaultTrendingConfig() TrendingConfig {
	return TrendingConfig{
		Window:          30 * 24 * time.Hour,
		CookedWeight:    3,
		FavoritedWeight: 2,
		ViewedWeight:    1,
	}
}

// TrendingScores computes a [0,1] popularity score for each recipe in the
// batch from events within the trailing window before now. Scores are
// normalized by the batch maximum, so the most active recipe scores 1.0 and
// ties share it. Recipes with no qualifying events score 0.
func TrendingScores(
	eventsByRecipe map[string][]ActivityEvent,
	now time.Time,
	config TrendingConfig,
) map[string]float64 {
	cutoff := now.Add(-config.Window)

	raw := make(map[string]float64, len(eventsByRecipe))
	maxWeight := float64(0)
	for recipeID, events := range eventsByRecipe {
		weight := float64(0)
		for _, ev := range events {
			if ev.OccurredAt.Before(cutoff) || ev.OccurredAt.After(now) {
				continue
			}
			switch ev.Type {
			case ActivityCooked:
				weight += config.CookedWeight
			case ActivityFavorited:
				weight += config.FavoritedWeight
			case ActivityViewed:
				weight += config.ViewedWeight
			}
		}
		raw[recipeID] = weight
		if weight > maxWeight {
			maxWeight = weight
		}
	}

	scores := make(map[string]float64, len(raw))
	for recipeID, weight := range raw {
		if maxWeight == 0 {
			scores[recipeID] = 0
			continue
		}
		scores[recipeID] = weight / maxWeight
	}
	return scores
}
