package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrendingScores(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	config := DefaultTrendingConfig()

	event := func(recipeID string, activityType ActivityType, age time.Duration) ActivityEvent {
		return ActivityEvent{
			UserID:     "u1",
			RecipeID:   recipeID,
			Type:       activityType,
			OccurredAt: now.Add(-age),
		}
	}

	cases := []struct {
		name           string
		eventsByRecipe map[string][]ActivityEvent
		want           map[string]float64
	}{
		{
			name: "max_scores_one",
			eventsByRecipe: map[string][]ActivityEvent{
				"hot":  {event("hot", ActivityCooked, time.Hour)},
				"warm": {event("warm", ActivityViewed, time.Hour)},
			},
			want: map[string]float64{"hot": 1.0, "warm": 1.0 / 3.0},
		},
		{
			name: "weighted_counts",
			eventsByRecipe: map[string][]ActivityEvent{
				"a": {
					event("a", ActivityCooked, time.Hour),
					event("a", ActivityFavorited, time.Hour),
					event("a", ActivityViewed, time.Hour),
				},
				"b": {
					event("b", ActivityViewed, time.Hour),
					event("b", ActivityViewed, time.Hour),
					event("b", ActivityViewed, time.Hour),
				},
			},
			want: map[string]float64{"a": 1.0, "b": 0.5},
		},
		{
			name: "events_outside_window_ignored",
			eventsByRecipe: map[string][]ActivityEvent{
				"stale": {event("stale", ActivityCooked, 31*24*time.Hour)},
				"fresh": {event("fresh", ActivityViewed, 24*time.Hour)},
			},
			want: map[string]float64{"stale": 0.0, "fresh": 1.0},
		},
		{
			name: "ratings_do_not_count",
			eventsByRecipe: map[string][]ActivityEvent{
				"rated": {event("rated", ActivityRated, time.Hour)},
			},
			want: map[string]float64{"rated": 0.0},
		},
		{
			name:           "empty_batch",
			eventsByRecipe: map[string][]ActivityEvent{},
			want:           map[string]float64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TrendingScores(tc.eventsByRecipe, now, config)
			assert.Len(t, got, len(tc.want))
			for recipeID, want := range tc.want {
				assert.InDelta(t, want, got[recipeID], 0.0001, "score for %s", recipeID)
				assert.GreaterOrEqual(t, got[recipeID], 0.0)
				assert.LessOrEqual(t, got[recipeID], 1.0)
			}
		})
	}
}
