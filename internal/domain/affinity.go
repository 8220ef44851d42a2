package domain

// AffinityWeights holds the scalar contribution each activity type makes to
// a user's implicit affinity for a recipe. The defaults are empirically
// chosen; treat them as tunables, not fixed truths.
type AffinityWeights struct {
	Cooked        float64
	Favorited     float64
	Viewed        float64
	NotInterested float64
}

// DefaultAffinityWeights returns the default implicit rating contributions.
func DefaultAffinityWeights() AffinityWeights {
	return AffinityWeights{
		Cooked:        1.0,
		Favorited:     0.8,
		Viewed:        0.1,
		NotInterested: -0.5,
	}
}

const maxRating = 5.0

// AffinityScores derives a user's implicit per-recipe affinity from their
// full event history. Contributions accumulate across repeated events and
// the total is clamped to [-1,1]. A not_interested event overrides any
// positive contributions for that pair.
func AffinityScores(events []ActivityEvent, w AffinityWeights) map[string]float64 {
	sums := make(map[string]float64)
	vetoed := make(map[string]bool)

	for _, ev := range events {
		switch ev.Type {
		case ActivityCooked:
			sums[ev.RecipeID] += w.Cooked
		case ActivityFavorited:
			sums[ev.RecipeID] += w.Favorited
		case ActivityViewed:
			sums[ev.RecipeID] += w.Viewed
		case ActivityRated:
			if ev.Rating != nil {
				sums[ev.RecipeID] += *ev.Rating / maxRating
			}
		case ActivityNotInterested:
			vetoed[ev.RecipeID] = true
		}
	}

	scores := make(map[string]float64, len(sums)+len(vetoed))
	for recipeID, sum := range sums {
		if vetoed[recipeID] {
			continue
		}
		scores[recipeID] = clamp(sum, -1, 1)
	}
	for recipeID := range vetoed {
		scores[recipeID] = clamp(w.NotInterested, -1, 1)
	}

	return scores
}

// PositiveSet returns the set of recipe ids with affinity greater than zero.
func PositiveSet(affinity map[string]float64) map[string]struct{} {
	positive := make(map[string]struct{})
	for recipeID, score := range affinity {
		if score > 0 {
			positive[recipeID] = struct{}{}
		}
	}
	return positive
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
