package domain

import "sort"

// Jaccard returns the Jaccard coefficient of two recipe id sets, or 0 if
// either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	if len(b) < len(a) {
		a, b = b, a
	}

	intersection := 0
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Neighbor is another user weighted by their similarity to the target.
type Neighbor struct {
	UserID     string
	Similarity float64
}

// TopNeighbors ranks other users by Jaccard similarity of their
// positive-affinity recipe sets against the target's, keeping the k most
// similar with similarity strictly above zero. Ties break by user id
// ascending for determinism.
func TopNeighbors(
	target map[string]struct{},
	others map[string]map[string]struct{},
	k int,
) []Neighbor {
	if k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(others))
	for userID, positives := range others {
		similarity := Jaccard(target, positives)
		if similarity <= 0 {
			continue
		}
		neighbors = append(neighbors, Neighbor{UserID: userID, Similarity: similarity})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// ContentProfile returns the affinity-weighted centroid of the feature
// vectors of recipes the user has positive affinity for. Returns nil when
// the user has no positive-affinity history with featurized recipes.
func ContentProfile(
	affinity map[string]float64,
	features map[string]FeatureVector,
) FeatureVector {
	profile := make(FeatureVector)
	totalWeight := float64(0)

	for recipeID, score := range affinity {
		if score <= 0 {
			continue
		}
		vector, ok := features[recipeID]
		if !ok {
			continue
		}
		profile.AddScaled(vector, score)
		totalWeight += score
	}

	if totalWeight == 0 {
		return nil
	}

	for term := range profile {
		profile[term] /= totalWeight
	}
	return profile
}
