package domain

import (
	"math"
	"strings"
)

// TimeBucket groups recipes by total time commitment.
type TimeBucket string

const (
	TimeBucketQuick    TimeBucket = "quick"    // 20 minutes or less
	TimeBucketModerate TimeBucket = "moderate" // up to an hour
	TimeBucketLong     TimeBucket = "long"
)

const (
	quickMaxMinutes    = 20
	moderateMaxMinutes = 60
)

// FeatureWeights holds the per-field term weights used when featurizing a
// recipe. The defaults are empirically chosen; treat them as tunables.
type FeatureWeights struct {
	Ingredient float64
	Category   float64
	Tag        float64
	TimeBucket float64
	Difficulty float64
}

// DefaultFeatureWeights returns the default featurization weights.
func DefaultFeatureWeights() FeatureWeights {
	return FeatureWeights{
		Ingredient: 1.0,
		Category:   2.0,
		Tag:        1.5,
		TimeBucket: 1.0,
		Difficulty: 1.0,
	}
}

// FeatureVector is a weighted sparse term vector over recipe metadata.
// Terms are namespaced so an ingredient and a tag with the same name stay
// distinct dimensions.
type FeatureVector map[string]float64

// TimeBucketFor buckets a recipe by its total minutes. Recipes with no time
// information default to moderate rather than failing.
func TimeBucketFor(r Recipe) TimeBucket {
	minutes, ok := r.TotalMinutes()
	if !ok {
		return TimeBucketModerate
	}

	switch {
	case minutes <= quickMaxMinutes:
		return TimeBucketQuick
	case minutes <= moderateMaxMinutes:
		return TimeBucketModerate
	default:
		return TimeBucketLong
	}
}

// Featurize converts a recipe record into its weighted term vector. It is a
// pure function of the record; missing fields degrade to absent terms.
func Featurize(r Recipe, w FeatureWeights) FeatureVector {
	v := make(FeatureVector)

	for _, ingredient := range r.Ingredients {
		if term := normalizeTerm(ingredient); term != "" {
			v["ingredient:"+term] = w.Ingredient
		}
	}

	if term := normalizeTerm(r.Category); term != "" {
		v["category:"+term] = w.Category
	}

	for _, tag := range r.Tags {
		if term := normalizeTerm(tag); term != "" {
			v["tag:"+term] = w.Tag
		}
	}

	v["time:"+string(TimeBucketFor(r))] = w.TimeBucket

	if term := normalizeTerm(r.Difficulty); term != "" {
		v["difficulty:"+term] = w.Difficulty
	}

	return v
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Dot returns the dot product of two sparse vectors.
func Dot(a, b FeatureVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}

	sum := float64(0)
	for term, weight := range a {
		sum += weight * b[term]
	}
	return sum
}

// Norm returns the Euclidean norm of a sparse vector.
func (v FeatureVector) Norm() float64 {
	sum := float64(0)
	for _, weight := range v {
		sum += weight * weight
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of two sparse vectors, or 0 if
// either is the zero vector.
func Cosine(a, b FeatureVector) float64 {
	normA := a.Norm()
	normB := b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return Dot(a, b) / (normA * normB)
}

// AddScaled adds scale*u to v in place.
func (v FeatureVector) AddScaled(u FeatureVector, scale float64) {
	for term, weight := range u {
		v[term] += scale * weight
	}
}
