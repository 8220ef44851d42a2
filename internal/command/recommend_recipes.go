package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// Recommendation reasons returned to the caller.
const (
	ReasonSimilarUsers     = "similar_users"
	ReasonMatchesTastes    = "matches_your_tastes"
	ReasonTrending         = "trending"
	ReasonMarkedInterested = "marked_interested"
)

// RecommenderConfig holds the signal weights and constraints for hybrid
// scoring. The weights are empirically chosen starting points, not derived
// from an objective function; tune them against the engine's property
// tests rather than treating them as fixed.
type RecommenderConfig struct {
	// CollabWeight scales the collaborative (similar users) signal.
	CollabWeight float64

	// ContentWeight scales the content (taste profile) signal.
	ContentWeight float64

	// TrendWeight scales the recency-weighted popularity signal.
	TrendWeight float64

	// InterestedBonus is added flat, after the weighted sum, for recipes
	// the user explicitly marked interested.
	InterestedBonus float64

	// NeighborhoodSize is the number of most-similar users considered for
	// collaborative scoring.
	NeighborhoodSize int

	// MaxSameCategoryRun bounds how many consecutive results may share a
	// category before the diversity pass skips ahead.
	MaxSameCategoryRun int

	Affinity domain.AffinityWeights
	Features domain.FeatureWeights
	Trending domain.TrendingConfig
}

// DefaultRecommenderConfig returns the standard signal weights.
func DefaultRecommenderConfig() RecommenderConfig {
	return RecommenderConfig{
		CollabWeight:       0.30,
		ContentWeight:      0.50,
		TrendWeight:        0.10,
		InterestedBonus:    0.15,
		NeighborhoodSize:   10,
		MaxSameCategoryRun: 3,
		Affinity:           domain.DefaultAffinityWeights(),
		Features:           domain.DefaultFeatureWeights(),
		Trending:           domain.DefaultTrendingConfig(),
	}
}

// RecommendRecipesRequest is the request for the RecommendRecipes command.
type RecommendRecipesRequest struct {
	UserID             string
	CandidateRecipeIDs []string
	Limit              int
}

// RecommendedRecipe is one ranked result with its score and the signals
// that produced it.
type RecommendedRecipe struct {
	RecipeID string   `json:"recipe_id"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

// RecommendRecipes ranks candidate recipes for a user by blending
// collaborative, content, trending and explicit-feedback signals, then
// applies the category diversity constraint. Everything is recomputed from
// the activity log per request; there is no cross-request state.
type RecommendRecipes struct {
	Activity datasources.ActivityRepository
	Feedback datasources.UserFeedbackLister
	Catalog  datasources.RecipeFetcher
	Config   RecommenderConfig
	Now      func() time.Time
}

// NewRecommendRecipes creates a properly initialized RecommendRecipes command.
func NewRecommendRecipes(
	activity datasources.ActivityRepository,
	feedback datasources.UserFeedbackLister,
	catalog datasources.RecipeFetcher,
	config RecommenderConfig,
) *RecommendRecipes {
	return &RecommendRecipes{
		Activity: activity,
		Feedback: feedback,
		Catalog:  catalog,
		Config:   config,
		Now:      time.Now,
	}
}

func (c *RecommendRecipes) Execute(
	ctx context.Context, req RecommendRecipesRequest,
) ([]RecommendedRecipe, error) {
	if len(req.CandidateRecipeIDs) == 0 {
		return []RecommendedRecipe{}, nil
	}

	candidateIDs, recipeByID, err := c.fetchCandidates(ctx, req.CandidateRecipeIDs)
	if err != nil {
		return nil, err
	}
	if len(candidateIDs) == 0 {
		return []RecommendedRecipe{}, nil
	}

	userEvents, err := c.Activity.ListUserActivity(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing user activity: %w", err)
	}
	affinity := domain.AffinityScores(userEvents, c.Config.Affinity)
	positive := domain.PositiveSet(affinity)

	excluded, interested, err := c.feedbackBias(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	trendScores, err := c.trendingScores(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	coldStart := len(positive) == 0

	var collabScores map[string]float64
	var profile domain.FeatureVector
	if !coldStart {
		collabScores, err = c.collaborativeScores(ctx, req.UserID, positive, candidateIDs)
		if err != nil {
			return nil, err
		}

		profile, err = c.contentProfile(ctx, affinity)
		if err != nil {
			return nil, err
		}
	}

	scored := make([]RecommendedRecipe, 0, len(candidateIDs))
	for _, recipeID := range candidateIDs {
		if _, skip := excluded[recipeID]; skip {
			continue
		}

		if coldStart {
			scored = append(scored, RecommendedRecipe{
				RecipeID: recipeID,
				Score:    trendScores[recipeID],
				Reasons:  []string{ReasonTrending},
			})
			continue
		}

		collabScore := collabScores[recipeID]
		contentScore := domain.Cosine(profile, domain.Featurize(recipeByID[recipeID], c.Config.Features))
		trendScore := trendScores[recipeID]

		score := c.Config.CollabWeight*collabScore +
			c.Config.ContentWeight*contentScore +
			c.Config.TrendWeight*trendScore

		var reasons []string
		if collabScore > 0 {
			reasons = append(reasons, ReasonSimilarUsers)
		}
		if contentScore > 0 {
			reasons = append(reasons, ReasonMatchesTastes)
		}
		if trendScore > 0 {
			reasons = append(reasons, ReasonTrending)
		}
		if _, ok := interested[recipeID]; ok {
			score += c.Config.InterestedBonus
			reasons = append(reasons, ReasonMarkedInterested)
		}

		scored = append(scored, RecommendedRecipe{
			RecipeID: recipeID,
			Score:    score,
			Reasons:  reasons,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].RecipeID < scored[j].RecipeID
	})

	limit := req.Limit
	if limit <= 0 || limit > len(scored) {
		limit = len(scored)
	}

	categories := make(map[string]string, len(recipeByID))
	for recipeID, recipe := range recipeByID {
		categories[recipeID] = recipe.Category
	}

	return diversify(scored, categories, limit, c.Config.MaxSameCategoryRun), nil
}

// fetchCandidates resolves candidate ids against the catalog, silently
// dropping ids without a record and duplicates.
func (c *RecommendRecipes) fetchCandidates(
	ctx context.Context, requested []string,
) ([]string, map[string]domain.Recipe, error) {
	seen := make(map[string]struct{}, len(requested))
	unique := make([]string, 0, len(requested))
	for _, recipeID := range requested {
		if _, dup := seen[recipeID]; dup {
			continue
		}
		seen[recipeID] = struct{}{}
		unique = append(unique, recipeID)
	}

	recipes, err := c.Catalog.FetchRecipesByID(ctx, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching candidate recipes: %w", err)
	}

	recipeByID := make(map[string]domain.Recipe, len(recipes))
	for _, recipe := range recipes {
		recipeByID[recipe.ID] = recipe
	}

	candidateIDs := make([]string, 0, len(recipeByID))
	for _, recipeID := range unique {
		if _, ok := recipeByID[recipeID]; ok {
			candidateIDs = append(candidateIDs, recipeID)
			continue
		}
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "candidate recipe has no catalog record, excluding",
			"recipe_id", recipeID)
	}

	return candidateIDs, recipeByID, nil
}

// feedbackBias reduces the user's feedback history to its effect on this
// run: hard-excluded recipes and recipes to boost. The latest feedback per
// recipe wins.
func (c *RecommendRecipes) feedbackBias(
	ctx context.Context, userID string,
) (excluded, interested map[string]struct{}, err error) {
	events, err := c.Feedback.ListUserFeedback(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing user feedback: %w", err)
	}

	latest := make(map[string]domain.FeedbackType, len(events))
	for _, ev := range events {
		latest[ev.RecipeID] = ev.Type
	}

	excluded = make(map[string]struct{})
	interested = make(map[string]struct{})
	for recipeID, feedbackType := range latest {
		switch feedbackType {
		case domain.FeedbackNotInterested:
			excluded[recipeID] = struct{}{}
		case domain.FeedbackInterested:
			interested[recipeID] = struct{}{}
		}
	}
	return excluded, interested, nil
}

func (c *RecommendRecipes) trendingScores(
	ctx context.Context, candidateIDs []string,
) (map[string]float64, error) {
	eventsByRecipe := make(map[string][]domain.ActivityEvent, len(candidateIDs))
	for _, recipeID := range candidateIDs {
		events, err := c.Activity.ListRecipeActivity(ctx, recipeID)
		if err != nil {
			return nil, fmt.Errorf("listing recipe activity: %w", err)
		}
		eventsByRecipe[recipeID] = events
	}

	return domain.TrendingScores(eventsByRecipe, c.Now().UTC(), c.Config.Trending), nil
}

// collaborativeScores computes the neighborhood-weighted affinity for each
// candidate. Neighbor affinities are computed once per request and shared
// across candidates; nothing survives the call.
func (c *RecommendRecipes) collaborativeScores(
	ctx context.Context,
	userID string,
	targetPositive map[string]struct{},
	candidateIDs []string,
) (map[string]float64, error) {
	userIDs, err := c.Activity.ListActiveUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing user ids: %w", err)
	}

	affinityByUser := make(map[string]map[string]float64, len(userIDs))
	positiveByUser := make(map[string]map[string]struct{}, len(userIDs))
	for _, otherID := range userIDs {
		if otherID == userID {
			continue
		}
		events, err := c.Activity.ListUserActivity(ctx, otherID)
		if err != nil {
			return nil, fmt.Errorf("listing activity for user %s: %w", otherID, err)
		}
		affinity := domain.AffinityScores(events, c.Config.Affinity)
		affinityByUser[otherID] = affinity
		positiveByUser[otherID] = domain.PositiveSet(affinity)
	}

	neighbors := domain.TopNeighbors(targetPositive, positiveByUser, c.Config.NeighborhoodSize)
	if len(neighbors) == 0 {
		return nil, nil
	}

	scores := make(map[string]float64, len(candidateIDs))
	for _, recipeID := range candidateIDs {
		weightedSum := float64(0)
		totalSimilarity := float64(0)
		for _, neighbor := range neighbors {
			affinity, ok := affinityByUser[neighbor.UserID][recipeID]
			if !ok {
				continue
			}
			weightedSum += neighbor.Similarity * affinity
			totalSimilarity += neighbor.Similarity
		}
		if totalSimilarity > 0 {
			scores[recipeID] = weightedSum / totalSimilarity
		}
	}
	return scores, nil
}

func (c *RecommendRecipes) contentProfile(
	ctx context.Context, affinity map[string]float64,
) (domain.FeatureVector, error) {
	positiveIDs := make([]string, 0, len(affinity))
	for recipeID, score := range affinity {
		if score > 0 {
			positiveIDs = append(positiveIDs, recipeID)
		}
	}
	sort.Strings(positiveIDs)

	recipes, err := c.Catalog.FetchRecipesByID(ctx, positiveIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching liked recipes: %w", err)
	}

	features := make(map[string]domain.FeatureVector, len(recipes))
	for _, recipe := range recipes {
		features[recipe.ID] = domain.Featurize(recipe, c.Config.Features)
	}

	return domain.ContentProfile(affinity, features), nil
}

// diversify greedily builds the output, skipping a candidate that would
// extend a same-category run past maxRun. Skipped candidates stay eligible
// and are placed once the run breaks, or at the end when nothing else
// remains.
func diversify(
	sorted []RecommendedRecipe,
	categories map[string]string,
	limit, maxRun int,
) []RecommendedRecipe {
	if maxRun <= 0 {
		if len(sorted) > limit {
			sorted = sorted[:limit]
		}
		return sorted
	}

	remaining := make([]RecommendedRecipe, len(sorted))
	copy(remaining, sorted)

	out := make([]RecommendedRecipe, 0, limit)
	runCategory := ""
	runLength := 0

	for len(out) < limit && len(remaining) > 0 {
		pick := -1
		for i, candidate := range remaining {
			if runLength >= maxRun && categories[candidate.RecipeID] == runCategory {
				continue
			}
			pick = i
			break
		}
		if pick == -1 {
			// Only run-extending candidates remain; take the best of them.
			pick = 0
		}

		chosen := remaining[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)

		category := categories[chosen.RecipeID]
		if category == runCategory {
			runLength++
		} else {
			runCategory = category
			runLength = 1
		}
		out = append(out, chosen)
	}

	return out
}
