package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// AnalyzePreferencesConfig holds configuration for preference analysis.
type AnalyzePreferencesConfig struct {
	// TopFavorites caps the length of each ranked favorites list.
	TopFavorites int

	// CookingWindow is the trailing interval used for cooking frequency.
	CookingWindow time.Duration

	Affinity domain.AffinityWeights
}

// DefaultAnalyzePreferencesConfig returns the standard analysis settings.
func DefaultAnalyzePreferencesConfig() AnalyzePreferencesConfig {
	return AnalyzePreferencesConfig{
		TopFavorites:  10,
		CookingWindow: 30 * 24 * time.Hour,
		Affinity:      domain.DefaultAffinityWeights(),
	}
}

// AnalyzePreferencesRequest is the request for the AnalyzePreferences command.
type AnalyzePreferencesRequest struct {
	UserID string
}

// AnalyzePreferences aggregates a user's full activity history into a
// human-readable profile. Users with no activity get a zero-valued
// profile, not an error.
type AnalyzePreferences struct {
	Activity datasources.UserActivityLister
	Catalog  datasources.RecipeFetcher
	Config   AnalyzePreferencesConfig
	Now      func() time.Time
}

// NewAnalyzePreferences creates a properly initialized AnalyzePreferences command.
func NewAnalyzePreferences(
	activity datasources.UserActivityLister,
	catalog datasources.RecipeFetcher,
	config AnalyzePreferencesConfig,
) *AnalyzePreferences {
	return &AnalyzePreferences{
		Activity: activity,
		Catalog:  catalog,
		Config:   config,
		Now:      time.Now,
	}
}

func (c *AnalyzePreferences) Execute(
	ctx context.Context, req AnalyzePreferencesRequest,
) (domain.UserPreferenceProfile, error) {
	profile := domain.UserPreferenceProfile{
		FavoriteIngredients: []domain.RankedCount{},
		FavoriteCategories:  []domain.RankedCount{},
		FavoriteTags:        []domain.RankedCount{},
	}

	events, err := c.Activity.ListUserActivity(ctx, req.UserID)
	if err != nil {
		return domain.UserPreferenceProfile{}, fmt.Errorf("listing user activity: %w", err)
	}

	profile.TotalActivities = len(events)
	if len(events) == 0 {
		return profile, nil
	}

	affinity := domain.AffinityScores(events, c.Config.Affinity)

	cookedIDs := make(map[string]struct{})
	recentCooked := 0
	cutoff := c.Now().UTC().Add(-c.Config.CookingWindow)
	for _, ev := range events {
		if ev.Type != domain.ActivityCooked {
			continue
		}
		cookedIDs[ev.RecipeID] = struct{}{}
		if !ev.OccurredAt.Before(cutoff) {
			recentCooked++
		}
	}
	profile.CookingFrequencyPerMonth = float64(recentCooked)

	recipeByID, err := c.fetchProfileRecipes(ctx, affinity, cookedIDs)
	if err != nil {
		return domain.UserPreferenceProfile{}, err
	}

	c.rankFavorites(&profile, affinity, recipeByID)
	c.summarizeCooking(&profile, cookedIDs, recipeByID)

	return profile, nil
}

// fetchProfileRecipes loads every recipe the summary touches: those with
// positive affinity and those the user has cooked.
func (c *AnalyzePreferences) fetchProfileRecipes(
	ctx context.Context,
	affinity map[string]float64,
	cookedIDs map[string]struct{},
) (map[string]domain.Recipe, error) {
	wanted := make(map[string]struct{}, len(affinity)+len(cookedIDs))
	for recipeID, score := range affinity {
		if score > 0 {
			wanted[recipeID] = struct{}{}
		}
	}
	for recipeID := range cookedIDs {
		wanted[recipeID] = struct{}{}
	}

	ids := make([]string, 0, len(wanted))
	for recipeID := range wanted {
		ids = append(ids, recipeID)
	}
	sort.Strings(ids)

	recipes, err := c.Catalog.FetchRecipesByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching recipes for preference profile: %w", err)
	}

	recipeByID := make(map[string]domain.Recipe, len(recipes))
	for _, recipe := range recipes {
		recipeByID[recipe.ID] = recipe
	}
	return recipeByID, nil
}

// rankFavorites counts ingredients, categories and tags across the user's
// positive-affinity recipes.
func (c *AnalyzePreferences) rankFavorites(
	profile *domain.UserPreferenceProfile,
	affinity map[string]float64,
	recipeByID map[string]domain.Recipe,
) {
	ingredientCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	tagCounts := make(map[string]int)

	for recipeID, score := range affinity {
		if score <= 0 {
			continue
		}
		recipe, ok := recipeByID[recipeID]
		if !ok {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			ingredientCounts[ingredient]++
		}
		if recipe.Category != "" {
			categoryCounts[recipe.Category]++
		}
		for _, tag := range recipe.Tags {
			tagCounts[tag]++
		}
	}

	profile.FavoriteIngredients = domain.RankCounts(ingredientCounts, c.Config.TopFavorites)
	profile.FavoriteCategories = domain.RankCounts(categoryCounts, c.Config.TopFavorites)
	profile.FavoriteTags = domain.RankCounts(tagCounts, c.Config.TopFavorites)
}

var difficultyTieOrder = map[string]int{
	"easy":   0,
	"medium": 1,
	"hard":   2,
}

// summarizeCooking derives the average cook time and modal difficulty over
// recipes the user has cooked. Recipes without time information are left
// out of the average; difficulty ties break toward easy.
func (c *AnalyzePreferences) summarizeCooking(
	profile *domain.UserPreferenceProfile,
	cookedIDs map[string]struct{},
	recipeByID map[string]domain.Recipe,
) {
	totalMinutes := 0
	timedRecipes := 0
	difficultyCounts := make(map[string]int)

	for recipeID := range cookedIDs {
		recipe, ok := recipeByID[recipeID]
		if !ok {
			continue
		}
		if minutes, known := recipe.TotalMinutes(); known {
			totalMinutes += minutes
			timedRecipes++
		}
		if recipe.Difficulty != "" {
			difficultyCounts[recipe.Difficulty]++
		}
	}

	if timedRecipes > 0 {
		profile.AverageCookTimeMinutes = float64(totalMinutes) / float64(timedRecipes)
	}

	bestCount := 0
	for difficulty, count := range difficultyCounts {
		switch {
		case count > bestCount:
			profile.PreferredDifficulty = difficulty
			bestCount = count
		case count == bestCount && bestCount > 0:
			if difficultyTieOrder[difficulty] < difficultyTieOrder[profile.PreferredDifficulty] {
				profile.PreferredDifficulty = difficulty
			}
		}
	}
}
