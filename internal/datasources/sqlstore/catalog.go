package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// FetchRecipesByID reads catalog records from the main application's
// recipes table. Ingredients and tags are stored as JSON arrays. Unknown
// ids are silently absent from the result.
func (r *Repository) FetchRecipesByID(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "ingredients", "category", "tags", "prep_time_minutes", "cook_time_minutes", "difficulty")
	sb.From("recipes")
	sb.Where(sb.In("id", values...))

	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running recipes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipeByID := make(map[string]domain.Recipe, len(ids))
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipeByID[recipe.ID] = recipe
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe rows: %w", err)
	}

	// Preserve the requested order for determinism.
	recipes := make([]domain.Recipe, 0, len(recipeByID))
	for _, id := range ids {
		if recipe, ok := recipeByID[id]; ok {
			recipes = append(recipes, recipe)
			delete(recipeByID, id)
		}
	}

	return recipes, nil
}

func scanRecipe(rows *sql.Rows) (domain.Recipe, error) {
	var recipe domain.Recipe
	var ingredients, tags sql.NullString
	var prepMinutes, cookMinutes sql.NullInt64
	var difficulty sql.NullString

	if err := rows.Scan(
		&recipe.ID,
		&ingredients,
		&recipe.Category,
		&tags,
		&prepMinutes,
		&cookMinutes,
		&difficulty,
	); err != nil {
		return domain.Recipe{}, fmt.Errorf("scanning recipe: %w", err)
	}

	if ingredients.Valid && ingredients.String != "" {
		if err := json.Unmarshal([]byte(ingredients.String), &recipe.Ingredients); err != nil {
			return domain.Recipe{}, fmt.Errorf("decoding ingredients for recipe %s: %w", recipe.ID, err)
		}
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &recipe.Tags); err != nil {
			return domain.Recipe{}, fmt.Errorf("decoding tags for recipe %s: %w", recipe.ID, err)
		}
	}
	if prepMinutes.Valid {
		minutes := int(prepMinutes.Int64)
		recipe.PrepTimeMinutes = &minutes
	}
	if cookMinutes.Valid {
		minutes := int(cookMinutes.Int64)
		recipe.CookTimeMinutes = &minutes
	}
	if difficulty.Valid {
		recipe.Difficulty = difficulty.String
	}

	return recipe, nil
}

func (r *Repository) ListRecipeIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id")
	sb.From("recipes")
	sb.OrderBy("id").Asc()

	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running recipe ids query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning recipe id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe id rows: %w", err)
	}

	return ids, nil
}
