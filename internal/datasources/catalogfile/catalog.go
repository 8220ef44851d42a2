// Package catalogfile serves recipe catalog reads from a JSON file
// exported by the main application, for deployments without a shared
// database. The file is loaded once at startup; the engine never writes it.
package catalogfile

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type Catalog struct {
	byID map[string]domain.Recipe
	ids  []string
}

var _ datasources.CatalogRepository = (*Catalog)(nil)

// Load reads a JSON array of recipe records from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe catalog file: %w", err)
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipe catalog file: %w", err)
	}

	c := &Catalog{byID: make(map[string]domain.Recipe, len(recipes))}
	for _, recipe := range recipes {
		if recipe.ID == "" {
			return nil, fmt.Errorf("recipe catalog file contains a record without an id")
		}
		if _, exists := c.byID[recipe.ID]; !exists {
			c.ids = append(c.ids, recipe.ID)
		}
		c.byID[recipe.ID] = recipe
	}
	sort.Strings(c.ids)

	return c, nil
}

func (c *Catalog) FetchRecipesByID(_ context.Context, ids []string) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := c.byID[id]; ok {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (c *Catalog) ListRecipeIDs(_ context.Context) ([]string, error) {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids, nil
}
