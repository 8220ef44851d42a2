package datasources

import (
	"context"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// CatalogRepository combines read access to the recipe catalog, which is
// owned by the main application and treated as an external collaborator.
type CatalogRepository interface {
	RecipeFetcher
	RecipeIDsLister
}

type RecipeFetcher interface {
	// FetchRecipesByID returns the catalog records for the given ids.
	// Ids without a record are silently absent from the result.
	FetchRecipesByID(ctx context.Context, ids []string) ([]domain.Recipe, error)
}

type RecipeIDsLister interface {
	// ListRecipeIDs returns every recipe id in the catalog.
	ListRecipeIDs(ctx context.Context) ([]string, error)
}

// NullCatalogRepository is a null implementation of CatalogRepository.
type NullCatalogRepository struct{}

var _ CatalogRepository = NullCatalogRepository{}

func (NullCatalogRepository) FetchRecipesByID(_ context.Context, _ []string) ([]domain.Recipe, error) {
	return nil, nil
}

func (NullCatalogRepository) ListRecipeIDs(_ context.Context) ([]string, error) {
	return nil, nil
}
