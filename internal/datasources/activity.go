package datasources

import (
	"context"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// ActivityRepository combines all activity log operations.
type ActivityRepository interface {
	ActivityAppender
	UserActivityLister
	RecipeActivityLister
	UserIDsLister
}

type ActivityAppender interface {
	// AppendActivity durably appends one event to the log. A failed append
	// returns a *domain.StorageError; nothing is partially written.
	AppendActivity(ctx context.Context, event domain.ActivityEvent) error
}

type UserActivityLister interface {
	// ListUserActivity returns a user's events in insertion order.
	ListUserActivity(ctx context.Context, userID string) ([]domain.ActivityEvent, error)
}

type RecipeActivityLister interface {
	// ListRecipeActivity returns a recipe's events in insertion order.
	ListRecipeActivity(ctx context.Context, recipeID string) ([]domain.ActivityEvent, error)
}

type UserIDsLister interface {
	// ListActiveUserIDs returns every user id present in the log.
	ListActiveUserIDs(ctx context.Context) ([]string, error)
}

// ActivityLogReader exposes raw replay access to the underlying append-only
// log, decoupling the storage format from the algorithms reading it.
type ActivityLogReader interface {
	// ReadSince returns events after the given offset in log order, along
	// with the offset to resume from.
	ReadSince(ctx context.Context, offset int64) ([]domain.ActivityEvent, int64, error)
}

// NullActivityRepository is a null implementation of ActivityRepository.
type NullActivityRepository struct{}

var _ ActivityRepository = NullActivityRepository{}

func (NullActivityRepository) AppendActivity(_ context.Context, _ domain.ActivityEvent) error {
	return nil
}

func (NullActivityRepository) ListUserActivity(_ context.Context, _ string) ([]domain.ActivityEvent, error) {
	return nil, nil
}

func (NullActivityRepository) ListRecipeActivity(_ context.Context, _ string) ([]domain.ActivityEvent, error) {
	return nil, nil
}

func (NullActivityRepository) ListActiveUserIDs(_ context.Context) ([]string, error) {
	return nil, nil
}
