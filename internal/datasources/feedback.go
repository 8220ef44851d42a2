package datasources

import (
	"context"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// FeedbackRepository combines all feedback log operations.
type FeedbackRepository interface {
	FeedbackAppender
	UserFeedbackLister
}

type FeedbackAppender interface {
	// AppendFeedback durably appends one feedback event to the log.
	AppendFeedback(ctx context.Context, event domain.FeedbackEvent) error
}

type UserFeedbackLister interface {
	// ListUserFeedback returns a user's feedback events in insertion order.
	ListUserFeedback(ctx context.Context, userID string) ([]domain.FeedbackEvent, error)
}

// NullFeedbackRepository is a null implementation of FeedbackRepository.
type NullFeedbackRepository struct{}

var _ FeedbackRepository = NullFeedbackRepository{}

func (NullFeedbackRepository) AppendFeedback(_ context.Context, _ domain.FeedbackEvent) error {
	return nil
}

func (NullFeedbackRepository) ListUserFeedback(_ context.Context, _ string) ([]domain.FeedbackEvent, error) {
	return nil, nil
}
