package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// SubmitFeedbackRequest is the request for the SubmitFeedback command.
type SubmitFeedbackRequest struct {
	UserID       string
	RecipeID     string
	FeedbackType string
}

// SubmitFeedback validates and durably appends one explicit feedback event.
// Feedback is append-only; scoring uses the latest event per pair.
type SubmitFeedback struct {
	Appender datasources.FeedbackAppender
	Now      func() time.Time
}

// NewSubmitFeedback creates a properly initialized SubmitFeedback command.
func NewSubmitFeedback(appender datasources.FeedbackAppender) *SubmitFeedback {
	return &SubmitFeedback{
		Appender: appender,
		Now:      time.Now,
	}
}

func (c *SubmitFeedback) Execute(ctx context.Context, req SubmitFeedbackRequest) (Empty, error) {
	event, err := domain.NewFeedbackEvent(
		req.UserID,
		req.RecipeID,
		domain.FeedbackType(req.FeedbackType),
		c.Now().UTC(),
	)
	if err != nil {
		return Empty{}, err
	}

	event.ID = uuid.NewString()

	if err := c.Appender.AppendFeedback(ctx, event); err != nil {
		return Empty{}, fmt.Errorf("appending feedback event: %w", err)
	}

	return Empty{}, nil
}
