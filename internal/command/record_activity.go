package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// RecordActivityRequest is the request for the RecordActivity command.
type RecordActivityRequest struct {
	UserID       string
	RecipeID     string
	ActivityType string
	Rating       *float64
}

// RecordActivity validates and durably appends one behavioural event.
// not_interested events are idempotent per user-recipe pair; every other
// type may repeat and accumulates signal.
type RecordActivity struct {
	Appender datasources.ActivityAppender
	Lister   datasources.UserActivityLister
	Now      func() time.Time
}

// NewRecordActivity creates a properly initialized RecordActivity command.
func NewRecordActivity(
	appender datasources.ActivityAppender,
	lister datasources.UserActivityLister,
) *RecordActivity {
	return &RecordActivity{
		Appender: appender,
		Lister:   lister,
		Now:      time.Now,
	}
}

// Execute records the event. Validation failures reject the whole event;
// nothing is partially written.
func (c *RecordActivity) Execute(ctx context.Context, req RecordActivityRequest) (Empty, error) {
	event, err := domain.NewActivityEvent(
		req.UserID,
		req.RecipeID,
		domain.ActivityType(req.ActivityType),
		req.Rating,
		c.Now().UTC(),
	)
	if err != nil {
		return Empty{}, err
	}

	if event.Type == domain.ActivityNotInterested {
		recorded, err := c.alreadyNotInterested(ctx, event)
		if err != nil {
			return Empty{}, err
		}
		if recorded {
			logger := domain.LoggerFromContext(ctx)
			logger.DebugContext(ctx, "not_interested already recorded, skipping append",
				"user_id", event.UserID, "recipe_id", event.RecipeID)
			return Empty{}, nil
		}
	}

	event.ID = uuid.NewString()

	if err := c.Appender.AppendActivity(ctx, event); err != nil {
		return Empty{}, fmt.Errorf("appending activity event: %w", err)
	}

	return Empty{}, nil
}

func (c *RecordActivity) alreadyNotInterested(
	ctx context.Context, event domain.ActivityEvent,
) (bool, error) {
	events, err := c.Lister.ListUserActivity(ctx, event.UserID)
	if err != nil {
		return false, fmt.Errorf("checking for existing not_interested event: %w", err)
	}

	for _, existing := range events {
		if existing.RecipeID == event.RecipeID && existing.Type == domain.ActivityNotInterested {
			return true, nil
		}
	}
	return false, nil
}
