package domain

import "time"

// ActivityType identifies the kind of behavioural signal an event records.
type ActivityType string

const (
	ActivityViewed        ActivityType = "viewed"
	ActivityFavorited     ActivityType = "favorited"
	ActivityCooked        ActivityType = "cooked"
	ActivityRated         ActivityType = "rated"
	ActivityNotInterested ActivityType = "not_interested"
)

var ValidActivityTypes = []ActivityType{
	ActivityViewed,
	ActivityFavorited,
	ActivityCooked,
	ActivityRated,
	ActivityNotInterested,
}

func (t ActivityType) Valid() bool {
	for _, v := range ValidActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ActivityEvent is one immutable behavioural signal for a user-recipe pair.
// Events are append-only; a user's affinity for a recipe is always
// recomputed from the full event history, never stored.
type ActivityEvent struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	RecipeID   string       `json:"recipe_id"`
	Type       ActivityType `json:"activity_type"`
	Rating     *float64     `json:"rating,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// NewActivityEvent validates and constructs an activity event. The rating is
// required and must be within [0,5] for rated events; for any other type it
// is ignored. The storage id is assigned at record time, not here.
func NewActivityEvent(
	userID, recipeID string,
	activityType ActivityType,
	rating *float64,
	occurredAt time.Time,
) (ActivityEvent, error) {
	if userID == "" {
		return ActivityEvent{}, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if recipeID == "" {
		return ActivityEvent{}, &ValidationError{Field: "recipe_id", Reason: "must not be empty"}
	}
	if !activityType.Valid() {
		return ActivityEvent{}, &ValidationError{
			Field:  "activity_type",
			Reason: "unknown activity type [" + string(activityType) + "]",
		}
	}

	ev := ActivityEvent{
		UserID:     userID,
		RecipeID:   recipeID,
		Type:       activityType,
		OccurredAt: occurredAt,
	}

	if activityType == ActivityRated {
		if rating == nil {
			return ActivityEvent{}, &ValidationError{Field: "rating", Reason: "required for rated events"}
		}
		if *rating < 0 || *rating > 5 {
			return ActivityEvent{}, &ValidationError{Field: "rating", Reason: "must be within [0,5]"}
		}
		r := *rating
		ev.Rating = &r
	}

	return ev, nil
}

// FeedbackType identifies explicit recommendation feedback.
type FeedbackType string

const (
	FeedbackInterested    FeedbackType = "interested"
	FeedbackNotInterested FeedbackType = "not_interested"
)

var ValidFeedbackTypes = []FeedbackType{
	FeedbackInterested,
	FeedbackNotInterested,
}

func (t FeedbackType) Valid() bool {
	for _, v := range ValidFeedbackTypes {
		if t == v {
			return true
		}
	}
	return false
}

// FeedbackEvent is an explicit signal about a recommendation, kept separate
// from behavioural activity. It only biases future scoring runs.
type FeedbackEvent struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	RecipeID   string       `json:"recipe_id"`
	Type       FeedbackType `json:"feedback_type"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// NewFeedbackEvent validates and constructs a feedback event.
func NewFeedbackEvent(
	userID, recipeID string,
	feedbackType FeedbackType,
	occurredAt time.Time,
) (FeedbackEvent, error) {
	if userID == "" {
		return FeedbackEvent{}, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if recipeID == "" {
		return FeedbackEvent{}, &ValidationError{Field: "recipe_id", Reason: "must not be empty"}
	}
	if !feedbackType.Valid() {
		return FeedbackEvent{}, &ValidationError{
			Field:  "feedback_type",
			Reason: "unknown feedback type [" + string(feedbackType) + "]",
		}
	}

	return FeedbackEvent{
		UserID:     userID,
		RecipeID:   recipeID,
		Type:       feedbackType,
		OccurredAt: occurredAt,
	}, nil
}
