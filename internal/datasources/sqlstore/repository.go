// Package sqlstore implements the activity and feedback log, and read-only
// catalog access, over a relational database. Events are append-only rows;
// insertion order is preserved by an auto-increment sequence column.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

var _ datasources.ActivityRepository = (*Repository)(nil)
var _ datasources.FeedbackRepository = (*Repository)(nil)
var _ datasources.ActivityLogReader = (*Repository)(nil)
var _ datasources.CatalogRepository = (*Repository)(nil)

func New(db *sql.DB, driver Driver) *Repository {
	return &Repository{db: db, flavor: flavorFor(driver)}
}

// Migrate creates the event tables if they are missing. The recipes table
// belongs to the main application and is not created here.
func (r *Repository) Migrate(ctx context.Context) error {
	sequenceColumn := "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.flavor == sqlbuilder.MySQL {
		sequenceColumn = "seq BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS activity_events (
			%s,
			id VARCHAR(36) NOT NULL,
			user_id VARCHAR(255) NOT NULL,
			recipe_id VARCHAR(255) NOT NULL,
			activity_type VARCHAR(32) NOT NULL,
			rating DOUBLE,
			occurred_at TIMESTAMP NOT NULL
		)`, sequenceColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS feedback_events (
			%s,
			id VARCHAR(36) NOT NULL,
			user_id VARCHAR(255) NOT NULL,
			recipe_id VARCHAR(255) NOT NULL,
			feedback_type VARCHAR(32) NOT NULL,
			occurred_at TIMESTAMP NOT NULL
		)`, sequenceColumn),
		`CREATE INDEX IF NOT EXISTS idx_activity_events_user ON activity_events (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_events_recipe ON activity_events (recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_events_user ON feedback_events (user_id)`,
	}

	for _, statement := range statements {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("running event log migration: %w", err)
		}
	}
	return nil
}

func (r *Repository) AppendActivity(ctx context.Context, event domain.ActivityEvent) error {
	var rating interface{}
	if event.Rating != nil {
		rating = *event.Rating
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("activity_events")
	ib.Cols("id", "user_id", "recipe_id", "activity_type", "rating", "occurred_at")
	ib.Values(event.ID, event.UserID, event.RecipeID, string(event.Type), rating, event.OccurredAt)

	query, args := ib.BuildWithFlavor(r.flavor)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "append activity", Err: err}
	}
	return nil
}

func (r *Repository) AppendFeedback(ctx context.Context, event domain.FeedbackEvent) error {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("feedback_events")
	ib.Cols("id", "user_id", "recipe_id", "feedback_type", "occurred_at")
	ib.Values(event.ID, event.UserID, event.RecipeID, string(event.Type), event.OccurredAt)

	query, args := ib.BuildWithFlavor(r.flavor)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "append feedback", Err: err}
	}
	return nil
}

func (r *Repository) ListUserActivity(ctx context.Context, userID string) ([]domain.ActivityEvent, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "user_id", "recipe_id", "activity_type", "rating", "occurred_at")
	sb.From("activity_events")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("seq").Asc()

	return r.queryActivityEvents(ctx, sb)
}

func (r *Repository) ListRecipeActivity(ctx context.Context, recipeID string) ([]domain.ActivityEvent, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "user_id", "recipe_id", "activity_type", "rating", "occurred_at")
	sb.From("activity_events")
	sb.Where(sb.Equal("recipe_id", recipeID))
	sb.OrderBy("seq").Asc()

	return r.queryActivityEvents(ctx, sb)
}

func (r *Repository) queryActivityEvents(
	ctx context.Context, sb *sqlbuilder.SelectBuilder,
) ([]domain.ActivityEvent, error) {
	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running activity events query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.ActivityEvent{}
	for rows.Next() {
		ev, err := scanActivityEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity event rows: %w", err)
	}

	return events, nil
}

func scanActivityEvent(rows *sql.Rows) (domain.ActivityEvent, error) {
	var ev domain.ActivityEvent
	var activityType string
	var rating sql.NullFloat64

	if err := rows.Scan(
		&ev.ID,
		&ev.UserID,
		&ev.RecipeID,
		&activityType,
		&rating,
		&ev.OccurredAt,
	); err != nil {
		return domain.ActivityEvent{}, fmt.Errorf("scanning activity event: %w", err)
	}

	ev.Type = domain.ActivityType(activityType)
	if rating.Valid {
		ev.Rating = &rating.Float64
	}
	return ev, nil
}

func (r *Repository) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("DISTINCT user_id")
	sb.From("activity_events")
	sb.OrderBy("user_id").Asc()

	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running user ids query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	userIDs := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user id rows: %w", err)
	}

	return userIDs, nil
}

func (r *Repository) ListUserFeedback(ctx context.Context, userID string) ([]domain.FeedbackEvent, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "user_id", "recipe_id", "feedback_type", "occurred_at")
	sb.From("feedback_events")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("seq").Asc()

	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running feedback events query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.FeedbackEvent{}
	for rows.Next() {
		var ev domain.FeedbackEvent
		var feedbackType string
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.RecipeID, &feedbackType, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scanning feedback event: %w", err)
		}
		ev.Type = domain.FeedbackType(feedbackType)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback event rows: %w", err)
	}

	return events, nil
}

func (r *Repository) ReadSince(ctx context.Context, offset int64) ([]domain.ActivityEvent, int64, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("seq", "id", "user_id", "recipe_id", "activity_type", "rating", "occurred_at")
	sb.From("activity_events")
	sb.Where(sb.GreaterThan("seq", offset))
	sb.OrderBy("seq").Asc()

	query, args := sb.BuildWithFlavor(r.flavor)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("running log replay query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.ActivityEvent{}
	next := offset
	for rows.Next() {
		var seq int64
		var ev domain.ActivityEvent
		var activityType string
		var rating sql.NullFloat64
		if err := rows.Scan(&seq, &ev.ID, &ev.UserID, &ev.RecipeID, &activityType, &rating, &ev.OccurredAt); err != nil {
			return nil, 0, fmt.Errorf("scanning replayed event: %w", err)
		}
		ev.Type = domain.ActivityType(activityType)
		if rating.Valid {
			ev.Rating = &rating.Float64
		}
		events = append(events, ev)
		next = seq
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating replayed event rows: %w", err)
	}

	return events, next, nil
}
