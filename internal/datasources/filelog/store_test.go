package filelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.log")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func testEvent(userID, recipeID string, activityType domain.ActivityType) domain.ActivityEvent {
	return domain.ActivityEvent{
		ID:         fmt.Sprintf("%s-%s-%s", userID, recipeID, activityType),
		UserID:     userID,
		RecipeID:   recipeID,
		Type:       activityType,
		OccurredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_AppendAndList(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r1", domain.ActivityViewed)))
	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r2", domain.ActivityCooked)))
	require.NoError(t, store.AppendActivity(ctx, testEvent("u2", "r1", domain.ActivityFavorited)))

	userEvents, err := store.ListUserActivity(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, userEvents, 2)
	assert.Equal(t, "r1", userEvents[0].RecipeID)
	assert.Equal(t, "r2", userEvents[1].RecipeID)

	recipeEvents, err := store.ListRecipeActivity(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, recipeEvents, 2)
	assert.Equal(t, "u1", recipeEvents[0].UserID)
	assert.Equal(t, "u2", recipeEvents[1].UserID)

	userIDs, err := store.ListActiveUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, userIDs)
}

func TestStore_ReplayOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r1", domain.ActivityCooked)))
	feedback, err := domain.NewFeedbackEvent("u1", "r2", domain.FeedbackNotInterested, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.AppendFeedback(ctx, feedback))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	events, err := reopened.ListUserActivity(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActivityCooked, events[0].Type)

	feedbackEvents, err := reopened.ListUserFeedback(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, feedbackEvents, 1)
	assert.Equal(t, domain.FeedbackNotInterested, feedbackEvents[0].Type)
}

func TestStore_TornFinalLineDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r1", domain.ActivityViewed)))
	require.NoError(t, store.Close())

	// Simulate a crash mid-append.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"kind":"activity","activity":{"user`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	events, err := reopened.ListUserActivity(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestStore_ReadSince(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r1", domain.ActivityViewed)))
	require.NoError(t, store.AppendActivity(ctx, testEvent("u1", "r2", domain.ActivityViewed)))

	events, offset, err := store.ReadSince(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), offset)

	require.NoError(t, store.AppendActivity(ctx, testEvent("u2", "r3", domain.ActivityCooked)))

	events, offset, err = store.ReadSince(ctx, offset)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "r3", events[0].RecipeID)
	assert.Equal(t, int64(3), offset)

	events, _, err = store.ReadSince(ctx, offset)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			userID := fmt.Sprintf("u%d", w)
			for i := 0; i < perWriter; i++ {
				ev := testEvent(userID, fmt.Sprintf("r%d", i), domain.ActivityViewed)
				assert.NoError(t, store.AppendActivity(ctx, ev))
			}
		}(w)
	}
	wg.Wait()

	events, _, err := store.ReadSince(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, writers*perWriter)

	for w := 0; w < writers; w++ {
		userEvents, err := store.ListUserActivity(ctx, fmt.Sprintf("u%d", w))
		require.NoError(t, err)
		assert.Len(t, userEvents, perWriter)
	}
}
