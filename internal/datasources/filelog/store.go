// Package filelog implements the activity and feedback log as an
// append-only JSONL file. Appends are serialized and fsynced; reads serve
// a snapshot of the in-memory index rebuilt by replaying the file on open.
package filelog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

const (
	kindActivity = "activity"
	kindFeedback = "feedback"
)

// entry is the on-disk envelope, one JSON object per line.
type entry struct {
	Kind     string                `json:"kind"`
	Activity *domain.ActivityEvent `json:"activity,omitempty"`
	Feedback *domain.FeedbackEvent `json:"feedback,omitempty"`
}

// Store is a file-backed activity and feedback log.
type Store struct {
	writeMu sync.Mutex // serializes appends
	file    *os.File

	stateMu        sync.RWMutex
	activities     []domain.ActivityEvent
	feedback       []domain.FeedbackEvent
	activityByUser map[string][]int
	byRecipe       map[string][]int
	feedbackByUser map[string][]int
}

var _ datasources.ActivityRepository = (*Store)(nil)
var _ datasources.FeedbackRepository = (*Store)(nil)
var _ datasources.ActivityLogReader = (*Store)(nil)

// Open replays the log at path, creating it if absent.
func Open(path string) (*Store, error) {
	s := &Store{
		activityByUser: make(map[string][]int),
		byRecipe:       make(map[string][]int),
		feedbackByUser: make(map[string][]int),
	}

	if err := s.replay(path); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening activity log for append: %w", err)
	}
	s.file = file

	return s, nil
}

func (s *Store) replay(path string) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening activity log for replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines [][]byte
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading activity log: %w", err)
	}

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		var e entry
		if err := json.Unmarshal(line, &e); err != nil {
			// A torn final line means the process died mid-append; the
			// event was never acknowledged, so it is safe to drop.
			if i == len(lines)-1 {
				return nil
			}
			return fmt.Errorf("decoding activity log line %d: %w", i+1, err)
		}
		s.applyEntry(e)
	}

	return nil
}

func (s *Store) applyEntry(e entry) {
	switch {
	case e.Kind == kindActivity && e.Activity != nil:
		idx := len(s.activities)
		s.activities = append(s.activities, *e.Activity)
		s.activityByUser[e.Activity.UserID] = append(s.activityByUser[e.Activity.UserID], idx)
		s.byRecipe[e.Activity.RecipeID] = append(s.byRecipe[e.Activity.RecipeID], idx)
	case e.Kind == kindFeedback && e.Feedback != nil:
		idx := len(s.feedback)
		s.feedback = append(s.feedback, *e.Feedback)
		s.feedbackByUser[e.Feedback.UserID] = append(s.feedbackByUser[e.Feedback.UserID], idx)
	}
}

// Close closes the underlying file. Pending appends complete first.
func (s *Store) Close() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.file.Close()
}

func (s *Store) appendEntry(e entry, op string) error {
	line, err := json.Marshal(e)
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	line = append(line, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.file.Write(line); err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	if err := s.file.Sync(); err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}

	s.stateMu.Lock()
	s.applyEntry(e)
	s.stateMu.Unlock()

	return nil
}

func (s *Store) AppendActivity(_ context.Context, event domain.ActivityEvent) error {
	return s.appendEntry(entry{Kind: kindActivity, Activity: &event}, "append activity")
}

func (s *Store) AppendFeedback(_ context.Context, event domain.FeedbackEvent) error {
	return s.appendEntry(entry{Kind: kindFeedback, Feedback: &event}, "append feedback")
}

func (s *Store) ListUserActivity(_ context.Context, userID string) ([]domain.ActivityEvent, error) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	indices := s.activityByUser[userID]
	events := make([]domain.ActivityEvent, 0, len(indices))
	for _, idx := range indices {
		events = append(events, s.activities[idx])
	}
	return events, nil
}

func (s *Store) ListRecipeActivity(_ context.Context, recipeID string) ([]domain.ActivityEvent, error) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	indices := s.byRecipe[recipeID]
	events := make([]domain.ActivityEvent, 0, len(indices))
	for _, idx := range indices {
		events = append(events, s.activities[idx])
	}
	return events, nil
}

func (s *Store) ListActiveUserIDs(_ context.Context) ([]string, error) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	userIDs := make([]string, 0, len(s.activityByUser))
	for userID := range s.activityByUser {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

func (s *Store) ListUserFeedback(_ context.Context, userID string) ([]domain.FeedbackEvent, error) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	indices := s.feedbackByUser[userID]
	events := make([]domain.FeedbackEvent, 0, len(indices))
	for _, idx := range indices {
		events = append(events, s.feedback[idx])
	}
	return events, nil
}

func (s *Store) ReadSince(_ context.Context, offset int64) ([]domain.ActivityEvent, int64, error) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= int64(len(s.activities)) {
		return nil, int64(len(s.activities)), nil
	}

	events := make([]domain.ActivityEvent, len(s.activities)-int(offset))
	copy(events, s.activities[offset:])
	return events, int64(len(s.activities)), nil
}
