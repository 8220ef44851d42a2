// Package mocks provides testify mocks for the datasource interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// MockActivityAppender mocks datasources.ActivityAppender.
type MockActivityAppender struct {
	mock.Mock
}

var _ datasources.ActivityAppender = (*MockActivityAppender)(nil)

func NewMockActivityAppender(t *testing.T) *MockActivityAppender {
	m := &MockActivityAppender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockActivityAppender) AppendActivity(ctx context.Context, event domain.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUserActivityLister mocks datasources.UserActivityLister.
type MockUserActivityLister struct {
	mock.Mock
}

var _ datasources.UserActivityLister = (*MockUserActivityLister)(nil)

func NewMockUserActivityLister(t *testing.T) *MockUserActivityLister {
	m := &MockUserActivityLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserActivityLister) ListUserActivity(
	ctx context.Context, userID string,
) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]domain.ActivityEvent)
	return events, args.Error(1)
}

// MockFeedbackAppender mocks datasources.FeedbackAppender.
type MockFeedbackAppender struct {
	mock.Mock
}

var _ datasources.FeedbackAppender = (*MockFeedbackAppender)(nil)

func NewMockFeedbackAppender(t *testing.T) *MockFeedbackAppender {
	m := &MockFeedbackAppender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFeedbackAppender) AppendFeedback(ctx context.Context, event domain.FeedbackEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockRecipeFetcher mocks datasources.RecipeFetcher.
type MockRecipeFetcher struct {
	mock.Mock
}

var _ datasources.RecipeFetcher = (*MockRecipeFetcher)(nil)

func NewMockRecipeFetcher(t *testing.T) *MockRecipeFetcher {
	m := &MockRecipeFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRecipeFetcher) FetchRecipesByID(
	ctx context.Context, ids []string,
) ([]domain.Recipe, error) {
	args := m.Called(ctx, ids)
	recipes, _ := args.Get(0).([]domain.Recipe)
	return recipes, args.Error(1)
}

// MockRecipeIDsLister mocks datasources.RecipeIDsLister.
type MockRecipeIDsLister struct {
	mock.Mock
}

var _ datasources.RecipeIDsLister = (*MockRecipeIDsLister)(nil)

func NewMockRecipeIDsLister(t *testing.T) *MockRecipeIDsLister {
	m := &MockRecipeIDsLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRecipeIDsLister) ListRecipeIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
