// Package mocks provides a testify mock for the generic command interface.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockCommand mocks command.Command for any request and response pair.
type MockCommand[Req any, Res any] struct {
	mock.Mock
}

func NewMockCommand[Req any, Res any](t *testing.T) *MockCommand[Req, Res] {
	m := &MockCommand[Req, Res]{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCommand[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(Res)
	return res, args.Error(1)
}
