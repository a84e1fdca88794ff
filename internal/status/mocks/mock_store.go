package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docstyle/internal/model"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Append(ctx context.Context, ev model.StageEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockStore) History(ctx context.Context, documentID string) ([]model.StageEvent, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StageEvent), args.Error(1)
}
