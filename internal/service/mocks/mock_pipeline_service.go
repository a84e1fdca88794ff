package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"docstyle/internal/model"
	"docstyle/internal/service"
	"docstyle/internal/status"
)

type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) Upload(ctx context.Context, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockPipelineService) Analyze(ctx context.Context, documentID, content string) (*service.AnalysisResult, error) {
	args := m.Called(ctx, documentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

func (m *MockPipelineService) Design(ctx context.Context, documentID string, analysis json.RawMessage) (*service.DesignResult, error) {
	args := m.Called(ctx, documentID, analysis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DesignResult), args.Error(1)
}

func (m *MockPipelineService) Status(ctx context.Context, documentID string) (*status.Snapshot, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Snapshot), args.Error(1)
}
