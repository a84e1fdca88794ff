package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docstyle/internal/model"
)

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, text string) model.DocumentAnalysis {
	args := m.Called(ctx, text)
	return args.Get(0).(model.DocumentAnalysis)
}

type MockDesigner struct {
	mock.Mock
}

func (m *MockDesigner) GenerateVisualSpecs(ctx context.Context, analysis model.DocumentAnalysis) model.VisualSpecs {
	args := m.Called(ctx, analysis)
	return args.Get(0).(model.VisualSpecs)
}
