// Package testutil provides mocks shared by package tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/summarizer"
)

// MockSelection is a mock implementation of selection.Provider.
type MockSelection struct {
	mock.Mock
}

// ActivePageSelection mocks the ActivePageSelection method.
func (m *MockSelection) ActivePageSelection(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockSummarizer is a mock implementation of panel.Summarizer.
type MockSummarizer struct {
	mock.Mock
}

// Process mocks the Process method.
func (m *MockSummarizer) Process(ctx context.Context, content string, op summarizer.Operation) (string, error) {
	args := m.Called(ctx, content, op)
	return args.String(0), args.Error(1)
}

// MockNotes is a mock implementation of panel.NoteStore.
type MockNotes struct {
	mock.Mock
}

// Load mocks the Load method.
func (m *MockNotes) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Save mocks the Save method.
func (m *MockNotes) Save(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// MockGenerator is a mock implementation of research.Generator.
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
