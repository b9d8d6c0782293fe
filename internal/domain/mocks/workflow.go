// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/atomer-tools/anaconf/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow with expectation checks registered
// on the test's cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Generate mocks the generation run.
func (m *MockWorkflow) Generate(args domain.GenerateArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

// List mocks the list operation.
func (m *MockWorkflow) List(args domain.ListArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

// Extract mocks the extract operation.
func (m *MockWorkflow) Extract(args domain.ExtractArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}
