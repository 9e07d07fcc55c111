// Package mocks provides testify mocks for the usecase contracts.
package mocks

import (
	"context"

	"authgate/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a new mock bound to the test's lifecycle.
func NewMockAuthUsecase(t mockConstructorTestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var out *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		out = v.(*usecase.AuthOutput)
	}

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var out *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		out = v.(*usecase.AuthOutput)
	}

	return out, args.Error(1)
}
