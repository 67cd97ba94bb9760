package mocks

import (
	"context"

	"github.com/mynkprtp/movieApi/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, name, email, username, password string) (*domain.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates an account and signs the user in
func (m *MockAuthService) Register(ctx context.Context, name, email, username, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, username, password)
	}
	// Default behavior: success with fake tokens
	return &domain.AuthResult{AccessToken: "mock-access-token", RefreshToken: "mock-refresh-token"}, nil
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success with fake tokens
	return &domain.AuthResult{AccessToken: "mock-access-token", RefreshToken: "mock-refresh-token"}, nil
}

// Refresh exchanges a refresh token for a new access token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	// Default behavior: new access token, same refresh token
	return &domain.AuthResult{AccessToken: "mock-access-token-2", RefreshToken: refreshToken}, nil
}
