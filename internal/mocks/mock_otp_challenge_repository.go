package mocks

import (
	"context"

	"github.com/mynkprtp/movieApi/domain"
)

// MockOTPChallengeRepository implements domain.OTPChallengeRepository for testing
type MockOTPChallengeRepository struct {
	CreateFunc            func(ctx context.Context, challenge *domain.OTPChallenge) error
	FindByCodeAndUserFunc func(ctx context.Context, code int, userID uint) (*domain.OTPChallenge, error)
	DeleteFunc            func(ctx context.Context, id uint) error
	DeleteExpiredFunc     func(ctx context.Context) error
}

// NewMockOTPChallengeRepository creates a new MockOTPChallengeRepository with default behaviors
func NewMockOTPChallengeRepository() *MockOTPChallengeRepository {
	return &MockOTPChallengeRepository{}
}

// Create stores an OTP challenge
func (m *MockOTPChallengeRepository) Create(ctx context.Context, challenge *domain.OTPChallenge) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, challenge)
	}
	// Default behavior: success
	return nil
}

// FindByCodeAndUser finds a challenge by (code, user)
func (m *MockOTPChallengeRepository) FindByCodeAndUser(ctx context.Context, code int, userID uint) (*domain.OTPChallenge, error) {
	if m.FindByCodeAndUserFunc != nil {
		return m.FindByCodeAndUserFunc(ctx, code, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUnknownChallenge
}

// Delete removes a challenge
func (m *MockOTPChallengeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// DeleteExpired removes all expired challenges
func (m *MockOTPChallengeRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	// Default behavior: success
	return nil
}
