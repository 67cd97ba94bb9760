package mocks

import "context"

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	RequestResetFunc   func(ctx context.Context, email string) error
	VerifyOTPFunc      func(ctx context.Context, email string, code int) (string, error)
	ChangePasswordFunc func(ctx context.Context, email, ticket, password, repeat string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// RequestReset starts the forgot-password flow
func (m *MockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	if m.RequestResetFunc != nil {
		return m.RequestResetFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// VerifyOTP checks the one-time code and issues a reset ticket
func (m *MockPasswordResetService) VerifyOTP(ctx context.Context, email string, code int) (string, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: fixed ticket
	return "mock-reset-ticket", nil
}

// ChangePassword sets the new password
func (m *MockPasswordResetService) ChangePassword(ctx context.Context, email, ticket, password, repeat string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, email, ticket, password, repeat)
	}
	// Default behavior: success
	return nil
}
