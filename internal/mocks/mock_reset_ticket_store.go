package mocks

import "context"

// MockResetTicketStore implements domain.ResetTicketStore for testing
type MockResetTicketStore struct {
	IssueFunc   func(ctx context.Context, email string) (string, error)
	ConsumeFunc func(ctx context.Context, email, ticket string) error
}

// NewMockResetTicketStore creates a new MockResetTicketStore with default behaviors
func NewMockResetTicketStore() *MockResetTicketStore {
	return &MockResetTicketStore{}
}

// Issue creates a reset ticket for the email
func (m *MockResetTicketStore) Issue(ctx context.Context, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email)
	}
	// Default behavior: fixed ticket
	return "mock-reset-ticket", nil
}

// Consume validates and destroys the ticket
func (m *MockResetTicketStore) Consume(ctx context.Context, email, ticket string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email, ticket)
	}
	// Default behavior: success
	return nil
}
