package mocks

// SentMail records one outbound message
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailService implements domain.MailService for testing
type MockMailService struct {
	SendFunc func(to, subject, body string) error

	// Sent records every successful default-path send
	Sent []SentMail
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// Send delivers a message
func (m *MockMailService) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
