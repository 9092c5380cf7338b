package mailer

import "sync"

// MockMailer records sent messages instead of dialing an SMTP server.
type MockMailer struct {
	mu    sync.Mutex
	Sent  []MockMessage
	Error error
}

type MockMessage struct {
	Recipient    string
	TemplateFile string
	Data         any
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Error != nil {
		return m.Error
	}

	m.Sent = append(m.Sent, MockMessage{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// Messages returns a snapshot of the sent messages, safe to call while a
// background send may still be running.
func (m *MockMailer) Messages() []MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]MockMessage, len(m.Sent))
	copy(out, m.Sent)

	return out
}
