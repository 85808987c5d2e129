// Package notification provides notification delivery via Resend.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// ResendClient implements the adapter.NotificationSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers a notification email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendNotificationInput) (*adapter.SendNotificationResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		// Check if it's a permanent error (don't retry)
		if isPermanentError(err) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentSendFailure,
				"permanent notification failure",
				err,
			)
		}
		// Temporary error (can retry)
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTemporarySendFailure,
			"temporary notification failure",
			err,
		)
	}

	return &adapter.SendNotificationResult{
		ProviderID: resp.Id,
	}, nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Check for common permanent error patterns
	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}

	return false
}

// MockSender is a mock implementation for testing.
type MockSender struct {
	SentNotifications []adapter.SendNotificationInput
	ShouldFail        bool
	FailError         error
	IsPermanent       bool
}

// NewMockSender creates a new mock notification sender.
func NewMockSender() *MockSender {
	return &MockSender{
		SentNotifications: make([]adapter.SendNotificationInput, 0),
	}
}

// Send implements the adapter.NotificationSender interface for testing.
func (m *MockSender) Send(ctx context.Context, input adapter.SendNotificationInput) (*adapter.SendNotificationResult, error) {
	if m.ShouldFail {
		if m.IsPermanent {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentSendFailure,
				"mock permanent failure",
				m.FailError,
			)
		}
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTemporarySendFailure,
			"mock temporary failure",
			m.FailError,
		)
	}

	m.SentNotifications = append(m.SentNotifications, input)

	return &adapter.SendNotificationResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.SentNotifications)),
	}, nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// ClearFailure clears the failure configuration.
func (m *MockSender) ClearFailure() {
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Reset clears all sent notifications and failure configuration.
func (m *MockSender) Reset() {
	m.SentNotifications = make([]adapter.SendNotificationInput, 0)
	m.ClearFailure()
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.NotificationSender = (*ResendClient)(nil)
	_ adapter.NotificationSender = (*MockSender)(nil)
)
