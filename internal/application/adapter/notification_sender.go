// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendNotificationInput represents the input for sending a notification email.
type SendNotificationInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendNotificationResult represents the result of sending a notification.
type SendNotificationResult struct {
	ProviderID string
}

// NotificationSender defines the interface for delivering notifications
// via an external provider.
type NotificationSender interface {
	// Send delivers a notification email via the provider.
	Send(ctx context.Context, input SendNotificationInput) (*SendNotificationResult, error)
}

// QueueBudgetAlertInput represents the input for queueing a budget alert.
type QueueBudgetAlertInput struct {
	UserEmail      string
	UserName       string
	BudgetName     string
	Category       string
	PercentageUsed int64
	Tier           string
}

// QueueBudgetDueInput represents the input for queueing a recurring budget due notice.
type QueueBudgetDueInput struct {
	UserEmail  string
	UserName   string
	BudgetName string
	DueDate    string
}

// QueueEstateReviewInput represents the input for queueing an estate review reminder.
type QueueEstateReviewInput struct {
	UserEmail  string
	UserName   string
	PlanName   string
	ReviewDate string
}

// NotificationService defines the interface for queueing notifications.
type NotificationService interface {
	// QueueBudgetAlert queues a budget threshold alert.
	QueueBudgetAlert(ctx context.Context, input QueueBudgetAlertInput) error

	// QueueBudgetDue queues a recurring budget due notice.
	QueueBudgetDue(ctx context.Context, input QueueBudgetDueInput) error

	// QueueEstateReview queues an estate plan review reminder.
	QueueEstateReview(ctx context.Context, input QueueEstateReviewInput) error
}
