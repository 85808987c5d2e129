// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the status of a notification in the queue.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// NotificationTemplateType represents the type of notification template.
type NotificationTemplateType string

const (
	TemplateBudgetAlert  NotificationTemplateType = "budget_alert"
	TemplateBudgetDue    NotificationTemplateType = "budget_due"
	TemplateEstateReview NotificationTemplateType = "estate_review"
)

// NotificationJob represents a notification in the queue waiting to be sent.
type NotificationJob struct {
	ID             uuid.UUID
	TemplateType   NotificationTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         NotificationStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewNotificationJob creates a new NotificationJob with default values.
func NewNotificationJob(templateType NotificationTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *NotificationJob {
	now := time.Now().UTC()
	return &NotificationJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         NotificationStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the notification as currently being processed.
func (n *NotificationJob) MarkProcessing() {
	n.Status = NotificationStatusProcessing
}

// MarkSent marks the notification as successfully sent.
func (n *NotificationJob) MarkSent(providerID string) {
	n.Status = NotificationStatusSent
	n.ProviderID = providerID
	now := time.Now().UTC()
	n.ProcessedAt = &now
}

// MarkFailed marks the notification as failed and schedules a retry if attempts remain.
func (n *NotificationJob) MarkFailed(err error, permanent bool) {
	n.Attempts++
	n.LastError = err.Error()

	if permanent || n.Attempts >= n.MaxAttempts {
		n.Status = NotificationStatusFailed
		now := time.Now().UTC()
		n.ProcessedAt = &now
	} else {
		n.Status = NotificationStatusPending
		n.ScheduledAt = n.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (n *NotificationJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if n.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[n.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true if the notification can be retried.
func (n *NotificationJob) CanRetry() bool {
	return n.Attempts < n.MaxAttempts
}
