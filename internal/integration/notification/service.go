// Package notification provides notification delivery via Resend.
package notification

import (
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// Service handles notification queueing operations.
type Service struct {
	queue adapter.NotificationQueueRepository
}

// NewService creates a new notification service.
func NewService(queue adapter.NotificationQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueBudgetAlert queues a budget threshold alert.
func (s *Service) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Budget alert: %s at %d%% - Finance Planner", input.BudgetName, input.PercentageUsed)

	templateData := map[string]interface{}{
		"user_name":       input.UserName,
		"budget_name":     input.BudgetName,
		"category":        input.Category,
		"percentage_used": fmt.Sprintf("%d", input.PercentageUsed),
		"tier":            input.Tier,
	}

	job := entity.NewNotificationJob(
		entity.TemplateBudgetAlert,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to queue budget alert",
			err,
		)
	}

	return nil
}

// QueueBudgetDue queues a recurring budget due notice.
func (s *Service) QueueBudgetDue(ctx context.Context, input adapter.QueueBudgetDueInput) error {
	subject := fmt.Sprintf("Recurring budget due: %s - Finance Planner", input.BudgetName)

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"budget_name": input.BudgetName,
		"due_date":    input.DueDate,
	}

	job := entity.NewNotificationJob(
		entity.TemplateBudgetDue,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to queue budget due notice",
			err,
		)
	}

	return nil
}

// QueueEstateReview queues an estate plan review reminder.
func (s *Service) QueueEstateReview(ctx context.Context, input adapter.QueueEstateReviewInput) error {
	subject := fmt.Sprintf("Estate plan review due: %s - Finance Planner", input.PlanName)

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"plan_name":   input.PlanName,
		"review_date": input.ReviewDate,
	}

	job := entity.NewNotificationJob(
		entity.TemplateEstateReview,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to queue estate review reminder",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.NotificationService.
var _ adapter.NotificationService = (*Service)(nil)
