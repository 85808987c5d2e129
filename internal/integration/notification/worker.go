// Package notification provides notification delivery via Resend.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/notification/templates"
)

// Worker processes the notification queue and sends notifications.
type Worker struct {
	queue        adapter.NotificationQueueRepository
	sender       adapter.NotificationSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(queue adapter.NotificationQueueRepository, sender adapter.NotificationSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending notifications.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending notification jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing notification batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single notification job.
func (w *Worker) processJob(ctx context.Context, job *entity.NotificationJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	// Mark as processing
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// Render template
	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render notification template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	// Send notification
	result, err := w.sender.Send(ctx, adapter.SendNotificationInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send notification", "error", err)

		// Check if it's a permanent error
		var notifErr *domainerror.NotificationError
		isPermanent := errors.As(err, &notifErr) && notifErr.Code == domainerror.ErrCodePermanentSendFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	// Mark as sent
	job.MarkSent(result.ProviderID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Notification sent successfully", "provider_id", result.ProviderID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.NotificationJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	// Convert template data to the appropriate struct
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateBudgetAlert:
		data = templates.BudgetAlertData{
			UserName:       getString(job.TemplateData, "user_name"),
			BudgetName:     getString(job.TemplateData, "budget_name"),
			Category:       getString(job.TemplateData, "category"),
			PercentageUsed: getString(job.TemplateData, "percentage_used"),
			Tier:           getString(job.TemplateData, "tier"),
		}
	case entity.TemplateBudgetDue:
		data = templates.BudgetDueData{
			UserName:   getString(job.TemplateData, "user_name"),
			BudgetName: getString(job.TemplateData, "budget_name"),
			DueDate:    getString(job.TemplateData, "due_date"),
		}
	case entity.TemplateEstateReview:
		data = templates.EstateReviewData{
			UserName:   getString(job.TemplateData, "user_name"),
			PlanName:   getString(job.TemplateData, "plan_name"),
			ReviewDate: getString(job.TemplateData, "review_date"),
		}
	default:
		return "", "", domainerror.NewNotificationError(
			domainerror.ErrCodeTemplateRenderFailed,
			"unknown template type",
			domainerror.ErrTemplateRenderFailed,
		)
	}

	return w.renderer.Render(templateName, data)
}

// handleFailure handles a failed notification job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.NotificationJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.NotificationStatusFailed {
		slog.Warn("Notification job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Notification job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow processes all pending notifications immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
