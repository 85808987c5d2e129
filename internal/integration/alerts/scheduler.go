// Package alerts runs the periodic budget and estate review scans.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// Scheduler periodically scans budgets and estate plans and queues
// notifications for thresholds crossed, recurring budgets due, and
// plan reviews owed.
type Scheduler struct {
	budgetRepo    adapter.BudgetRepository
	estateRepo    adapter.EstatePlanRepository
	userRepo      adapter.UserRepository
	notifications adapter.NotificationService
	clock         adapter.Clock
	scanInterval  time.Duration
}

// SchedulerConfig holds configuration for the alert scheduler.
type SchedulerConfig struct {
	ScanInterval time.Duration
}

// DefaultSchedulerConfig returns the default scheduler configuration.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		ScanInterval: 1 * time.Hour,
	}
}

// NewScheduler creates a new alert scheduler.
func NewScheduler(
	budgetRepo adapter.BudgetRepository,
	estateRepo adapter.EstatePlanRepository,
	userRepo adapter.UserRepository,
	notifications adapter.NotificationService,
	clock adapter.Clock,
	config SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		budgetRepo:    budgetRepo,
		estateRepo:    estateRepo,
		userRepo:      userRepo,
		notifications: notifications,
		clock:         clock,
		scanInterval:  config.ScanInterval,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Alert scheduler started", "scan_interval", s.scanInterval)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	// Scan immediately on start, then on ticker
	s.Scan(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Alert scheduler shutting down")
			return
		case <-ticker.C:
			s.Scan(ctx)
		}
	}
}

// Scan runs one full pass of all three scans.
func (s *Scheduler) Scan(ctx context.Context) {
	s.scanBudgetAlerts(ctx)
	s.scanOverdueRecurring(ctx)
	s.scanEstateReviews(ctx)
}

// scanBudgetAlerts queues alerts for budgets over their thresholds and
// stamps LastAlertSent so the suppression window starts.
func (s *Scheduler) scanBudgetAlerts(ctx context.Context) {
	budgets, err := s.budgetRepo.FindNeedingAlerts(ctx)
	if err != nil {
		slog.Error("Failed to scan budgets for alerts", "error", err)
		return
	}

	now := s.clock.Now()
	for _, budget := range budgets {
		if !derivation.ShouldAlert(budget, now) {
			continue
		}

		user, ok := s.lookupUser(ctx, budget.UserID)
		if !ok || !user.BudgetAlerts {
			continue
		}

		tier := derivation.BudgetUsageTier(budget)
		err := s.notifications.QueueBudgetAlert(ctx, adapter.QueueBudgetAlertInput{
			UserEmail:      user.Email,
			UserName:       user.Name,
			BudgetName:     budget.Name,
			Category:       string(budget.Category),
			PercentageUsed: derivation.PercentageUsed(budget.ActualAmount, budget.BudgetedAmount),
			Tier:           string(tier),
		})
		if err != nil {
			slog.Error("Failed to queue budget alert",
				"budget_id", budget.ID,
				"error", err,
			)
			continue
		}

		sentAt := now
		budget.Alerts.LastAlertSent = &sentAt
		if err := s.budgetRepo.Update(ctx, budget); err != nil {
			slog.Error("Failed to stamp budget alert time",
				"budget_id", budget.ID,
				"error", err,
			)
			continue
		}

		slog.Info("Budget alert queued",
			"budget_id", budget.ID,
			"tier", tier,
		)
	}
}

// scanOverdueRecurring queues due notices for overdue recurring budgets and
// rolls their next due date forward one frequency step.
func (s *Scheduler) scanOverdueRecurring(ctx context.Context) {
	now := s.clock.Now()
	budgets, err := s.budgetRepo.FindOverdueRecurring(ctx, now)
	if err != nil {
		slog.Error("Failed to scan overdue recurring budgets", "error", err)
		return
	}

	for _, budget := range budgets {
		user, ok := s.lookupUser(ctx, budget.UserID)
		if !ok {
			continue
		}

		dueDate := ""
		if budget.Recurring.NextDueDate != nil {
			dueDate = budget.Recurring.NextDueDate.Format("2006-01-02")
		}

		if user.BudgetAlerts {
			err := s.notifications.QueueBudgetDue(ctx, adapter.QueueBudgetDueInput{
				UserEmail:  user.Email,
				UserName:   user.Name,
				BudgetName: budget.Name,
				DueDate:    dueDate,
			})
			if err != nil {
				slog.Error("Failed to queue budget due notice",
					"budget_id", budget.ID,
					"error", err,
				)
				continue
			}
		}

		// Roll forward even when notifications are muted; otherwise the
		// budget stays overdue and gets picked up on every scan.
		next := derivation.NextOccurrence(budget.Recurring.Frequency, now)
		budget.Recurring.NextDueDate = &next
		if err := s.budgetRepo.Update(ctx, budget); err != nil {
			slog.Error("Failed to roll recurring budget forward",
				"budget_id", budget.ID,
				"error", err,
			)
			continue
		}

		slog.Info("Recurring budget rolled forward",
			"budget_id", budget.ID,
			"next_due_date", next,
		)
	}
}

// scanEstateReviews queues review reminders for plans whose annual review
// has come due.
func (s *Scheduler) scanEstateReviews(ctx context.Context) {
	now := s.clock.Now()
	plans, err := s.estateRepo.FindNeedingReview(ctx, now)
	if err != nil {
		slog.Error("Failed to scan estate plans for reviews", "error", err)
		return
	}

	for _, plan := range plans {
		// needs_update means a reminder already went out for this cycle;
		// marking the plan reviewed resets the status and the review date.
		if plan.Status == entity.EstatePlanStatusNeedsUpdate {
			continue
		}

		user, ok := s.lookupUser(ctx, plan.UserID)
		if !ok || !user.ReviewReminders {
			continue
		}

		reviewDate := ""
		if plan.NextReviewDate != nil {
			reviewDate = plan.NextReviewDate.Format("2006-01-02")
		}

		err := s.notifications.QueueEstateReview(ctx, adapter.QueueEstateReviewInput{
			UserEmail:  user.Email,
			UserName:   user.Name,
			PlanName:   plan.Name,
			ReviewDate: reviewDate,
		})
		if err != nil {
			slog.Error("Failed to queue estate review reminder",
				"plan_id", plan.ID,
				"error", err,
			)
			continue
		}

		// Flag the plan so the next scan skips it. The review date stays
		// put, keeping the plan visible in the reviews-due listing.
		plan.Status = entity.EstatePlanStatusNeedsUpdate
		if err := s.estateRepo.Update(ctx, plan); err != nil {
			slog.Error("Failed to update estate plan after reminder",
				"plan_id", plan.ID,
				"error", err,
			)
			continue
		}

		slog.Info("Estate review reminder queued", "plan_id", plan.ID)
	}
}

// lookupUser fetches the owner of a record, logging and skipping on failure.
func (s *Scheduler) lookupUser(ctx context.Context, userID uuid.UUID) (*entity.User, bool) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user for notification",
			"user_id", userID,
			"error", fmt.Errorf("lookup failed: %w", err),
		)
		return nil, false
	}
	return user, true
}
