package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/notification/templates"
)

// fakeQueue is an in-memory NotificationQueueRepository for worker tests.
type fakeQueue struct {
	jobs map[uuid.UUID]*entity.NotificationJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.NotificationJob)}
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.NotificationJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var pending []*entity.NotificationJob
	for _, job := range q.jobs {
		if job.Status == entity.NotificationStatusPending {
			pending = append(pending, job)
		}
		if len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.NotificationJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	return q.jobs[id], nil
}

func (q *fakeQueue) GetByRecipient(ctx context.Context, email string) ([]*entity.NotificationJob, error) {
	var jobs []*entity.NotificationJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

var _ adapter.NotificationQueueRepository = (*fakeQueue)(nil)

func newTestWorker(t *testing.T, queue *fakeQueue, sender *MockSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerProcessing(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a pending budget alert and marks it sent", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		worker := newTestWorker(t, queue, sender)

		svc := NewService(queue)
		err := svc.QueueBudgetAlert(ctx, adapter.QueueBudgetAlertInput{
			UserEmail:      "ana@example.com",
			UserName:       "Ana",
			BudgetName:     "Groceries",
			Category:       "groceries",
			PercentageUsed: 85,
			Tier:           "warning",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentNotifications) != 1 {
			t.Fatalf("expected 1 sent notification, got %d", len(sender.SentNotifications))
		}
		sent := sender.SentNotifications[0]
		if sent.To != "ana@example.com" {
			t.Errorf("expected recipient ana@example.com, got %s", sent.To)
		}
		if sent.HTML == "" || sent.Text == "" {
			t.Error("expected both HTML and text bodies to be rendered")
		}

		for _, job := range queue.jobs {
			if job.Status != entity.NotificationStatusSent {
				t.Errorf("expected job status sent, got %s", job.Status)
			}
			if job.ProviderID == "" {
				t.Error("expected provider ID to be recorded")
			}
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		svc := NewService(queue)
		if err := svc.QueueBudgetDue(ctx, adapter.QueueBudgetDueInput{
			UserEmail:  "ana@example.com",
			UserName:   "Ana",
			BudgetName: "Rent",
			DueDate:    "2024-09-01",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		for _, job := range queue.jobs {
			if job.Status != entity.NotificationStatusPending {
				t.Errorf("expected job to stay pending for retry, got %s", job.Status)
			}
			if job.Attempts != 1 {
				t.Errorf("expected 1 attempt, got %d", job.Attempts)
			}
		}
	})

	t.Run("permanent failure fails the job immediately", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockSender()
		sender.SetFailure(errors.New("422 validation error"), true)
		worker := newTestWorker(t, queue, sender)

		svc := NewService(queue)
		if err := svc.QueueEstateReview(ctx, adapter.QueueEstateReviewInput{
			UserEmail:  "ana@example.com",
			UserName:   "Ana",
			PlanName:   "Family Trust",
			ReviewDate: "2024-08-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		for _, job := range queue.jobs {
			if job.Status != entity.NotificationStatusFailed {
				t.Errorf("expected job status failed, got %s", job.Status)
			}
		}
	})
}

func TestIsPermanentError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		permanent bool
	}{
		{"nil error", nil, false},
		{"unauthorized", errors.New("401 unauthorized"), true},
		{"validation", errors.New("validation failed"), true},
		{"rate limit", errors.New("429 too many requests"), false},
		{"server error", errors.New("500 internal server error"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isPermanentError(tc.err); got != tc.permanent {
				t.Errorf("isPermanentError(%v) = %v, want %v", tc.err, got, tc.permanent)
			}
		})
	}
}
