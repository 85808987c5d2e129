package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	r.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	b, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, b *entity.Budget) error {
	if _, ok := r.budgets[b.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	copied := *b
	r.budgets[b.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) AppendTransaction(_ context.Context, budgetID uuid.UUID, tx entity.BudgetTransaction) error {
	b, ok := r.budgets[budgetID]
	if !ok {
		return domainerror.ErrBudgetNotFound
	}
	b.Transactions = append(b.Transactions, tx)
	return nil
}

func (r *fakeBudgetRepo) FindNeedingAlerts(_ context.Context) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.Alerts.Enabled && b.Status == entity.BudgetStatusActive && !b.ActualAmount.IsNegative() {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) FindOverdueRecurring(_ context.Context, now time.Time) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.Recurring.IsRecurring && b.Recurring.NextDueDate != nil && !b.Recurring.NextDueDate.After(now) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeSummaryCache struct {
	entries     map[uuid.UUID]*adapter.BudgetSummary
	invalidated int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[uuid.UUID]*adapter.BudgetSummary)}
}

func (c *fakeSummaryCache) Get(_ context.Context, userID uuid.UUID) (*adapter.BudgetSummary, error) {
	return c.entries[userID], nil
}

func (c *fakeSummaryCache) Set(_ context.Context, userID uuid.UUID, summary *adapter.BudgetSummary) error {
	c.entries[userID] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(c.entries, userID)
	c.invalidated++
	return nil
}

var testNow = time.Date(2024, time.August, 20, 9, 30, 0, 0, time.UTC)

func TestCreateBudget(t *testing.T) {
	t.Run("creates an active budget with derived period fields", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := newFakeSummaryCache()
		uc := NewCreateBudgetUseCase(repo, cache, fixedClock{testNow})

		out, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         uuid.New(),
			Name:           "August groceries",
			Category:       entity.BudgetCategoryGroceries,
			BudgetedAmount: decimal.NewFromInt(400),
			Period:         entity.BudgetPeriodMonthly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b := out.Budget
		if b.Status != entity.BudgetStatusActive {
			t.Errorf("expected status active, got %s", b.Status)
		}
		if b.Year != 2024 || b.Month != 8 {
			t.Errorf("expected period 2024-08, got %d-%d", b.Year, b.Month)
		}
		if !b.ActualAmount.IsZero() {
			t.Errorf("expected zero actual amount, got %s", b.ActualAmount)
		}
		if b.Alerts.WarningThreshold != 80 || b.Alerts.CriticalThreshold != 95 {
			t.Errorf("expected default thresholds 80/95, got %d/%d", b.Alerts.WarningThreshold, b.Alerts.CriticalThreshold)
		}
		if _, ok := repo.budgets[b.ID]; !ok {
			t.Error("expected budget to be persisted")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeSummaryCache(), fixedClock{testNow})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         uuid.New(),
			Name:           "   ",
			Category:       entity.BudgetCategoryGroceries,
			BudgetedAmount: decimal.NewFromInt(400),
			Period:         entity.BudgetPeriodMonthly,
		})
		if !errors.Is(err, domainerror.ErrEmptyBudgetName) {
			t.Errorf("expected ErrEmptyBudgetName, got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeSummaryCache(), fixedClock{testNow})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         uuid.New(),
			Name:           "Budget",
			Category:       entity.BudgetCategory("speedboats"),
			BudgetedAmount: decimal.NewFromInt(400),
			Period:         entity.BudgetPeriodMonthly,
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetCategory) {
			t.Errorf("expected ErrInvalidBudgetCategory, got %v", err)
		}
	})

	t.Run("rejects negative budgeted amount", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeSummaryCache(), fixedClock{testNow})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         uuid.New(),
			Name:           "Budget",
			Category:       entity.BudgetCategoryGroceries,
			BudgetedAmount: decimal.NewFromInt(-1),
			Period:         entity.BudgetPeriodMonthly,
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetedAmount) {
			t.Errorf("expected ErrInvalidBudgetedAmount, got %v", err)
		}
	})

	t.Run("rejects out-of-range alert thresholds", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeSummaryCache(), fixedClock{testNow})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         uuid.New(),
			Name:           "Budget",
			Category:       entity.BudgetCategoryGroceries,
			BudgetedAmount: decimal.NewFromInt(400),
			Period:         entity.BudgetPeriodMonthly,
			Alerts:         &entity.AlertConfig{Enabled: true, WarningThreshold: 80, CriticalThreshold: 120},
		})
		if !errors.Is(err, domainerror.ErrInvalidThreshold) {
			t.Errorf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("invalidates the summary cache", func(t *testing.T) {
		cache := newFakeSummaryCache()
		userID := uuid.New()
		cache.entries[userID] = &adapter.BudgetSummary{}
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), cache, fixedClock{testNow})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:         userID,
			Name:           "Budget",
			Category:       entity.BudgetCategoryGroceries,
			BudgetedAmount: decimal.NewFromInt(400),
			Period:         entity.BudgetPeriodMonthly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.entries[userID] != nil {
			t.Error("expected cached summary to be invalidated")
		}
	})
}

func TestGetBudget(t *testing.T) {
	t.Run("returns owned budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryDining, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, testNow)
		repo.budgets[b.ID] = b

		uc := NewGetBudgetUseCase(repo)
		out, err := uc.Execute(context.Background(), GetBudgetInput{BudgetID: b.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Budget.ID != b.ID {
			t.Errorf("expected budget %s, got %s", b.ID, out.Budget.ID)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		uc := NewGetBudgetUseCase(newFakeBudgetRepo())
		_, err := uc.Execute(context.Background(), GetBudgetInput{BudgetID: uuid.New(), UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("rejects access by another user", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		b := entity.NewBudget(uuid.New(), "Budget", entity.BudgetCategoryDining, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, testNow)
		repo.budgets[b.ID] = b

		uc := NewGetBudgetUseCase(repo)
		_, err := uc.Execute(context.Background(), GetBudgetInput{BudgetID: b.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedBudgetAccess) {
			t.Errorf("expected ErrUnauthorizedBudgetAccess, got %v", err)
		}
	})
}

func TestAddTransaction(t *testing.T) {
	setup := func(budgeted int64) (*fakeBudgetRepo, *entity.Budget, *AddTransactionUseCase, uuid.UUID) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryGroceries, decimal.NewFromInt(budgeted), entity.BudgetPeriodMonthly, testNow)
		repo.budgets[b.ID] = b
		uc := NewAddTransactionUseCase(repo, newFakeSummaryCache(), fixedClock{testNow})
		return repo, b, uc, userID
	}

	t.Run("appends an expense and rederives the actual amount", func(t *testing.T) {
		repo, b, uc, userID := setup(100)

		out, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "Weekly shop",
			Amount:      decimal.NewFromInt(60),
			Kind:        entity.TransactionKindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Budget.ActualAmount.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected actual amount 60, got %s", out.Budget.ActualAmount)
		}
		if out.Transaction.Category != entity.BudgetCategoryGroceries {
			t.Errorf("expected category defaulted from budget, got %s", out.Transaction.Category)
		}
		stored := repo.budgets[b.ID]
		if len(stored.Transactions) != 1 {
			t.Fatalf("expected 1 stored transaction, got %d", len(stored.Transactions))
		}
	})

	t.Run("income reduces the actual amount and can recover exceeded status", func(t *testing.T) {
		_, b, uc, userID := setup(100)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "Overspend",
			Amount:      decimal.NewFromInt(120),
			Kind:        entity.TransactionKindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "Refund",
			Amount:      decimal.NewFromInt(30),
			Kind:        entity.TransactionKindIncome,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Budget.ActualAmount.Equal(decimal.NewFromInt(90)) {
			t.Errorf("expected actual amount 90, got %s", out.Budget.ActualAmount)
		}
		if out.Budget.Status != entity.BudgetStatusActive {
			t.Errorf("expected status active after refund, got %s", out.Budget.Status)
		}
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, b, uc, userID := setup(100)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "  ",
			Amount:      decimal.NewFromInt(10),
			Kind:        entity.TransactionKindExpense,
		})
		if !errors.Is(err, domainerror.ErrEmptyTransactionDescription) {
			t.Errorf("expected ErrEmptyTransactionDescription, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, b, uc, userID := setup(100)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "Bad",
			Amount:      decimal.NewFromInt(-10),
			Kind:        entity.TransactionKindExpense,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, b, uc, userID := setup(100)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			BudgetID:    b.ID,
			UserID:      userID,
			Description: "Bad",
			Amount:      decimal.NewFromInt(10),
			Kind:        entity.TransactionKind("transfer"),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got %v", err)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("patches provided fields and rederives status", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryGroceries, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, testNow)
		b.Transactions = []entity.BudgetTransaction{
			entity.NewBudgetTransaction("Shop", decimal.NewFromInt(150), testNow, entity.TransactionKindExpense, b.Category, "", testNow),
		}
		repo.budgets[b.ID] = b

		uc := NewUpdateBudgetUseCase(repo, newFakeSummaryCache(), fixedClock{testNow})

		// Shrinking the envelope below actual spend flips status to exceeded.
		smaller := decimal.NewFromInt(100)
		name := "Tight groceries"
		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:       b.ID,
			UserID:         userID,
			Name:           &name,
			BudgetedAmount: &smaller,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Budget.Name != "Tight groceries" {
			t.Errorf("expected patched name, got %q", out.Budget.Name)
		}
		if out.Budget.Status != entity.BudgetStatusExceeded {
			t.Errorf("expected status exceeded, got %s", out.Budget.Status)
		}
	})

	t.Run("preserves last alert stamp when patching alert config", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryGroceries, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, testNow)
		stamp := testNow.Add(-time.Hour)
		b.Alerts.LastAlertSent = &stamp
		repo.budgets[b.ID] = b

		uc := NewUpdateBudgetUseCase(repo, newFakeSummaryCache(), fixedClock{testNow})
		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: b.ID,
			UserID:   userID,
			Alerts:   &entity.AlertConfig{Enabled: true, WarningThreshold: 70, CriticalThreshold: 90},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Budget.Alerts.LastAlertSent == nil || !out.Budget.Alerts.LastAlertSent.Equal(stamp) {
			t.Error("expected last alert stamp to be preserved")
		}
		if out.Budget.Alerts.WarningThreshold != 70 {
			t.Errorf("expected warning threshold 70, got %d", out.Budget.Alerts.WarningThreshold)
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryGroceries, decimal.NewFromInt(200), entity.BudgetPeriodMonthly, testNow)
		repo.budgets[b.ID] = b

		uc := NewUpdateBudgetUseCase(repo, newFakeSummaryCache(), fixedClock{testNow})
		bad := entity.BudgetStatus("archived")
		_, err := uc.Execute(context.Background(), UpdateBudgetInput{BudgetID: b.ID, UserID: userID, Status: &bad})
		if !errors.Is(err, domainerror.ErrInvalidBudgetStatus) {
			t.Errorf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})
}

func TestListBudgets(t *testing.T) {
	repo := newFakeBudgetRepo()
	userID := uuid.New()

	groceries := entity.NewBudget(userID, "Groceries", entity.BudgetCategoryGroceries, decimal.NewFromInt(400), entity.BudgetPeriodMonthly, testNow)
	groceries.Year = 2024
	dining := entity.NewBudget(userID, "Dining", entity.BudgetCategoryDining, decimal.NewFromInt(150), entity.BudgetPeriodMonthly, testNow)
	dining.Year = 2023
	other := entity.NewBudget(uuid.New(), "Someone else", entity.BudgetCategoryGroceries, decimal.NewFromInt(100), entity.BudgetPeriodMonthly, testNow)
	repo.budgets[groceries.ID] = groceries
	repo.budgets[dining.ID] = dining
	repo.budgets[other.ID] = other

	uc := NewListBudgetsUseCase(repo)

	t.Run("lists only the user's budgets", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Budgets) != 2 {
			t.Errorf("expected 2 budgets, got %d", len(out.Budgets))
		}
	})

	t.Run("filters by category and year", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListBudgetsInput{
			UserID:   userID,
			Category: entity.BudgetCategoryGroceries,
			Year:     2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Budgets) != 1 || out.Budgets[0].Name != "Groceries" {
			t.Errorf("expected only the groceries budget, got %d results", len(out.Budgets))
		}
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("aggregates totals per category and overall", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		userID := uuid.New()

		groceries := entity.NewBudget(userID, "Groceries", entity.BudgetCategoryGroceries, decimal.NewFromInt(400), entity.BudgetPeriodMonthly, testNow)
		groceries.ActualAmount = decimal.NewFromInt(200)
		dining := entity.NewBudget(userID, "Dining", entity.BudgetCategoryDining, decimal.NewFromInt(100), entity.BudgetPeriodMonthly, testNow)
		dining.ActualAmount = decimal.NewFromInt(150)
		dining.Status = entity.BudgetStatusExceeded
		repo.budgets[groceries.ID] = groceries
		repo.budgets[dining.ID] = dining

		uc := NewGetSummaryUseCase(repo, newFakeSummaryCache())
		out, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := out.Summary
		if s.TotalBudgeted != "500" {
			t.Errorf("expected total budgeted 500, got %s", s.TotalBudgeted)
		}
		if s.TotalSpent != "350" {
			t.Errorf("expected total spent 350, got %s", s.TotalSpent)
		}
		if s.OverallUsage != 70 {
			t.Errorf("expected overall usage 70, got %d", s.OverallUsage)
		}
		if s.ActiveBudgets != 1 || s.ExceededBudgets != 1 {
			t.Errorf("expected 1 active and 1 exceeded, got %d/%d", s.ActiveBudgets, s.ExceededBudgets)
		}
		if got := s.ByCategory["dining"].Usage; got != 150 {
			t.Errorf("expected dining usage 150, got %d", got)
		}
		if out.Cached {
			t.Error("expected a cache miss on first call")
		}
	})

	t.Run("serves the cached summary on a second call", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := newFakeSummaryCache()
		userID := uuid.New()
		b := entity.NewBudget(userID, "Budget", entity.BudgetCategoryGroceries, decimal.NewFromInt(400), entity.BudgetPeriodMonthly, testNow)
		repo.budgets[b.ID] = b

		uc := NewGetSummaryUseCase(repo, cache)
		if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Cached {
			t.Error("expected a cache hit on second call")
		}
	})
}

func TestListOverdueRecurring(t *testing.T) {
	repo := newFakeBudgetRepo()
	userID := uuid.New()

	due := testNow.Add(-time.Hour)
	overdue := entity.NewBudget(userID, "Rent", entity.BudgetCategoryHousing, decimal.NewFromInt(1500), entity.BudgetPeriodMonthly, testNow)
	overdue.Recurring = entity.RecurringConfig{IsRecurring: true, Frequency: entity.BudgetPeriodMonthly, NextDueDate: &due}

	future := testNow.Add(time.Hour)
	notDue := entity.NewBudget(userID, "Gym", entity.BudgetCategoryHealthcare, decimal.NewFromInt(50), entity.BudgetPeriodMonthly, testNow)
	notDue.Recurring = entity.RecurringConfig{IsRecurring: true, Frequency: entity.BudgetPeriodMonthly, NextDueDate: &future}

	someoneElse := entity.NewBudget(uuid.New(), "Other rent", entity.BudgetCategoryHousing, decimal.NewFromInt(900), entity.BudgetPeriodMonthly, testNow)
	someoneElse.Recurring = entity.RecurringConfig{IsRecurring: true, Frequency: entity.BudgetPeriodMonthly, NextDueDate: &due}

	repo.budgets[overdue.ID] = overdue
	repo.budgets[notDue.ID] = notDue
	repo.budgets[someoneElse.ID] = someoneElse

	uc := NewListOverdueRecurringUseCase(repo, fixedClock{testNow})
	out, err := uc.Execute(context.Background(), ListOverdueRecurringInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Budgets) != 1 || out.Budgets[0].Name != "Rent" {
		t.Errorf("expected only the overdue rent budget, got %d results", len(out.Budgets))
	}
}
