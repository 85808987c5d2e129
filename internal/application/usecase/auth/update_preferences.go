// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for notification preference
// updates. Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	UserID          uuid.UUID
	BudgetAlerts    *bool
	ReviewReminders *bool
}

// UpdatePreferencesOutput represents the output of preference updates.
type UpdatePreferencesOutput struct {
	User *entity.User
}

// UpdatePreferencesUseCase handles notification preference updates.
type UpdatePreferencesUseCase struct {
	userRepo adapter.UserRepository
	clock    adapter.Clock
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(userRepo adapter.UserRepository, clock adapter.Clock) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		userRepo: userRepo,
		clock:    clock,
	}
}

// Execute updates the user's notification preferences.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.BudgetAlerts != nil {
		user.BudgetAlerts = *input.BudgetAlerts
	}
	if input.ReviewReminders != nil {
		user.ReviewReminders = *input.ReviewReminders
	}
	user.UpdatedAt = uc.clock.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdatePreferencesOutput{User: user}, nil
}
