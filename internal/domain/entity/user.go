// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Finance Planner system.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	BudgetAlerts    bool
	ReviewReminders bool
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, now time.Time) *User {
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		BudgetAlerts:    true,
		ReviewReminders: true,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
