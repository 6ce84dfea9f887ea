package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is used at the persistence layer and as the JWT subject.
	UserID int64 `json:"-"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// OnboardingCompleted reports whether the user has finished the
	// onboarding flow (recorded their initial list of gift recipients).
	// The client uses it to route between onboarding and the dashboard.
	OnboardingCompleted bool `json:"onboarding_completed"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
