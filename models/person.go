package models

import "time"

// Person is a gift recipient tracked by a user.
//
// Each Person belongs to exactly one user; all access control follows the
// User → Person → Gift ownership chain. People are displayed in ascending
// SortOrder, which callers rewrite as a whole permutation when reordering —
// values stay unique per user but are not guaranteed contiguous after deletes.
type Person struct {
	// PersonID is the unique identifier of the person record.
	PersonID int64 `json:"person_id"`

	// UserID is the owning user. Immutable after creation and never
	// taken from client input — it is always resolved from the
	// authenticated request context.
	UserID int64 `json:"-"`

	// Name is the display name of the recipient. Non-empty after trimming.
	Name string `json:"name"`

	// SortOrder controls the display sequence of a user's people.
	SortOrder int `json:"sort_order"`

	// CreatedAt is the timestamp when the person was recorded.
	CreatedAt time.Time `json:"created_at"`

	// Gifts holds the person's gift ideas. Populated by list operations;
	// insertion-ordered, no defined sub-order.
	Gifts []Gift `json:"gifts"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p Person) TableName() string {
	return "people"
}
