package models

import "time"

// Gift is an idea/purchase record attached to a Person.
//
// The two status booleans are fully independent: either can flip in any
// order, and neither locks the record — "done" (both true) can be un-marked.
type Gift struct {
	// GiftID is the unique identifier of the gift record.
	GiftID int64 `json:"gift_id"`

	// PersonID is the owning person. Immutable after creation.
	PersonID int64 `json:"person_id"`

	// Description is the free-form gift idea text. Non-empty after trimming;
	// duplicates under the same person are allowed.
	Description string `json:"description"`

	// Purchased reports whether the gift has been bought.
	Purchased bool `json:"purchased"`

	// GiftWrapped reports whether the gift has been wrapped.
	GiftWrapped bool `json:"gift_wrapped"`

	// CreatedAt is the timestamp when the gift idea was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Gift model.
func (g Gift) TableName() string {
	return "gifts"
}

// GiftInput is a single entry of a batch gift creation request.
type GiftInput struct {
	// PersonID is the recipient the gift idea is attached to.
	// Must belong to the requesting user; a single foreign or unknown
	// PersonID rejects the whole batch.
	PersonID int64 `json:"person_id"`

	// Description is the gift idea text. Non-empty after trimming.
	Description string `json:"description"`
}

// GiftStatusUpdate describes a sparse update of a gift's status flags.
// Only non-nil fields are written (partial update support); the description
// and the other flag are left untouched.
type GiftStatusUpdate struct {
	// GiftID is the unique identifier of the gift to update.
	// Required. Ownership is resolved through Gift → Person → User.
	GiftID int64 `json:"gift_id"`

	// Purchased, when non-nil, sets the purchased flag.
	Purchased *bool `json:"purchased,omitempty"`

	// GiftWrapped, when non-nil, sets the gift-wrapped flag.
	GiftWrapped *bool `json:"gift_wrapped,omitempty"`
}
