package models

// Credentials carries the registration/login payload.
// Password is plaintext only in transit; it is hashed before storage and
// never serialized back to the client.
type Credentials struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// ReplacePeopleRequest is the onboarding payload: the complete ordered list
// of recipient names. Replacing is destructive — every Person previously
// owned by the user (and, via cascade, their gifts) is removed first.
type ReplacePeopleRequest struct {
	Names []string `json:"names"`
}

// AppendPersonRequest adds a single recipient to the end of the list.
type AppendPersonRequest struct {
	Name string `json:"name"`
}

// ReorderPeopleRequest carries the full permutation of the user's person
// identifiers. Partial lists and foreign identifiers are rejected as a whole.
type ReorderPeopleRequest struct {
	PersonIDs []int64 `json:"person_ids"`
}

// CreateGiftsRequest is a batch gift creation payload with all-or-nothing
// semantics across the batch.
type CreateGiftsRequest struct {
	Gifts []GiftInput `json:"gifts"`
}

// UpsertGiftRequest creates a gift under PersonID when GiftID is nil and
// replaces the description of the existing gift otherwise. PersonID is
// required in both modes; in update mode the gift must already sit under
// that person. Status flags are never touched by an upsert.
type UpsertGiftRequest struct {
	PersonID    int64  `json:"person_id"`
	Description string `json:"description"`
	GiftID      *int64 `json:"gift_id,omitempty"`
}
