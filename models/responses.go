package models

// AuthResponse is the body returned by the register and login endpoints.
// The session token itself travels in the Authorization response header.
type AuthResponse struct {
	Email               string `json:"email"`
	Username            string `json:"username"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// PeopleResponse contains the user's full recipient list in display order,
// each entry carrying its nested gifts.
type PeopleResponse struct {
	People []Person `json:"people"`

	// Length is the total number of entries in People. Provided for
	// convenience so the client can pre-allocate or validate the response
	// without iterating the slice.
	Length int `json:"length"`
}

// GiftsResponse contains gifts created by a batch request.
type GiftsResponse struct {
	Gifts []Gift `json:"gifts"`
}

// GiftResponse contains a single created or updated gift.
type GiftResponse struct {
	Gift Gift `json:"gift"`
}

// AckResponse acknowledges a mutation that returns no entity.
type AckResponse struct {
	Message string `json:"message"`
}
