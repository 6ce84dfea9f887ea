package tui

import (
	"github.com/MKhiriev/christmas-gifter/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the RootModel to another page. Payload, when set, is
// re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login page's async command.
type LoginResult struct {
	Err     error
	Account models.AuthResponse
}

// RegisterResult finishes the register page's async command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu page after registration.
type RegisterSuccessNotice struct {
	Username string
}

type peopleLoadedMsg struct {
	people []models.Person
	err    error
}

type peopleReplacedMsg struct {
	err error
}

type personSavedMsg struct {
	err error
}

type giftSavedMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type reorderDoneMsg struct {
	err error
}
