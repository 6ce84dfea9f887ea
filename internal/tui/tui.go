package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/MKhiriev/christmas-gifter/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register pages until the user authenticates
// or quits. On success the returned account summary carries the onboarding
// flag used to pick the next screen.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResponse, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AuthResponse{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.AuthResponse{}, ErrUserQuit
	}

	return result.resultAccount, nil
}

// OnboardingFlow runs the first-launch screen where the user records the
// initial list of gift recipients. Completing it replaces the whole list on
// the server; skipping it leaves the list empty.
func (t *TUI) OnboardingFlow(ctx context.Context) error {
	model := newOnboardingModel(ctx, t.services.GifterService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(onboardingModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the people/gifts dashboard until the user logs out or quits.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	finalModel, runErr := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// PushPeople delivers an externally fetched people snapshot into the running
// dashboard. Used by the background refresh job; a no-op when the dashboard
// is not on screen.
func (t *TUI) PushPeople(people []models.Person) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(peopleLoadedMsg{people: people})
	}
}
