package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/MKhiriev/christmas-gifter/internal/tui"
	"github.com/MKhiriev/christmas-gifter/internal/workers"
)

// refreshInterval is how often the background worker re-fetches the people
// list while the dashboard is on screen.
const refreshInterval = 5 * time.Minute

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	app := &App{
		services: services,
		ui:       ui,
		logger:   log,
	}
	app.workers = workers.NewWorkers(&refreshWorker{app: app})

	return app, nil
}

// Run drives the full client session: authentication, first-launch
// onboarding, then the dashboard. Logging out restarts the cycle from the
// login screen.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	account, err := a.ui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if !account.OnboardingCompleted {
		if err = a.ui.OnboardingFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.workers.Run()
	defer a.services.RefreshJob.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.AuthService.Logout()
		a.services.RefreshJob.Stop()
		cancel()
		return a.Run()
	}

	return nil
}

// refreshWorker adapts the periodic refresh job to the workers contract.
// Fetched snapshots are pushed straight into the running dashboard.
type refreshWorker struct {
	app *App
}

func (w *refreshWorker) Run() {
	app := w.app
	app.services.RefreshJob.Start(context.Background(), refreshInterval, app.ui.PushPeople)
}
