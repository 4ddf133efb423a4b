package client

import (
	"context"
	"fmt"
	"os"

	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/internal/tui"
)

// App is the client process: login flow, scoped collection mirrors,
// the background refresh job and the authenticated main loop.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, cfg: cfg, logger: log}, nil
}

// Run blocks until the user exits. A logout from the main loop drops
// the session and restarts the whole flow from the login screens.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.tui.LoginFlow(ctx)
	if err != nil {
		return err
	}

	// Notifications are personal; scope them to the signed-in user
	// before the first fetch.
	if err = a.services.Notifications.SetScope(ctx, map[string]string{"recipient_id": user.UserID}); err != nil {
		fmt.Fprintf(os.Stderr, "notifications warning: %v\n", err)
	}
	if err = a.fetchInitial(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fetch warning: %v\n", err)
	}

	a.services.RefreshJob.Start(ctx, a.cfg.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		a.services.Session.SignOut()
		return a.Run()
	}

	return nil
}

func (a *App) fetchInitial(ctx context.Context) error {
	for _, fetch := range []func(context.Context) error{
		a.services.Projects.FetchAll,
		a.services.Tasks.FetchAll,
		a.services.Bugs.FetchAll,
		a.services.Notifications.FetchAll,
	} {
		if err := fetch(ctx); err != nil {
			return err
		}
	}
	return nil
}
