package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/tenzodev/tenzoauth/internal/auth"
	"github.com/tenzodev/tenzoauth/internal/config"
	"github.com/tenzodev/tenzoauth/internal/hwid"
	"github.com/tenzodev/tenzoauth/internal/logging"
	"github.com/tenzodev/tenzoauth/internal/remote"
)

// engineService is the slice of the licensing engine the CLI needs. The
// real *auth.Engine satisfies it; tests provide a stub.
type engineService interface {
	CheckVersion(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*auth.UserInfo, error)
	Register(ctx context.Context, username, password, licenseKey string) error
	GetVariable(ctx context.Context, name string) (string, error)
	RefreshVariables(ctx context.Context) (int, error)
	ExpiryDate(ctx context.Context) (string, error)
	Session() (auth.Session, bool)
	IsLoggedIn() bool
	Logout()
}

// App drives the interactive session: version gate at startup, then a REPL
// dispatching to the engine.
type App struct {
	config *config.Config
	engine engineService
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, cfg.InsecureSkipVerify)
	engine := auth.New(cfg, store, hwid.NewSystemProvider(), log)

	return &App{
		config: cfg,
		engine: engine,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run gates the application and enters the REPL. A gate failure is returned
// to the caller; the host process decides how to present it and terminate.
func (a *App) Run(ctx context.Context) error {
	if err := a.engine.CheckVersion(ctx); err != nil {
		return err
	}

	if n, err := a.engine.RefreshVariables(ctx); err != nil {
		a.log.Warn(ctx, "could not load application variables", "err", err)
	} else {
		a.log.Info(ctx, "application variables loaded", "count", n)
	}

	a.Root(ctx)
	return nil
}
