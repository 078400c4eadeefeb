package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/config"
	"github.com/dmitrijs2005/storykeeper/internal/client/services"
	"github.com/dmitrijs2005/storykeeper/internal/client/session"
	"github.com/dmitrijs2005/storykeeper/internal/filex"
	"github.com/dmitrijs2005/storykeeper/internal/logging"
)

const dbFileName = "storykeeper.db"

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	session      *session.Store
	authService  services.AuthService
	storyService services.StoryService
	syncService  services.SyncService
	pushService  services.PushService
	Mode         Mode
	reader       *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	dataDir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dataDir, dbFileName))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.NewStore(dataDir)
	if err := sess.Load(); err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, sess)

	return &App{
		config:       c,
		log:          logger,
		session:      sess,
		authService:  services.NewAuthService(apiClient, sess),
		storyService: services.NewStoryService(apiClient, db),
		syncService:  services.NewSyncService(apiClient, db, logger),
		pushService:  services.NewPushService(apiClient, db, c.PushEndpointBase),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// setMode records the connectivity mode. Regaining connectivity re-triggers
// the sync drain.
func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode == mode {
		return
	}
	wasOffline := a.Mode == ModeOffline
	a.Mode = mode
	printlnFn("Switched to " + string(mode) + " mode")

	if mode == ModeOnline && wasOffline {
		a.drainPending(ctx)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// StartOnlineStatusWatcher probes API reachability on an interval and flips
// the connectivity mode on changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
