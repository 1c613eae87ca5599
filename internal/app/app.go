package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/config"
	"github.com/toolcrib/cellmon/internal/feed"
	"github.com/toolcrib/cellmon/internal/logging"
	"github.com/toolcrib/cellmon/internal/mockd"
	"github.com/toolcrib/cellmon/internal/prefs"
	"github.com/toolcrib/cellmon/internal/state"
	"github.com/toolcrib/cellmon/internal/ui"
)

// Options configure the cellmon console.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/cellmon/prefs.toml
	Verbose    bool
}

// Run boots the console until the operator quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.Setup(cfg.LogPath(), opts.Verbose)
	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := backend.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	// Pre-flight reachability probe. Failure is logged, not fatal: the
	// channels retry on their own once the operator unlocks.
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	if err := client.Health(probeCtx); err != nil {
		logger.WithError(err).Warn("backend not reachable at startup")
	}
	cancel()

	store := state.New()
	gate := feed.NewGate(store, client, client.WSURL(), cfg.PollInterval, cfg.ReconnectDelay)
	defer gate.SetActive(false)

	logger.WithField("server", cfg.ServerURL).Info("console starting")
	return ui.Run(ui.Options{
		Store:     store,
		Gate:      gate,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// RunMock serves the development mock backend on addr until the context is
// cancelled.
func RunMock(ctx context.Context, addr string, verbose bool) error {
	logger := logging.Setup("", verbose)

	server := &http.Server{
		Addr:    addr,
		Handler: mockd.NewServer(logging.NewLogger("mockd")).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.WithField("addr", addr).Info("mock backend listening")
	fmt.Printf("mock backend listening on %s\n", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
