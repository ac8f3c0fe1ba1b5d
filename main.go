package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/app"
	"github.com/llehouerou/sukinote/internal/config"
	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notify"
	"github.com/llehouerou/sukinote/internal/state"
	"github.com/llehouerou/sukinote/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every command needs: configuration, the diagnostic log and
// the open note store.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Manager
	close  func()
}

func openEnv(storePath string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpLogOpen, err)
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		closeLog()
		return nil, errmsg.Wrap(errmsg.OpStoreOpen, err)
	}
	return &env{
		cfg:    cfg,
		logger: logger,
		store:  st,
		close: func() {
			st.Close()
			closeLog()
		},
	}, nil
}

func runUI(e *env) error {
	e.logger.Info("starting", "store", e.store.Path(), "samples", e.cfg.Store.SamplesEnabled())

	opts := []app.Option{app.WithLogger(e.logger)}

	views, err := state.New(e.store.DB())
	if err != nil {
		e.logger.Warn("view state unavailable", "err", err)
	} else {
		views.OnError(func(err error) { e.logger.Warn("saving view state", "err", err) })
		defer views.Close()
		opts = append(opts, app.WithState(views))
	}
	if e.cfg.Notify.AnniversariesEnabled() {
		n, err := notify.New()
		if err != nil {
			e.logger.Warn("desktop notifications unavailable", "err", err)
		} else {
			opts = append(opts, app.WithNotifier(n))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := store.Watch(ctx, e.store.Path(), store.DefaultWatchDebounce, e.logger)
	if err != nil {
		e.logger.Warn(errmsg.Format(errmsg.OpStoreWatch, err))
	} else {
		defer w.Close()
		opts = append(opts, app.WithStoreChanges(w.Changes()))
	}

	m := app.New(e.cfg, e.store, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}
	return nil
}

// openLogger writes diagnostics to the configured file. The terminal
// belongs to the UI, so without a file everything is discarded.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.HasLogFile() {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})
	return slog.New(h), func() { f.Close() }, nil
}
