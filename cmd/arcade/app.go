package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"arcade/internal/config"
	"arcade/internal/logging"
	"arcade/internal/router"
	"arcade/internal/screens"
	"arcade/internal/store"
	"arcade/internal/trace"
	"arcade/internal/ui"

	"github.com/sirupsen/logrus"
)

// app is everything the UI needs, built once at boot.
type app struct {
	cfg      *config.Config
	store    *store.Store
	screens  *screens.Set
	router   *router.Router[ui.Screen]
	links    []ui.Link
	exporter *trace.Exporter
	logFile  io.Closer
	log      *logrus.Entry
}

// openStore opens the data directory ($ARCADE_DATA_DIR or ~/.arcade).
func openStore() (*store.Store, error) {
	st, err := store.NewStore()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	return st, nil
}

// loadConfig reads and finalizes the configuration. Relative defaults are
// anchored in dataDir.
func loadConfig(opts *options, dataDir string) (*config.Config, error) {
	path := opts.ConfigFile
	if path == "" {
		path = filepath.Join(dataDir, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Finalize(dataDir); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if opts.History != "" {
		mode, err := router.ParseHistoryMode(opts.History)
		if err != nil {
			return nil, err
		}
		cfg.History.Mode = mode.String()
	}
	if opts.Verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}
	return cfg, nil
}

func boot(ctx context.Context, opts *options) (*app, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	dataDir := st.BaseDir()
	cfg, err := loadConfig(opts, dataDir)
	if err != nil {
		return nil, err
	}

	logFile, err := logging.Setup(cfg.Logging)
	if err != nil {
		return nil, err
	}
	log := logging.NewLogger("arcade")

	exp, err := trace.NewExporter(ctx, cfg.Tracing)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	set := screens.New(st)
	table, err := set.Table()
	if err != nil {
		exp.Shutdown(ctx)
		logFile.Close()
		return nil, fmt.Errorf("navigation table: %w", err)
	}

	r, err := router.New(table,
		router.WithHistory(router.NewHistory(cfg.HistoryMode(), cfg.History.Base)),
		router.WithNotFound(set.NotFound),
		router.WithObserver(router.NewLogObserver(logging.NewLogger("router"))),
		router.WithObserver(trace.NewObserver(exp.Tracer())),
	)
	if err != nil {
		exp.Shutdown(ctx)
		logFile.Close()
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"data_dir": dataDir,
		"history":  cfg.History.Mode,
		"tracing":  exp.Enabled(),
	}).Info("arcade starting")

	return &app{
		cfg:      cfg,
		store:    st,
		screens:  set,
		router:   r,
		links:    screens.Links(),
		exporter: exp,
		logFile:  logFile,
		log:      log,
	}, nil
}

// start restores the saved session (when enabled) and performs the initial
// navigation. loc is an address-bar string; empty means "where we left off".
func (a *app) start(ctx context.Context, loc string) error {
	if a.cfg.Session.RestoreEnabled() {
		a.restoreSession()
	}

	path := ""
	if loc != "" {
		path = router.NewHistory(a.cfg.HistoryMode(), a.cfg.History.Base).ParseLocation(loc)
	}
	err := a.router.Start(ctx, path)
	if err == nil {
		return nil
	}
	a.log.WithError(err).WithField("path", path).Warn("start location rejected, opening home")
	return a.router.Start(ctx, screens.PathHome)
}

func (a *app) restoreSession() {
	sess, ok, err := a.store.Session()
	if err != nil {
		a.log.WithError(err).Warn("could not read saved session")
		return
	}
	if !ok {
		return
	}
	if err := a.router.Restore(sess.Entries, sess.Index); err != nil {
		a.log.WithError(err).Warn("ignoring saved session")
		return
	}
	a.log.WithField("entries", len(sess.Entries)).Debug("session restored")
}

// shutdown saves the session, closes the router and flushes telemetry.
func (a *app) shutdown(ctx context.Context) {
	entries, index := a.router.Snapshot()
	if err := a.store.SaveSession(store.Session{Entries: entries, Index: index}); err != nil {
		a.log.WithError(err).Warn("could not save session")
	}
	a.router.Close()
	if err := a.exporter.Shutdown(ctx); err != nil {
		a.log.WithError(err).Warn("trace shutdown")
	}
	a.log.Info("arcade stopped")
	a.logFile.Close()
}
