package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/codec"
	"github.com/alexisbeaulieu97/colorhelper/internal/config"
	"github.com/alexisbeaulieu97/colorhelper/internal/logger"
	"github.com/alexisbeaulieu97/colorhelper/internal/stats"
)

// appContext is everything a command needs, built from the global flags.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	stats   *stats.Store
	session *codec.Session
}

func loadAppContext(cmd *cobra.Command, operation string, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Fix the configuration file or pass --config with a valid path.")
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	log = log.With("command", operation)

	store := stats.Open(cfg.StatsPath, log)
	remembered := store.Get()
	session := codec.NewSession(codec.Options{Logger: log})
	session.SetOptions(remembered.Options)
	if c, ok := session.ParseColor(remembered.Value); ok {
		session.SetColor(c)
	}

	return &appContext{cfg: cfg, log: log, stats: store, session: session}, nil
}

// formatsOrder merges the configured order, the remembered order and the
// registered defaults.
func (a *appContext) formatsOrder() []string {
	return codec.Order(a.session.Registry(), a.cfg.FormatsOrder, a.stats.Get().FormatsOrder)
}

// saveStats records the session options alongside whatever fn changes.
// Failures are logged; stats never fail a command.
func (a *appContext) saveStats(fn func(*stats.Stats)) {
	a.stats.Update(func(s *stats.Stats) {
		s.Options = a.session.Snapshot()
		fn(s)
	})
	if err := a.stats.Save(); err != nil {
		a.log.Warn(err, "failed to save stats")
	}
}
