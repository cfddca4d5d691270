package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/captionkit/caption"
	"github.com/randalmurphal/captionkit/config"
	"github.com/randalmurphal/captionkit/counter"
	"github.com/randalmurphal/captionkit/counterfile"
	"github.com/randalmurphal/captionkit/scope"
)

var (
	flagDataDir string
	flagUser    int64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "captionctl",
	Short: "Caption template rendering with stateful counters",
	Long: "captionctl renders caption templates, advancing the episode and " +
		"cycle counters kept per user or in named, durable counter stores.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding named store documents (default from config)")
	rootCmd.PersistentFlags().Int64VarP(&flagUser, "user", "u", 0, "user identity for local counters and scope state")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(storesCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(scopeCmd)
}

// newLogger builds the CLI logger: production config normally, development
// config with debug level under --verbose.
func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// env bundles everything a subcommand needs: config, the file-backed
// store, the scope resolver, and a sequencer routing local and named
// scopes.
type env struct {
	cfg       config.Config
	files     *counterfile.Store
	resolver  *scope.Resolver
	scopePath string
	seq       *caption.Sequencer
	log       *zap.Logger
}

// loadEnv resolves config (flags win over file/env) and opens the backing
// stores. The in-memory local store is per-invocation; local counters in a
// CLI therefore reset per run, which is what the --store-less smoke-test
// path wants.
func loadEnv() (*env, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	confDir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	scopePath := filepath.Join(confDir, "scopes.yaml")
	resolver, err := scope.Load(scopePath)
	if err != nil {
		return nil, err
	}

	files := counterfile.NewStoreWithTimeout(cfg.DataDir, cfg.LockTimeout.Duration)
	router := counter.NewRouter(counter.NewLocal(), files)
	log.Debug("environment ready",
		zap.String("data_dir", cfg.DataDir),
		zap.Int64("user", flagUser))

	return &env{
		cfg:       cfg,
		files:     files,
		resolver:  resolver,
		scopePath: scopePath,
		seq:       caption.NewSequencer(router),
		log:       log,
	}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}
