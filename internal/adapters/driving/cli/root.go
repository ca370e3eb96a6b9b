// Package cli is the cobra command surface for duafinder. It plays
// the host role from the core's point of view: it decides when to
// begin sessions, run searches and resolve selections, and it owns
// all user-facing formatting.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/hidayah-labs/duafinder/internal/adapters/driven/config/file"
	"github.com/hidayah-labs/duafinder/internal/adapters/driven/corpus"
	"github.com/hidayah-labs/duafinder/internal/adapters/driven/storage/memory"
	"github.com/hidayah-labs/duafinder/internal/adapters/driven/storage/sqlite"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driving"
	"github.com/hidayah-labs/duafinder/internal/core/services"
	"github.com/hidayah-labs/duafinder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
	corpusFlag    string

	appConfig      configfile.Config
	searchService  driving.Searcher
	sessionService driving.SessionManager

	// closers are shut down after the command finishes.
	closers []func() error
)

var rootCmd = &cobra.Command{
	Use:   "duafinder",
	Short: "Search multilingual devotional texts",
	Long: `duafinder matches free-text queries against a corpus of short
devotional texts in Arabic, English, Urdu and Roman Urdu, tolerating
misspellings, transliteration variants and cross-language synonyms.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := configfile.Load(configDirFlag)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg
		if verboseFlag || cfg.Verbose {
			logger.SetVerbose(true)
		}
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		closers = nil
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.duafinder)")
	rootCmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "", "TOML corpus file (overrides configured source)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the search and session services to a record
// source. Precedence: --corpus flag, configured corpus file, SQLite
// store.
func initServices() error {
	if searchService != nil {
		return nil
	}

	path := corpusFlag
	if path == "" {
		path = appConfig.CorpusPath
	}

	if path != "" {
		source, err := corpus.NewCachedSource(corpus.NewFileSource(path), path)
		if err != nil {
			return fmt.Errorf("watching corpus %s: %w", path, err)
		}
		closers = append(closers, source.Close)
		searchService = services.NewSearchService(source)
	} else {
		store, err := sqlite.NewStore(appConfig.DataDir)
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		closers = append(closers, store.Close)
		searchService = services.NewSearchService(store)
	}

	sessionService = services.NewSessionService(memory.NewSessionStore())
	return nil
}

// resultLimit resolves the effective result count for a flag value.
func resultLimit(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if appConfig.ResultLimit > 0 {
		return appConfig.ResultLimit
	}
	return services.DefaultLimit
}
