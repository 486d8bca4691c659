package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorillacarts/stadium-calendars/internal/feed"
	"github.com/gorillacarts/stadium-calendars/internal/logger"
	"github.com/gorillacarts/stadium-calendars/internal/pipeline"
	"github.com/gorillacarts/stadium-calendars/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutputDir  string
	flagHealthFile string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stadium-calendars",
		Short: "Build venue calendar feeds from public event listings",
		Long: `Aggregates published event listings from stadium websites and fixture
pages into one iCalendar (.ics) feed per venue. Each run rebuilds every
configured calendar from scratch; schedule repeated runs externally.`,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "output", "Directory for generated .ics files")
	cmd.Flags().StringVar(&flagHealthFile, "health-file", "", "Optional path for a run-completed marker file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg := feed.DefaultConfig()

	store, err := storage.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Building %d calendars from %d sources into %s\n",
			len(cfg.Venues), len(cfg.Sources), store.Dir())
	}

	builder := pipeline.New(cfg, store)
	if err := builder.Run(); err != nil {
		return fmt.Errorf("building calendars: %w", err)
	}

	if flagHealthFile != "" {
		if err := storage.WriteHealthMarker(flagHealthFile, time.Now()); err != nil {
			return fmt.Errorf("writing health marker: %w", err)
		}
	}

	if flagVerbose {
		snapshot, err := json.MarshalIndent(logger.GetMetricsSnapshot(), "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stderr, "Run metrics: %s\n", snapshot)
		}
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
