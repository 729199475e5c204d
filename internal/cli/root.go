package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

type options struct {
	configPath string
	dataDir    string
	logLevel   string

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "tradebook",
		Short:         "Tradebook — a personal trading journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Override the journal data directory")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if opts.configPath != "" {
			loaded, err := config.LoadFromFile(opts.configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if opts.dataDir != "" {
			cfg.Storage.DataDir = opts.dataDir
		}
		if opts.logLevel != "" {
			cfg.Log.Level = opts.logLevel
		}

		lvl, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("bad log level %q: %w", cfg.Log.Level, err)
		}
		log.SetLevel(lvl)

		opts.cfg = cfg
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		newAddCmd(opts),
		newDeleteCmd(opts),
		newDayCmd(opts),
		newMonthCmd(opts),
		newYearCmd(opts),
		newTradesCmd(opts),
		newPairsCmd(opts),
		newExportCmd(opts),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tradebook (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openBook builds the storage backend selected by the config and loads the
// journal from it.
func (o *options) openBook() (*journal.Book, error) {
	var st journal.Storage
	switch o.cfg.Storage.Type {
	case "sqlite":
		s, err := journal.NewSQLiteStorage(o.cfg.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		st = s
	default:
		s, err := journal.NewJSONStorage(o.cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open json storage: %w", err)
		}
		st = s
	}
	return journal.Open(st), nil
}

// argDate resolves an optional YYYY-MM-DD argument, defaulting to today.
func argDate(args []string) (journal.Date, error) {
	if len(args) == 0 {
		return journal.Today(), nil
	}
	return journal.ParseDate(args[0])
}
