package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/packlist/internal/config"
	"github.com/Makepad-fr/packlist/internal/logging"
	"github.com/Makepad-fr/packlist/internal/model"
	"github.com/Makepad-fr/packlist/internal/store"
	"github.com/Makepad-fr/packlist/internal/store/seedfile"
	"github.com/Makepad-fr/packlist/internal/tui"
	"github.com/Makepad-fr/packlist/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Global flag values.
var (
	flagConfig string
	flagEmpty  bool
)

// session is what every subcommand works on. Built by PersistentPreRunE.
type session struct {
	cfg      config.Config
	store    *store.ListStore
	log      *log.Logger
	closeLog func() error
}

var sess *session

var rootCmd = &cobra.Command{
	Use:   "packlist",
	Short: "packlist is a terminal packing list",
	Long: `packlist keeps an in-memory packing list for the current session.
Add items, tick them off, sort the view, and watch the totals.
Nothing is saved when the session ends.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: startSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(sess.store, tui.Options{
			Sort:        sess.cfg.SortCriterion(),
			MaxQuantity: sess.cfg.MaxQuantity,
			Logger:      sess.log,
		})
	},
}

func init() {
	// finalizers run even when RunE fails
	cobra.OnFinalize(endSession)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./packlist.yaml or ~/.config/packlist/packlist.yaml)")
	pf.BoolVar(&flagEmpty, "empty", false, "start with an empty list instead of the seed")
	pf.String("seed", "", "seed the list from a JSON or YAML file")
	pf.String("sort", string(model.SortInput), "initial sort: input, description or packed")
	pf.String("theme", "classic", "colour theme: classic, neon or mono")
	pf.Bool("no-color", false, "disable colours")
	pf.Int("max-quantity", 20, "largest quantity offered when adding")
	pf.String("lang", "en", "language used to sort descriptions")
	pf.Bool("debug", false, "log debug output")
	pf.String("log-file", "", "write logs to this file")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"seed":         config.KeySeedFile,
	"sort":         config.KeySort,
	"theme":        config.KeyTheme,
	"no-color":     config.KeyNoColor,
	"max-quantity": config.KeyMaxQuantity,
	"lang":         config.KeyLanguage,
	"debug":        config.KeyDebug,
	"log-file":     config.KeyLogFile,
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// startSession loads config, sets up output and seeds the store.
func startSession(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v := config.New(flagConfig)
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)

	// the TUI owns the terminal, so it only logs to a file
	interactive := cmd == cmd.Root()
	logger, closeLog, err := logging.New(logging.Options{
		Debug: cfg.Debug,
		File:  cfg.LogFile,
		Quiet: interactive,
	})
	if err != nil {
		return err
	}

	seed, err := loadSeed(cfg)
	if err != nil {
		_ = closeLog()
		return err
	}
	logger.Debug("session started", "items", len(seed), "sort", cfg.Sort, "theme", cfg.Theme, "lang", cfg.Language)

	sess = &session{
		cfg:      cfg,
		store:    store.New(seed, store.WithLanguage(cfg.LanguageTag())),
		log:      logger,
		closeLog: closeLog,
	}
	return nil
}

// endSession closes the log file, if any.
func endSession() {
	if sess == nil || sess.closeLog == nil {
		return
	}
	if err := sess.closeLog(); err != nil {
		sess.log.Warn("close log file", "err", err)
	}
	sess.closeLog = nil
}

func loadSeed(cfg config.Config) ([]model.Item, error) {
	switch {
	case flagEmpty:
		return nil, nil
	case cfg.SeedFile != "":
		items, err := seedfile.Load(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		return items, nil
	default:
		return seedfile.Default(), nil
	}
}
