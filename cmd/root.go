package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/app"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/cache"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/config"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/loader"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocabquiz",
	Short: "Esperanto vocabulary quizzes",
	Long: `vocabquiz splits an Esperanto word list into practice groups by part of
speech and difficulty, and quizzes you on them with four-choice questions.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config (overrides VOCAB_CONFIG env var)")
	pf.String("source", "", "Word list file (.csv or .json)")
	pf.Int64("seed", 0, "Grouping seed")
	pf.String("db", "", "Path to SQLite cache database (overrides VOCAB_DB env var)")
	pf.Bool("no-cache", false, "Do not read or write the layout cache database")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is the resolved configuration shared by all commands.
type env struct {
	cfg *config.Config
	log *slog.Logger
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("source"); v != "" {
		cfg.Source.Path = v
		cfg.Source.Format = string(loader.FormatAuto)
	}
	if flags.Changed("seed") {
		cfg.Grouping.Seed, _ = flags.GetInt64("seed")
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if flags.Lookup("seed-mode") != nil && flags.Changed("seed-mode") {
		cfg.Grouping.SeedMode, _ = flags.GetString("seed-mode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &env{cfg: cfg, log: app.NewLogger(cfg.Log)}, nil
}

// groupingOptions derives the pipeline options from the config.
func (e *env) groupingOptions() grouping.Options {
	return grouping.Options{
		AudioKey: grouping.DefaultAudioKey,
		SeedMode: e.cfg.Grouping.Mode(),
		Logger:   e.log,
	}
}

// loadRecords reads the configured word list.
func (e *env) loadRecords() ([]grouping.Record, error) {
	format, err := loader.ParseFormat(e.cfg.Source.Format)
	if err != nil {
		return nil, err
	}
	records, err := loader.LoadFile(e.cfg.Source.Path, format, e.cfg.Source.Columns())
	if err != nil {
		return nil, err
	}
	e.log.Info("loaded word list", slog.String("path", e.cfg.Source.Path), slog.Int("rows", len(records)))
	return records, nil
}

// openStore opens the layout cache, or returns nil when caching is off.
func (e *env) openStore(cmd *cobra.Command) (*store.Store, error) {
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache || e.cfg.Store.Disabled {
		return nil, nil
	}
	dbPath, err := resolveDBPath(cmd, e.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(commandContext(cmd), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadGroups reads the word list and returns its groups for the
// configured seed, through the layout cache when it is enabled.
func (e *env) loadGroups(cmd *cobra.Command) ([]*grouping.Group, []grouping.Record, error) {
	records, err := e.loadRecords()
	if err != nil {
		return nil, nil, err
	}

	st, err := e.openStore(cmd)
	if err != nil {
		// Building without the cache yields the same groups.
		e.log.Warn("layout cache unavailable", slog.Any("error", err))
	}

	var layouts cache.LayoutStore
	if st != nil {
		defer st.Close()
		layouts = st.Layouts()
	}

	builder := cache.NewBuilder(e.groupingOptions(), layouts, e.log)
	groups, source, err := builder.Build(commandContext(cmd), records, e.cfg.Grouping.Seed)
	if err != nil {
		return nil, nil, err
	}

	if st != nil && source == cache.SourceBuilt && e.cfg.Store.KeepLayouts > 0 {
		if n, err := st.Layouts().Prune(commandContext(cmd), e.cfg.Store.KeepLayouts); err != nil {
			e.log.Warn("prune layout cache", slog.Any("error", err))
		} else if n > 0 {
			e.log.Debug("pruned layout cache", slog.Int64("removed", n))
		}
	}
	return groups, records, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then store.path from the config, then VOCAB_DB env var or the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
