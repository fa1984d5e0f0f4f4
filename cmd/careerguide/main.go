package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/studiowebux/careerguide/internal/analytics"
	"github.com/studiowebux/careerguide/internal/api"
	"github.com/studiowebux/careerguide/internal/cli"
	"github.com/studiowebux/careerguide/internal/config"
	"github.com/studiowebux/careerguide/internal/keybinds"
	"github.com/studiowebux/careerguide/internal/mock"
	"github.com/studiowebux/careerguide/internal/tui"
	"github.com/studiowebux/careerguide/internal/types"
	"github.com/studiowebux/careerguide/internal/view"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "careerguide",
	Short: "Career guidance in the terminal",
	Long: `careerguide explores career guidance served by the career API: look up a
career, find careers for your skills, analyze a skill gap, compare careers
and browse the career catalog.

Run without arguments to start the TUI, or use a subcommand to run one view
headless and print its result.

Examples:
  careerguide                                  # Start interactive TUI
  careerguide career "Data Scientist" -l student
  careerguide recommend "python, sql"
  careerguide gap "Data Scientist" -s "python, excel"
  careerguide compare "Data Scientist" "Web Developer"
  careerguide search data -o html
  careerguide details "Data Analyst" -o json
  careerguide mock --port 5000                 # Serve fixture responses`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

var careerCmd = &cobra.Command{
	Use:   "career <name>",
	Short: "Get guidance for one career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Career(ctx, args[0], flagLevel)
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <skills>",
	Short: "Find careers matching a comma-separated skill list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Recommend(ctx, args[0])
		})
	},
}

var gapCmd = &cobra.Command{
	Use:   "gap <career>",
	Short: "Analyze the gap between your skills and a career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.SkillGap(ctx, args[0], flagSkills)
		})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <career> [career] [career]",
	Short: "Compare up to three careers side by side",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Compare(ctx, args)
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the career catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Search(ctx, args[0])
		})
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <name>",
	Short: "Show catalog details for one career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Details(ctx, args[0])
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which AI guidance providers the backend has enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, func(ctx context.Context, r *cli.Runner) error {
			return r.Status(ctx)
		})
	},
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Serve fixture responses for every endpoint",
	Long: `Start a fixture backend that answers every career API endpoint with
canned responses. Without --config the built-in fixtures are used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMock(cmd)
	},
}

// Persistent flags read directly; the rest are bound in config.Load
var (
	flagEnvFile string
	flagVerbose bool
)

// Subcommand flags
var (
	flagLevel      string
	flagSkills     string
	flagMockConfig string
	flagMockPort   int
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("base-url", config.DefaultBaseURL, "Career API base URL")
	pf.String("log-file", "", "Log file used by the TUI")
	pf.StringP("output", "o", config.OutputText, "Output format for subcommands (text/html/json/yaml)")
	pf.String("race-policy", config.RaceLatest, "Which response wins when requests overlap (latest/last-settled)")
	pf.Bool("analytics", true, "Record a session call log (ctrl+s in the TUI)")
	pf.StringVar(&flagEnvFile, "env-file", "", "Load environment variables from file (default ./.env)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests to stderr in subcommands")

	careerCmd.Flags().StringVarP(&flagLevel, "level", "l", types.LevelFresher, "Career level (student/fresher/professional)")
	gapCmd.Flags().StringVarP(&flagSkills, "skills", "s", "", "Comma-separated skills you already have")

	mockCmd.Flags().StringVarP(&flagMockConfig, "config", "c", "", "Route config file (yaml or json)")
	mockCmd.Flags().IntVarP(&flagMockPort, "port", "p", 0, "Port to listen on (default from config, else 5000)")

	rootCmd.AddCommand(careerCmd, recommendCmd, gapCmd, compareCmd, searchCmd, detailsCmd, statusCmd, mockCmd)
}

// loadEnv loads a .env file before config reads the environment
func loadEnv(cmd *cobra.Command, args []string) error {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		return nil
	}
	_ = godotenv.Load()
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// newClient builds the API client, with the call log when enabled. The
// returned close func releases the call log.
func newClient(cfg config.Config) (*api.Client, *analytics.Manager, func(), error) {
	if !cfg.Analytics {
		return api.New(cfg.BaseURL), nil, func() {}, nil
	}

	mgr, err := analytics.NewManager()
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := mgr.Close(); err != nil {
			log.Printf("error closing call log: %v", err)
		}
	}
	return api.New(cfg.BaseURL, api.WithRecorder(mgr)), mgr, closeFn, nil
}

// runTUI starts the interactive TUI. The terminal belongs to Bubble Tea, so
// logs go to the configured log file.
func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.EnsureLogDir(); err != nil {
		return err
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	registry, err := keybinds.LoadOrDefault(config.KeybindsPath())
	if err != nil {
		return err
	}

	policy, err := view.ParsePolicy(cfg.RacePolicy)
	if err != nil {
		return err
	}

	client, mgr, closeLog, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(client, tui.Options{
		Analytics: mgr,
		Keybinds:  registry,
		Policy:    policy,
	})
}

// runHeadless runs one view and prints its result
func runHeadless(cmd *cobra.Command, fn func(context.Context, *cli.Runner) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	if flagVerbose {
		log.SetOutput(os.Stderr)
	}

	client, _, closeLog, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fn(ctx, cli.NewRunner(client, cmd.OutOrStdout(), cfg.Output, 0))
}

// runMock serves fixtures until interrupted
func runMock(cmd *cobra.Command) error {
	log.SetOutput(os.Stderr)

	var (
		cfg     *mock.Config
		err     error
		workdir = "."
	)
	if flagMockConfig != "" {
		cfg, err = mock.LoadConfig(flagMockConfig)
		workdir = filepath.Dir(flagMockConfig)
	} else {
		cfg, err = mock.DefaultConfig()
	}
	if err != nil {
		return err
	}
	if flagMockPort != 0 {
		cfg.Port = flagMockPort
	}

	server := mock.NewServer(cfg, workdir)
	if err := server.Start(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Mock server listening on %s (%d routes). Press Ctrl+C to stop.\n",
		server.Address(), len(cfg.Routes))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return server.Stop()
}
