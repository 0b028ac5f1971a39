package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/config"
	"github.com/s0up4200/go-e621/e621"
	"github.com/s0up4200/go-e621/filter"
)

// skipInit marks commands that run without config or a client
const skipInit = "skip-init"

var (
	cfgFile  string
	debug    bool
	cfg      *config.Config
	logger   zerolog.Logger
	client   *e621.Client
	filters  *filter.Manager
	registry *prometheus.Registry

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "e6",
	Short: "A command line client for the e621 API",
	Long: `e6 talks to the e621 imageboard API. It lists and edits posts, tags,
notes, pools, flags and accounts. Listing output is JSON and can be narrowed
with --where using an expression or a named filter from the config file.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: printSummary,
}

// SetVersion records build information injected at link time
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every request")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and builds the client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipInit] != "" {
		logger = setupLogger(config.LoggingConfig{Level: "info", Color: true})
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if debug {
		cfg.Logging.Level = "debug"
	}
	logger = setupLogger(cfg.Logging)

	registry = prometheus.NewRegistry()

	opts := []e621.Option{
		e621.WithBaseURL(cfg.E621.URL),
		e621.WithTimeout(cfg.E621.Timeout),
		e621.WithMetrics(registry),
	}
	if cfg.E621.Username != "" {
		opts = append(opts, e621.WithCredentials(cfg.E621.Username, cfg.E621.APIKey))
	}

	client, err = e621.NewClient(cfg.E621.Project, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create e621 client: %w", err)
	}

	filters = filter.NewManager(filter.WithEvaluator(
		filter.NewConcurrentEvaluator(filter.WithWorkers(cfg.Batch.Concurrency)),
	))
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter in config: %w", err)
	}

	logger.Debug().
		Str("url", client.BaseURL()).
		Bool("authenticated", client.Authenticated()).
		Int("filters", len(cfg.Filter)).
		Msg("Client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is redirected
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printSummary logs request counts when metrics.summary is enabled
func printSummary(cmd *cobra.Command, args []string) error {
	if cfg == nil || registry == nil || !cfg.Metrics.Summary {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}

			switch {
			case m.GetCounter() != nil:
				logger.Info().
					Str("method", labels["method"]).
					Str("route", labels["route"]).
					Str("code", labels["code"]).
					Float64("count", m.GetCounter().GetValue()).
					Msg("Requests")
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				var avg time.Duration
				if h.GetSampleCount() > 0 {
					avg = time.Duration(h.GetSampleSum() / float64(h.GetSampleCount()) * float64(time.Second))
				}
				logger.Info().
					Str("method", labels["method"]).
					Str("route", labels["route"]).
					Dur("avg", avg).
					Msg("Latency")
			}
		}
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to e621",
	Long:  `Send one small listing request and report whether the site answered.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to e621 at %s...\n", client.BaseURL())

	if err := client.TestConnection(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- User-Agent: %s\n", client.UserAgent())
	if client.Authenticated() {
		fmt.Printf("- Logged in as: %s\n", client.Username())
	} else {
		fmt.Println("- Logged in as: (anonymous)")
	}
	fmt.Printf("- Named filters: %s\n", strings.Join(filters.ListFilters(), ", "))

	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Annotations: map[string]string{skipInit: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("e6 %s (built %s)\n", version, buildTime)
	},
}
