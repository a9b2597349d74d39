package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command and the
// logger built from them.
type globalOptions struct {
	logLevel  string
	logFormat string
	logFile   string

	logger  *slog.Logger
	logSink *os.File
}

// NewRootCmd builds the shapemock command tree. Each call returns a fresh
// tree with its own flag state.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "shapemock",
		Short: "shapemock generates random data shaped by a schema",
		Long: `shapemock generates random mock data from declarative schemas.

Schemas are described in YAML or JSON documents and can be printed as
summaries, validated, imported from OpenAPI components, generated on the
command line, or served over HTTP.

Logging can be configured with SHAPEMOCK_LOG_LEVEL and SHAPEMOCK_LOG_FORMAT
or the matching persistent flags.`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setupLogging(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return g.close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (default text)")
	pf.StringVar(&g.logFile, "log-file", "", "Also append JSON logs to this file")

	rootCmd.AddCommand(
		newGenerateCmd(g),
		newSummaryCmd(g),
		newValidateCmd(g),
		newImportCmd(g),
		newServeCmd(g),
		newVersionCmd(),
	)
	return rootCmd
}

// setupLogging builds the logger from the environment, then applies any
// flags that were set explicitly. Logs always go to stderr so stdout stays
// clean for generated data.
func (g *globalOptions) setupLogging(cmd *cobra.Command) error {
	cfg := logging.FromEnv()
	cfg.Output = cmd.ErrOrStderr()
	if cmd.Flags().Changed("log-level") {
		cfg.Level = logging.ParseLevel(g.logLevel)
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Format = logging.ParseFormat(g.logFormat)
	}
	if g.logFile != "" {
		f, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		g.logSink = f
		cfg.Mirror = f
	}
	g.logger = logging.New(cfg)
	return nil
}

func (g *globalOptions) close() error {
	if g.logSink == nil {
		return nil
	}
	err := g.logSink.Close()
	g.logSink = nil
	return err
}

// Run executes the root command with os.Args and returns the process exit
// code. This is called by main.main().
func Run() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
