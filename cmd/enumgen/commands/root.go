package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrDiagnostics is returned when a command finished but recorded error
// diagnostics. The diagnostics have already been printed.
var ErrDiagnostics = errors.New("enumgen: errors reported")

type globalOptions struct {
	logLevel   string
	logFormat  string
	noColor    bool
	jsonOutput bool

	logger zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return newRootCommand(version, commit, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCommand(version, commit string, stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "enumgen",
		Short: "Render enum declarations through templates",
		Long: `enumgen renders enum declarations from a YAML or JSON manifest through
pongo2 templates. Templates query cases, parameters and comments by attribute
name; unknown attributes and disallowed comment keys are reported as
diagnostics against the declaration.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print diagnostics and listings as JSON")

	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newLabelsCommand(opts))

	return rootCmd
}

func (o *globalOptions) setupLogging() error {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(o.logLevel)))
	if err != nil {
		return fmt.Errorf("enumgen: invalid log level %q", o.logLevel)
	}

	var writer io.Writer
	switch o.logFormat {
	case "json":
		writer = o.stderr
	case "console", "":
		writer = zerolog.ConsoleWriter{Out: o.stderr, NoColor: o.noColor}
	default:
		return fmt.Errorf("enumgen: invalid log format %q", o.logFormat)
	}

	o.logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	log.Logger = o.logger
	return nil
}
