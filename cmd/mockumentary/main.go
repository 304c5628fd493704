// Command mockumentary inspects mock fixture files and replays the values
// their methods return.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MOCKUMENTARY"

var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds per-invocation settings resolved from flags and environment.
type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
}

// execute runs the command line and returns the process exit code. Failures
// are printed to stderr, colored unless --no-color or MOCKUMENTARY_NO_COLOR.
func execute(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		newPrinter(stderr, a.cfg.GetBool("no-color")).err(err.Error())

		return 1
	}

	return 0
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: viper.New()}

	root := &cobra.Command{
		Use:           "mockumentary",
		Short:         "Inspect and replay mock fixture files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(a.cfg.GetString("log-level"))
			if err != nil {
				return err
			}

			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")

	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	_ = a.cfg.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))
	_ = a.cfg.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newInspectCmd(a),
		newPlayCmd(a),
		newVersionCmd(),
	)

	return root, a
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print mockumentary version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mockumentary %s\n", version)

			return err
		},
	}
}

func parseLevel(level string) (slog.Level, error) {
	var parsed slog.Level

	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return parsed, nil
}

func (a *app) printer(cmd *cobra.Command) printer {
	return newPrinter(cmd.OutOrStdout(), a.cfg.GetBool("no-color"))
}
