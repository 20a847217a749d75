package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const name = "tagversion"

// app carries state shared across commands: the configuration loaded
// before any action runs.
type app struct {
	cfg Config
}

// silentExit maps to exit status 1 without an extra error line; the
// action has already reported to stderr.
type silentExit struct{}

func (silentExit) Error() string { return "" }

// New builds the root command. version is the CLI's own version string.
func New(version string) *cli.Command {
	a := &app{cfg: DefaultConfig()}

	return &cli.Command{
		Name:    name,
		Usage:   "read and manipulate version tags in a git repository",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file (default is ./.tagversion.yaml, then $HOME/.tagversion.yaml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.String("log-level"))
			cfg, err := LoadConfig(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			a.cfg = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.versionCmd(),
			a.writeCmd(),
		},
	}
}

// Execute runs the CLI and maps errors to a non-zero process exit.
func Execute(version string) {
	if err := New(version).Run(context.Background(), os.Args); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
