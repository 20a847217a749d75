package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rca/tagversion/pkg/gitver"
	"github.com/rca/tagversion/pkg/writefile"
)

func (a *app) writeCmd() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "write the current version into a file",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "branch",
				Usage: "write the version with the branch appended",
			},
			&cli.StringFlag{
				Name:  "pattern",
				Value: writefile.DefaultPattern,
				Usage: "placeholder pattern with start and content capture groups",
			},
			&cli.BoolFlag{
				Name:  "bare-semver",
				Usage: "replace the first bare semantic version in the file instead of a placeholder",
			},
		},
		Action: a.writeAction,
	}
}

func (a *app) writeAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("path to the file to write the version in is required")
	}

	repo, err := gitver.Open(".")
	if err != nil {
		return err
	}
	current, err := repo.CurrentVersion(cmd.Bool("branch"))
	if err != nil {
		return err
	}
	if current == "" {
		return fmt.Errorf("no version found to write")
	}

	if cmd.Bool("bare-semver") {
		return writefile.ReplaceSemver(path, current)
	}

	pattern := a.cfg.Pattern
	if cmd.IsSet("pattern") {
		pattern = cmd.String("pattern")
	}
	w, err := writefile.New(pattern)
	if err != nil {
		return err
	}
	return w.WriteVersion(path, current)
}
