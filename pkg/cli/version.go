package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rca/tagversion/pkg/gitver"
	"github.com/rca/tagversion/pkg/version"
)

func (a *app) versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "get and set the git version tag",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "bump",
				Usage: "perform a version bump; by default the current version is displayed",
			},
			&cli.BoolFlag{
				Name:  "major",
				Usage: "bump the major version and reset minor and patch back to 0",
			},
			&cli.BoolFlag{
				Name:  "minor",
				Usage: "bump the minor version and reset patch back to 0",
			},
			&cli.BoolFlag{
				Name:  "patch",
				Usage: "bump the patch version; this is the default bump when none is specified",
			},
			&cli.BoolFlag{
				Name:  "prerelease",
				Usage: "bump the release candidate suffix, or start one at rc1",
			},
			&cli.StringFlag{
				Name:  "set",
				Usage: "set the version to the given version",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "skip format validation when setting a version explicitly",
			},
			&cli.BoolFlag{
				Name:  "semver",
				Usage: "only print the version if it is a semantic version, or exit 1",
			},
			&cli.BoolFlag{
				Name:  "calver",
				Usage: "use calendar versioning: validate and bump against the calver format",
			},
			&cli.StringFlag{
				Name:  "calver-format",
				Value: version.DefaultCalverFormat,
				Usage: "the calver format (ex: '%Y%m.%d')",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "set the git tag message on the command line",
			},
			&cli.BoolFlag{
				Name:  "no-branch",
				Usage: "do not append the branch to the version when the current commit is not tagged",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the version as JSON with its parsed components",
			},
		},
		Action: a.versionAction,
	}
}

func (a *app) versionAction(ctx context.Context, cmd *cli.Command) error {
	repo, err := gitver.Open(".")
	if err != nil {
		return err
	}

	clean, dirty, err := repo.IsClean()
	if err != nil {
		return err
	}
	if !clean {
		for _, path := range dirty {
			fmt.Fprintln(cmd.Root().ErrWriter, path)
		}
		return fmt.Errorf("abort: working copy not clean")
	}

	current, err := repo.CurrentVersion(a.appendBranch(cmd))
	if err != nil {
		return err
	}

	calverFormat := a.calverFormat(cmd)

	newVersion, err := a.nextVersion(cmd, current, calverFormat)
	if err != nil {
		return err
	}

	if newVersion == "" {
		// Display mode.
		if current == "" {
			next, _ := version.Parse(version.Initial).Bump(version.BumpPatch)
			fmt.Fprintf(cmd.Root().ErrWriter, "No version found, use --bump to set to %s\n", next)
			return silentExit{}
		}
		if err := a.printVersion(cmd, current); err != nil {
			return err
		}
		return a.checkScheme(cmd, current, calverFormat)
	}

	message := cmd.String("message")
	if message == "" {
		message = a.cfg.Message
	}
	if err := repo.CreateTag(newVersion, message); err != nil {
		return err
	}
	if err := a.printVersion(cmd, newVersion); err != nil {
		return err
	}
	return a.checkScheme(cmd, newVersion, calverFormat)
}

// nextVersion determines the version to tag, or "" when the command only
// displays the current one.
func (a *app) nextVersion(cmd *cli.Command, current, calverFormat string) (string, error) {
	if set := cmd.String("set"); set != "" {
		if cmd.Bool("calver") && !cmd.Bool("force") && !version.IsCalver(set, calverFormat) {
			return "", &version.VersionError{Reason: fmt.Sprintf("trying to set a non-calver version: %s", set)}
		}
		return set, nil
	}

	if !cmd.Bool("bump") {
		return "", nil
	}

	b := resolveBump(cmd)

	// A version that does not carry a numeric triple, like the bare hash
	// an untagged repository describes to, counts as no version at all and
	// bumps start over from the initial one.
	cur := version.Parse(current)
	fromGit := current != "" && !cur.IsUnreleased()
	if !fromGit {
		cur = version.Parse(version.Initial)
	}

	if cmd.Bool("calver") {
		next, err := version.NextCalver(time.Now(), cur.String(), calverFormat, b)
		if err != nil {
			return "", err
		}
		return next.String(), nil
	}

	// A described version without commit-distance metadata means HEAD is
	// exactly on the tag; bumping again would re-tag the same commit.
	if fromGit && !strings.Contains(current, "-") {
		return "", &version.VersionError{Reason: fmt.Sprintf("is version %q already bumped?", current)}
	}

	next, err := cur.Bump(b)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// resolveBump maps the bump flags onto a single request. With no
// dimension and no prerelease flag the patch is bumped, the original
// default of the tool.
func resolveBump(cmd *cli.Command) version.Bump {
	major := cmd.Bool("major")
	minor := cmd.Bool("minor")
	patch := cmd.Bool("patch")
	prerelease := cmd.Bool("prerelease")
	if !major && !minor && !patch && !prerelease {
		patch = true
	}
	return version.Resolve(major, minor, patch, prerelease)
}

// checkScheme enforces the --semver/--calver conformance flags against
// the version that was just printed.
func (a *app) checkScheme(cmd *cli.Command, v, calverFormat string) error {
	if cmd.Bool("semver") && !version.IsSemver(v) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if cmd.Bool("calver") && !version.IsCalver(v, calverFormat) {
		return fmt.Errorf("version %q is not a calendar version", v)
	}
	return nil
}

func (a *app) printVersion(cmd *cli.Command, raw string) error {
	if !cmd.Bool("json") {
		fmt.Fprintln(cmd.Root().Writer, raw)
		return nil
	}
	out := struct {
		Raw    string          `json:"raw"`
		Parsed version.Version `json:"parsed"`
	}{Raw: raw, Parsed: version.Parse(raw)}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, string(data))
	return nil
}

// calverFormat returns the effective calver format: the flag when given,
// the config value otherwise.
func (a *app) calverFormat(cmd *cli.Command) string {
	if cmd.IsSet("calver-format") {
		return cmd.String("calver-format")
	}
	return a.cfg.CalverFormat
}

// appendBranch reports whether untagged versions get the branch suffix.
func (a *app) appendBranch(cmd *cli.Command) bool {
	if cmd.Bool("no-branch") {
		return false
	}
	return a.cfg.Branch
}
