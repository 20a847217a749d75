package gitver

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/rs/zerolog/log"
	modsemver "golang.org/x/mod/semver"

	"github.com/rca/tagversion/pkg/version"
)

// Repository supplies version strings derived from git state and accepts
// new tags. It is the collaborator the version commands talk to; all of
// its answers are plain strings so the core stays free of git concerns.
type Repository struct {
	repo *gogit.Repository
}

// Open locates the repository enclosing path, walking up the directory
// tree the same way the git binary does.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %q: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// Branch returns the current branch name with slashes replaced by "--" so
// the name can be embedded in a version string. The GIT_BRANCH
// environment variable overrides repository state, which lets CI systems
// that check out detached heads name the branch explicitly. A detached
// HEAD without an override reports "HEAD".
func (r *Repository) Branch() (string, error) {
	branch := os.Getenv("GIT_BRANCH")
	if branch == "" {
		head, err := r.repo.Head()
		if err != nil {
			return "", &version.BranchError{Reason: "failed to resolve HEAD", Err: err}
		}
		branch = "HEAD"
		if head.Name().IsBranch() {
			branch = head.Name().Short()
		}
	}
	return strings.ReplaceAll(branch, "/", "--"), nil
}

// Describe computes the equivalent of `git describe --tags --always`: the
// nearest tag reachable from HEAD, suffixed with the commit distance and
// abbreviated hash when HEAD has moved past it, or the bare abbreviated
// hash when no tag exists. exact reports whether HEAD is tagged itself.
func (r *Repository) Describe() (desc string, exact bool, err error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", false, fmt.Errorf("resolving HEAD: %w", err)
	}
	headHash := head.Hash()

	tags, err := r.tagTargets()
	if err != nil {
		return "", false, err
	}

	if names, ok := tags[headHash]; ok {
		return bestTag(names), true, nil
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: headHash})
	if err != nil {
		return "", false, fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	distance := 0
	nearest := ""
	err = iter.ForEach(func(c *object.Commit) error {
		if names, ok := tags[c.Hash]; ok {
			nearest = bestTag(names)
			return storer.ErrStop
		}
		distance++
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("walking history: %w", err)
	}

	if nearest == "" {
		// No tag anywhere in the history.
		return shortHash(headHash), false, nil
	}
	desc = fmt.Sprintf("%s-%d-g%s", nearest, distance, shortHash(headHash))
	log.Debug().Str("describe", desc).Msg("described HEAD")
	return desc, false, nil
}

// CurrentVersion returns the raw version string for HEAD. When HEAD is
// not exactly on a tag and appendBranch is set, the branch name is
// appended the way an untagged build is usually labelled. An empty
// repository has no version and yields "".
func (r *Repository) CurrentVersion(appendBranch bool) (string, error) {
	desc, exact, err := r.Describe()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", err
	}
	if exact || !appendBranch {
		return desc, nil
	}
	branch, err := r.Branch()
	if err != nil {
		return "", err
	}
	return desc + "-" + branch, nil
}

// IsClean reports whether the working tree has no uncommitted or
// untracked changes, returning the offending paths for reporting.
func (r *Repository) IsClean() (bool, []string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, nil, fmt.Errorf("reading worktree status: %w", err)
	}
	if status.IsClean() {
		return true, nil, nil
	}
	dirty := make([]string, 0, len(status))
	for path := range status {
		dirty = append(dirty, path)
	}
	sort.Strings(dirty)
	return false, dirty, nil
}

// CreateTag tags HEAD with name. A non-empty message produces an
// annotated tag, otherwise the tag is lightweight, matching
// `git tag [-m <message>] <name>`.
func (r *Repository) CreateTag(name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	var opts *gogit.CreateTagOptions
	if message != "" {
		opts = &gogit.CreateTagOptions{
			Message: message,
			Tagger:  r.tagger(),
		}
	}
	if _, err := r.repo.CreateTag(name, head.Hash(), opts); err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}
	log.Debug().Str("tag", name).Msg("created tag")
	return nil
}

// tagger builds the signature for annotated tags from the repository
// configuration, falling back to a tool identity when none is set.
func (r *Repository) tagger() *object.Signature {
	sig := &object.Signature{Name: "tagversion", Email: "tagversion@localhost", When: time.Now()}
	if cfg, err := r.repo.ConfigScoped(gitconfig.GlobalScope); err == nil && cfg.User.Name != "" {
		sig.Name = cfg.User.Name
		sig.Email = cfg.User.Email
	}
	return sig
}

// tagTargets maps commit hashes to the tag names pointing at them, with
// annotated tags resolved to their targets.
func (r *Repository) tagTargets() (map[plumbing.Hash][]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	targets := make(map[plumbing.Hash][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := r.repo.TagObject(ref.Hash()); err == nil {
			target = tag.Target
		} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
			return err
		}
		targets[target] = append(targets[target], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}
	return targets, nil
}

// bestTag picks the tag a commit should be described by when several
// point at it: the highest by semantic version order, lexically as a tie
// break for tags that are not versions.
func bestTag(names []string) string {
	best := names[0]
	for _, n := range names[1:] {
		if tagLess(best, n) {
			best = n
		}
	}
	return best
}

func tagLess(a, b string) bool {
	av := "v" + strings.TrimPrefix(a, "v")
	bv := "v" + strings.TrimPrefix(b, "v")
	if modsemver.IsValid(av) && modsemver.IsValid(bv) {
		return modsemver.Compare(av, bv) < 0
	}
	return a < b
}

func shortHash(h plumbing.Hash) string {
	return h.String()[:7]
}
