// Package git reads the revision of the repository holding override files so
// dumped configurations can say which commit they were built from.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when no repository contains the given path.
var ErrNotRepository = errors.New("not inside a git repository")

// Revision holds information about the repository containing a path
type Revision struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string `json:"commit" yaml:"commit"`
	// Branch is the current branch name, empty on a detached HEAD
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
	// Tags is a list of tags pointing to the current commit
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	// IsDirty indicates if the working tree has uncommitted changes
	IsDirty bool `json:"dirty" yaml:"dirty"`
}

// Short returns the abbreviated commit hash, suffixed with "-dirty" when the
// working tree has uncommitted changes.
func (r *Revision) Short() string {
	hash := r.CommitHash
	if len(hash) > 7 {
		hash = hash[:7]
	}
	if r.IsDirty {
		return hash + "-dirty"
	}
	return hash
}

// GetRevision opens the repository that path belongs to, seeking upwards,
// and reads its HEAD.
func GetRevision(path string) (*Revision, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("failed to open the Git repository that path %q belongs to: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for repository %q: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for repository %q: %w", path, err)
	}

	var branch string
	if headRef.Name().IsBranch() {
		branch = headRef.Name().Short()
	}

	tags, err := tagsAt(repo, headRef.Hash())
	if err != nil {
		return nil, err
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for repository %q: %w", path, err)
	}

	return &Revision{
		CommitHash: headRef.Hash().String(),
		Branch:     branch,
		Tags:       tags,
		IsDirty:    !status.IsClean(),
	}, nil
}

func tagsAt(repo *git.Repository, hash plumbing.Hash) ([]string, error) {
	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []string
	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		revHash, err := repo.ResolveRevision(plumbing.Revision(ref.Name()))
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", ref.Name().Short(), err)
		}
		if *revHash == hash {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over tags: %w", err)
	}
	return tags, nil
}
