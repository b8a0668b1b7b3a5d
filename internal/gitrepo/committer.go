// SPDX-License-Identifier: MPL-2.0

package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	// CommitMessage is the message of the initial commit of every generated package.
	CommitMessage = "Initial commit (by @license-project/generator)"
	// RemoteName is the name of the remote configured on the new repository.
	RemoteName = "origin"
	// DefaultBranch is used when the Committer has no branch configured.
	DefaultBranch = "main"
)

// Step names a stage of Commit, in execution order.
type Step string

// Steps of Commit.
const (
	StepInit      Step = "init repository"
	StepLoadIndex Step = "load index"
	StepStage     Step = "stage files"
	StepWriteTree Step = "write tree"
	StepCommit    Step = "create commit"
	StepAddRemote Step = "add remote"
)

// ErrIndexMismatch is returned when the index does not hold exactly the staged files.
var ErrIndexMismatch = errors.New("index does not match the staged files")

type (
	// Clock supplies the commit timestamp.
	Clock interface {
		Now() time.Time
	}

	// RealClock reads the system time.
	RealClock struct{}

	// Committer creates the repository for a generated package.
	Committer struct {
		// Clock defaults to RealClock.
		Clock Clock
		// Branch is the initial branch name. Defaults to DefaultBranch.
		Branch string
	}

	// CommitRequest describes the repository to create.
	CommitRequest struct {
		// Dir is the package directory; it becomes the work tree root.
		Dir string
		// Files are staged in the given order, relative to Dir.
		Files []string
		// AuthorName and AuthorEmail sign the commit as author and committer.
		AuthorName  string
		AuthorEmail string
		// RemoteURL is the URL of the "origin" remote.
		RemoteURL string
	}

	// CommitResult identifies the objects created by Commit.
	CommitResult struct {
		Commit    plumbing.Hash
		Tree      plumbing.Hash
		Branch    plumbing.ReferenceName
		RemoteURL string
	}

	// StepError names the step of Commit that failed.
	StepError struct {
		Step Step
		Err  error
	}
)

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("git: %s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error { return e.Err }

// Commit initializes a non-bare repository at req.Dir, stages req.Files,
// creates the root commit on HEAD and adds the "origin" remote.
// Steps run strictly in order; the first failure is returned as a *StepError.
// Nothing is retried and a partially initialized repository is left in place.
func (c *Committer) Commit(ctx context.Context, req CommitRequest) (CommitResult, error) {
	branch := plumbing.NewBranchReferenceName(c.branch())
	fail := func(step Step, err error) (CommitResult, error) {
		return CommitResult{}, &StepError{Step: step, Err: err}
	}

	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return fail(StepInit, err)
	}

	if err := ctx.Err(); err != nil {
		return fail(StepInit, err)
	}
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: branch},
		Bare:        false,
	})
	if err != nil {
		return fail(StepInit, err)
	}

	if err := ctx.Err(); err != nil {
		return fail(StepLoadIndex, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fail(StepLoadIndex, err)
	}

	for _, file := range req.Files {
		if err := ctx.Err(); err != nil {
			return fail(StepStage, err)
		}
		if _, err := wt.Add(filepath.ToSlash(file)); err != nil {
			return fail(StepStage, fmt.Errorf("%s: %w", file, err))
		}
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return fail(StepWriteTree, err)
	}
	if len(idx.Entries) != len(req.Files) {
		return fail(StepWriteTree, fmt.Errorf("%w: %d entries, %d files", ErrIndexMismatch, len(idx.Entries), len(req.Files)))
	}

	if err := ctx.Err(); err != nil {
		return fail(StepCommit, err)
	}
	sig := &object.Signature{
		Name:  req.AuthorName,
		Email: req.AuthorEmail,
		When:  c.clock().Now(),
	}
	hash, err := wt.Commit(CommitMessage, &git.CommitOptions{
		Author:    sig,
		Committer: sig,
	})
	if err != nil {
		return fail(StepCommit, err)
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return fail(StepCommit, err)
	}
	if commit.NumParents() != 0 {
		return fail(StepCommit, fmt.Errorf("expected a root commit, got %d parents", commit.NumParents()))
	}

	if err := ctx.Err(); err != nil {
		return fail(StepAddRemote, err)
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: RemoteName,
		URLs: []string{req.RemoteURL},
	}); err != nil {
		return fail(StepAddRemote, err)
	}

	return CommitResult{
		Commit:    hash,
		Tree:      commit.TreeHash,
		Branch:    branch,
		RemoteURL: req.RemoteURL,
	}, nil
}

func (c *Committer) branch() string {
	if c.Branch == "" {
		return DefaultBranch
	}
	return c.Branch
}

func (c *Committer) clock() Clock {
	if c.Clock == nil {
		return RealClock{}
	}
	return c.Clock
}
