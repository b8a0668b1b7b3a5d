// SPDX-License-Identifier: MPL-2.0

package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/license-project/generator/internal/compiler"
	"github.com/license-project/generator/internal/gitrepo"
	"github.com/license-project/generator/internal/interview"
	"github.com/license-project/generator/pkg/answers"
	"github.com/license-project/generator/pkg/licensepkg"
	"github.com/license-project/generator/pkg/types"
)

type (
	// Committer records a written package directory in a new repository.
	// *gitrepo.Committer is the production implementation.
	Committer interface {
		Commit(ctx context.Context, req gitrepo.CommitRequest) (gitrepo.CommitResult, error)
	}

	// Pipeline holds the collaborators of a run. Interviewer, Compiler,
	// Committer and Defaults.WaiverText are required.
	Pipeline struct {
		Interviewer interview.Interviewer
		Compiler    compiler.Compiler
		Committer   Committer
		// IDs re-validates the answer record; nil skips the check.
		IDs answers.Membership
		// Defaults pre-fill the interview. The waiver text is resolved by the
		// caller before the pipeline is built and is not changed by Run.
		Defaults interview.Defaults
		// Logger defaults to a discarding logger.
		Logger *log.Logger
		// Namespace defaults to licensepkg.DefaultNamespace.
		Namespace string
		// ParentDir is where the package directory is created; defaults to ".".
		ParentDir types.FilesystemPath
	}

	// Result describes a generated package.
	Result struct {
		Identity licensepkg.Identity
		Record   answers.Record
		Dir      types.FilesystemPath
		Commit   gitrepo.CommitResult
	}
)

var (
	// ErrMissingCollaborator is returned by Run when a required field is unset.
	ErrMissingCollaborator = errors.New("pipeline is missing a collaborator")
	// ErrEmptyLicense is returned when the license file has no content.
	ErrEmptyLicense = errors.New("license file is empty")
)

// Run generates one package from the license file at licensePath.
func (p *Pipeline) Run(ctx context.Context, licensePath string) (Result, error) {
	if err := p.check(); err != nil {
		return Result{}, err
	}

	logger := p.logger()
	var res Result
	stage := StageReadLicense
	fail := func(err error) (Result, error) {
		logger.Debug("entering stage", "stage", StageFailed, "from", stage, "err", err)
		return res, &StageError{Stage: stage, Err: err}
	}
	enter := func(s Stage) error {
		stage = s
		logger.Debug("entering stage", "stage", s)
		return ctx.Err()
	}

	if err := enter(StageReadLicense); err != nil {
		return fail(err)
	}
	license, err := os.ReadFile(licensePath)
	if err != nil {
		return fail(err)
	}
	if len(license) == 0 {
		return fail(fmt.Errorf("%w: %s", ErrEmptyLicense, licensePath))
	}
	logger.Debug("read license", "path", licensePath, "bytes", len(license))

	if err := enter(StageCollectAnswers); err != nil {
		return fail(err)
	}
	rec, err := p.Interviewer.Interview(ctx, p.Defaults)
	if err != nil {
		return fail(err)
	}
	if p.IDs != nil {
		if err := rec.Validate(p.IDs); err != nil {
			return fail(err)
		}
	}
	res.Record = rec

	if err := enter(StageResolveIdentity); err != nil {
		return fail(err)
	}
	id := licensepkg.Resolve(rec, p.namespace())
	res.Identity = id
	logger.Debug("resolved identity", "name", id.Name, "package", id.FullName)

	if err := enter(StageSynthesize); err != nil {
		return fail(err)
	}
	source, err := licensepkg.SynthesizeModule(id, string(license))
	if err != nil {
		return fail(err)
	}
	manifest, err := licensepkg.NewManifest(id, rec).Marshal()
	if err != nil {
		return fail(err)
	}

	if err := enter(StageCompile); err != nil {
		return fail(err)
	}
	compiled, err := p.Compiler.Compile(ctx, source)
	if err != nil {
		return fail(err)
	}

	if err := enter(StageWrite); err != nil {
		return fail(err)
	}
	dir, err := licensepkg.Write(p.parentDir(), id.Name, licensepkg.ArtifactSet{
		Manifest:       manifest,
		SourceModule:   source,
		CompiledModule: compiled,
		License:        license,
	})
	if err != nil {
		return fail(err)
	}
	res.Dir = dir
	logger.Debug("wrote package", "dir", dir)

	if err := enter(StageCommit); err != nil {
		return fail(err)
	}
	commit, err := p.Committer.Commit(ctx, gitrepo.CommitRequest{
		Dir:         dir.String(),
		Files:       licensepkg.Filenames(),
		AuthorName:  rec.AuthorName,
		AuthorEmail: rec.AuthorEmail,
		RemoteURL:   id.RemoteURL(),
	})
	if err != nil {
		var stepErr *gitrepo.StepError
		if errors.As(err, &stepErr) && stepErr.Step == gitrepo.StepAddRemote {
			stage = StageAttachRemote
		}
		return fail(err)
	}
	res.Commit = commit
	logger.Debug("attached remote", "name", gitrepo.RemoteName, "url", commit.RemoteURL)

	stage = StageDone
	logger.Debug("entering stage", "stage", stage)
	logger.Info("generated package", "package", id.FullName, "dir", dir, "commit", commit.Commit.String())
	return res, nil
}

func (p *Pipeline) check() error {
	var missing []string
	if p.Interviewer == nil {
		missing = append(missing, "Interviewer")
	}
	if p.Compiler == nil {
		missing = append(missing, "Compiler")
	}
	if p.Committer == nil {
		missing = append(missing, "Committer")
	}
	if p.Defaults.WaiverText == "" {
		missing = append(missing, "Defaults.WaiverText")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCollaborator, missing)
	}
	return nil
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}

func (p *Pipeline) namespace() string {
	if p.Namespace == "" {
		return licensepkg.DefaultNamespace
	}
	return p.Namespace
}

func (p *Pipeline) parentDir() types.FilesystemPath {
	if p.ParentDir == "" {
		return "."
	}
	return p.ParentDir
}
