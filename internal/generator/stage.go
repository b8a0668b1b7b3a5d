// SPDX-License-Identifier: MPL-2.0

package generator

import "fmt"

// Stage is a step of Pipeline.Run, in execution order.
type Stage int

const (
	// StageReadLicense reads the license file byte-for-byte and rejects an
	// empty one.
	StageReadLicense Stage = iota
	// StageCollectAnswers runs the interview and re-validates its answers.
	StageCollectAnswers
	// StageResolveIdentity derives the package name, scope and keywords.
	StageResolveIdentity
	// StageSynthesize builds the source module and the manifest.
	StageSynthesize
	// StageCompile converts the source module to its compatibility form.
	StageCompile
	// StageWrite creates the package directory and its files.
	StageWrite
	// StageCommit initializes the repository and creates the root commit.
	StageCommit
	// StageAttachRemote adds the "origin" remote.
	StageAttachRemote
	// StageDone is the terminal success state.
	StageDone
	// StageFailed is the terminal failure state. StageError reports the
	// stage that was running, never StageFailed itself.
	StageFailed
)

// StageError names the stage a run failed in.
type StageError struct {
	Stage Stage
	Err   error
}

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageReadLicense:
		return "read license"
	case StageCollectAnswers:
		return "collect answers"
	case StageResolveIdentity:
		return "resolve identity"
	case StageSynthesize:
		return "synthesize module"
	case StageCompile:
		return "compile module"
	case StageWrite:
		return "write package"
	case StageCommit:
		return "commit package"
	case StageAttachRemote:
		return "attach remote"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error { return e.Err }
