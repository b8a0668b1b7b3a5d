// SPDX-License-Identifier: MPL-2.0

package licensepkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/license-project/generator/pkg/fspath"
	"github.com/license-project/generator/pkg/types"
)

const (
	// ManifestFile is the package descriptor.
	ManifestFile = "package.json"
	// SourceModuleFile is the source-form module.
	SourceModuleFile = "index.mjs"
	// CompiledModuleFile is the compiled-form module.
	CompiledModuleFile = "index.js"
	// LicenseFile holds the verbatim license text.
	LicenseFile = "LICENSE"
)

var (
	// ErrDirectoryExists is returned when the package directory already exists.
	ErrDirectoryExists = errors.New("package directory already exists")
	// ErrPermissionDenied is returned when the package directory cannot be created.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrEmptyArtifact is returned when a file of the set has no content.
	ErrEmptyArtifact = errors.New("artifact is empty")
)

type (
	// ArtifactSet is the content of the four files of a package.
	ArtifactSet struct {
		Manifest       []byte
		SourceModule   string
		CompiledModule string
		License        []byte
	}

	// Artifact is a single file of an ArtifactSet.
	Artifact struct {
		Name    string
		Content []byte
	}

	// WriteError reports the path that could not be created or written.
	WriteError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Err }

// Filenames returns the artifact file names in write and staging order.
func Filenames() []string {
	return []string{ManifestFile, SourceModuleFile, CompiledModuleFile, LicenseFile}
}

// Artifacts returns the files of the set in write order.
func (s ArtifactSet) Artifacts() []Artifact {
	return []Artifact{
		{Name: ManifestFile, Content: s.Manifest},
		{Name: SourceModuleFile, Content: []byte(s.SourceModule)},
		{Name: CompiledModuleFile, Content: []byte(s.CompiledModule)},
		{Name: LicenseFile, Content: s.License},
	}
}

// Write creates parentDir/name and writes the artifact set into it.
// It returns the absolute path of the package directory.
//
// Every artifact must be non-empty and the directory must not exist; both
// are checked before anything is created. A failure after the directory was created
// leaves it partially populated; nothing is rolled back.
func Write(parentDir types.FilesystemPath, name string, set ArtifactSet) (types.FilesystemPath, error) {
	if err := parentDir.Validate(); err != nil {
		return "", err
	}
	if !fspath.IsSingleElement(name) {
		return "", fmt.Errorf("invalid package directory name %q", name)
	}

	absParent, err := fspath.Abs(parentDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve parent directory: %w", err)
	}
	dir := fspath.JoinStr(absParent, name)

	artifacts := set.Artifacts()
	for _, a := range artifacts {
		if len(a.Content) == 0 {
			return "", &WriteError{Path: fspath.JoinStr(dir, a.Name).String(), Err: ErrEmptyArtifact}
		}
	}

	if err := os.Mkdir(dir.String(), 0o755); err != nil {
		return "", &WriteError{Path: dir.String(), Err: classifyMkdirError(err)}
	}

	for _, a := range artifacts {
		path := fspath.JoinStr(dir, a.Name)
		if err := os.WriteFile(path.String(), a.Content, 0o644); err != nil {
			return dir, &WriteError{Path: path.String(), Err: err}
		}
	}

	return dir, nil
}

func classifyMkdirError(err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %w", ErrDirectoryExists, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
