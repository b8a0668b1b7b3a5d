// SPDX-License-Identifier: MPL-2.0

package licensepkg

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/license-project/generator/pkg/answers"
)

const (
	// ManifestVersion is the version of every generated package.
	ManifestVersion = "1.0.0"
	// WaiverLicense is the license of the generated wrapper code itself,
	// not of the packaged license text.
	WaiverLicense = "CC0-1.0"
)

type (
	// Manifest mirrors a package.json descriptor. Field order is the key
	// order of the serialized manifest.
	Manifest struct {
		Name        string     `json:"name"`
		Version     string     `json:"version"`
		Description string     `json:"description"`
		Keywords    []string   `json:"keywords"`
		License     string     `json:"license"`
		Author      Person     `json:"author"`
		Main        string     `json:"main"`
		Module      string     `json:"module"`
		Exports     Exports    `json:"exports"`
		Files       []string   `json:"files"`
		Repository  Repository `json:"repository"`
	}

	// Person is a manifest author.
	Person struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	// Exports maps the two module conventions to their entry points.
	Exports struct {
		Import  string `json:"import"`
		Require string `json:"require"`
	}

	// Repository references the package's source repository.
	Repository struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}
)

// NewManifest builds the manifest for a package.
func NewManifest(id Identity, rec answers.Record) Manifest {
	return Manifest{
		Name:        id.FullName,
		Version:     ManifestVersion,
		Description: rec.LongName,
		Keywords:    append([]string(nil), id.Keywords...),
		License:     WaiverLicense,
		Author: Person{
			Name:  rec.AuthorName,
			Email: rec.AuthorEmail,
		},
		Main:   CompiledModuleFile,
		Module: SourceModuleFile,
		Exports: Exports{
			Import:  "./" + SourceModuleFile,
			Require: "./" + CompiledModuleFile,
		},
		Files: []string{CompiledModuleFile, SourceModuleFile, LicenseFile},
		Repository: Repository{
			Type: "git",
			URL:  id.RepositoryURL(),
		},
	}
}

// Marshal renders the manifest as JSON with 4-space indentation and a
// trailing newline.
func (m Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}
