// SPDX-License-Identifier: MPL-2.0

package licensepkg

import (
	"github.com/license-project/generator/pkg/answers"
)

// DefaultNamespace is the registry scope and hosting owner of generated packages.
const DefaultNamespace = "license-project"

// Identity is the canonical identity of a generated package.
// It names the output directory, the manifest and the git remote.
type Identity struct {
	// Namespace is the scope (without "@") and the hosting owner.
	Namespace string
	// Name is the SPDX id, or "<shortName>-<version>" for unlisted licenses.
	Name string
	// FullName is "@<namespace>/<name>".
	FullName string
	// Keywords are the manifest keywords, in order.
	Keywords []string
}

// Resolve derives the package identity from a validated answer record.
// An empty namespace selects DefaultNamespace.
func Resolve(rec answers.Record, namespace string) Identity {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	name := rec.SPDXID
	if !rec.IsSPDX {
		name = rec.ShortName + "-" + rec.Version
	}

	var spdxTag *string
	if rec.IsSPDX {
		tag := "spdx"
		spdxTag = &tag
	}

	return Identity{
		Namespace: namespace,
		Name:      name,
		FullName:  "@" + namespace + "/" + name,
		Keywords:  nonNil(&namespace, ptr("license"), spdxTag, &name),
	}
}

// RepositoryURL is the browsable repository location recorded in the manifest.
func (id Identity) RepositoryURL() string {
	return "https://github.com/" + id.Namespace + "/" + id.Name
}

// RemoteURL is the URL of the "origin" remote configured on the new repository.
func (id Identity) RemoteURL() string {
	return "git@github.com:" + id.Namespace + "/" + id.Name + ".git"
}

func ptr(s string) *string { return &s }

func nonNil(values ...*string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
