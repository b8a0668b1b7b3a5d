// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath.
package fspath

import (
	"fmt"
	"path/filepath"

	"github.com/license-project/generator/pkg/types"
)

// JoinStr joins a typed base path with raw segments such as artifact file
// names or a package directory name.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Abs wraps filepath.Abs for FilesystemPath.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// IsSingleElement reports whether name is a plain file or directory name:
// non-empty, not "." or "..", and free of path separators.
func IsSingleElement(name string) bool {
	return name != "" && name != "." && name != ".." && name == filepath.Base(name)
}
