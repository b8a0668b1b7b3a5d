// SPDX-License-Identifier: MPL-2.0

// Package licensepkg builds license packages: it derives the package identity
// from the interview answers, renders the manifest and the source-form module,
// and materializes the artifact set on disk.
//
// A generated package is a directory named after the package identity:
//
//	<name>/
//	  package.json   manifest, 4-space indent
//	  index.mjs      source-form module (exports name and text)
//	  index.js       compiled-form module (same exports)
//	  LICENSE        verbatim license text
package licensepkg
