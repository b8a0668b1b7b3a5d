// SPDX-License-Identifier: MPL-2.0

// Package answers defines the validated answer record produced by the
// interview, the per-field validators shared by the interactive form and by
// answer files, and a loader for non-interactive answer files (TOML or YAML).
package answers
