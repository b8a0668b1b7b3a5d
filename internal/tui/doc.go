// SPDX-License-Identifier: MPL-2.0

// Package tui holds the shared presentation settings for interactive prompts:
// the huh theme, accessible mode, and where prompts are written.
package tui
