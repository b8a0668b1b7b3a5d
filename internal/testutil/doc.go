// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers that fail the test on setup errors:
// working-directory and environment overrides, directory creation, and a
// controllable clock for commit timestamps.
package testutil
