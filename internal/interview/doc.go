// SPDX-License-Identifier: MPL-2.0

// Package interview collects the answers that describe a license package.
//
// FormInterviewer asks the operator interactively; FileInterviewer reads a
// prepared answers file. Both return a record that already satisfies
// answers.Record.Validate.
package interview
