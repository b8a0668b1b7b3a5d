// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. Issue holds a Markdown guide per failure kind, rendered
// with glamour when the operator asks for verbose output.
package issue
