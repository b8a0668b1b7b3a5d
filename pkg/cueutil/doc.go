// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation utilities.
//
// DecodeMap runs the schema flow used by the configuration loader:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode to a generic map
//
// Errors carry the file name and the JSON path of the offending value:
//
//	config.cue: ui.theme: 2 errors in empty disjunction
package cueutil
