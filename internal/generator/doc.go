// SPDX-License-Identifier: MPL-2.0

// Package generator runs the license package pipeline: read the license
// file, interview the operator, derive the package identity, build and
// compile the module, write the package directory and record it as the
// initial commit of a new repository with an "origin" remote.
//
// Stages run strictly in order. The first failure stops the run and is
// returned as a *StageError; nothing already written is rolled back.
package generator
