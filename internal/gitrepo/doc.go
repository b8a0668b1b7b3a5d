// SPDX-License-Identifier: MPL-2.0

// Package gitrepo records a freshly generated package as the root commit of a
// new git repository and configures its "origin" remote. It also reads the
// caller's git identity, which seeds the author defaults of the interview.
//
// All repository operations go through go-git; no git binary is required and
// no network access is performed.
package gitrepo
