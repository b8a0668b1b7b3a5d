// SPDX-License-Identifier: MPL-2.0

// Package waiver supplies the text of the public-domain waiver (CC0 1.0)
// that the generated wrapper code is released under. The operator reads it
// before accepting the waiver during the interview.
//
// The text is resolved once per run: an operator-configured file is tried
// first and the copy bundled into the binary is the fallback.
package waiver
