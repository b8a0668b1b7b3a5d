// SPDX-License-Identifier: MPL-2.0

// Package compiler converts the source-form module into the compiled form
// consumed by older module loaders (CommonJS, ES2015 syntax).
package compiler
