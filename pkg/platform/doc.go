// SPDX-License-Identifier: MPL-2.0

// Package platform holds the runtime.GOOS names the generator branches on
// when locating configuration and home directories.
package platform
