// SPDX-License-Identifier: MPL-2.0

// Package spdx exposes the canonical SPDX license identifier list as a
// read-only lookup set. The list is compiled into the binary by go-spdx, so
// lookups never touch the network or the filesystem.
package spdx
