// SPDX-License-Identifier: MPL-2.0

// Package config handles generator configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/license-generator/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/license-generator/config.cue on
// macOS, %APPDATA%\license-generator\config.cue on Windows), then ./config.cue. An
// explicit path replaces the lookup entirely. Every file is validated against the
// embedded CUE schema (config_schema.cue) before it is merged over the defaults.
package config
