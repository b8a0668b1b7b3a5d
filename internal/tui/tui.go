// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for prompts.
type Theme string

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// ErrInvalidTheme is returned by Theme.Validate for unknown theme names.
var ErrInvalidTheme = errors.New("invalid theme")

// Config holds common configuration for prompts.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible replaces the full-screen form with line-by-line prompts.
	Accessible bool
	// Input is where answers are read from.
	Input io.Reader
	// Output is where prompts are written.
	Output io.Writer
}

// Validate returns an error for unknown theme names. The empty theme is valid.
func (t Theme) Validate() error {
	switch t {
	case "", ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return nil
	default:
		return fmt.Errorf("%w %q (want default, charm, dracula, catppuccin or base16)", ErrInvalidTheme, t)
	}
}

// DefaultConfig returns the default prompt configuration.
// Accessible mode is enabled when stdin is not a terminal or when the
// ACCESSIBLE environment variable is set; in that case prompts go to stderr
// so they are not captured by command substitution.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""

	var output io.Writer = os.Stdout
	if accessible {
		output = os.Stderr
	}

	return Config{
		Theme:      ThemeDefault,
		Accessible: accessible,
		Input:      os.Stdin,
		Output:     output,
	}
}

// HuhTheme converts a Theme to a huh.Theme.
func HuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}

// isInputTerminal returns true if stdin is connected to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
