// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/license-project/generator/internal/tui"
	"github.com/license-project/generator/pkg/licensepkg"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidNamespace is returned for an empty or whitespace-containing namespace.
	ErrInvalidNamespace = errors.New("invalid namespace")
	// ErrInvalidBranch is returned for an empty or whitespace-containing branch name.
	ErrInvalidBranch = errors.New("invalid default branch")
)

type (
	// Config holds the generator configuration.
	Config struct {
		// Namespace is the GitHub organization and npm scope of generated packages.
		Namespace string `json:"namespace" mapstructure:"namespace"`
		// DefaultBranch is the branch the initial commit lands on.
		DefaultBranch string `json:"default_branch" mapstructure:"default_branch"`
		// WaiverFile overrides the bundled waiver text when set.
		WaiverFile string `json:"waiver_file" mapstructure:"waiver_file"`
		// UI configures the interview.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the interview.
	UIConfig struct {
		Theme      tui.Theme `json:"theme" mapstructure:"theme"`
		Accessible bool      `json:"accessible" mapstructure:"accessible"`
		// Verbose enables debug logging and rendered issue guides.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// InvalidConfigError collects field-level validation errors.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Namespace:     licensepkg.DefaultNamespace,
		DefaultBranch: "main",
		UI: UIConfig{
			Theme: tui.ThemeDefault,
		},
	}
}

// Validate checks constraints the loader cannot leave to CUE, such as values
// set through viper defaults or by callers building a Config by hand.
func (c *Config) Validate() error {
	var errs []error
	if c.Namespace == "" || strings.ContainsFunc(c.Namespace, isSpaceOrSlash) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidNamespace, c.Namespace))
	}
	if c.DefaultBranch == "" || strings.ContainsFunc(c.DefaultBranch, isSpaceOrSlash) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBranch, c.DefaultBranch))
	}
	if err := c.UI.Theme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

func isSpaceOrSlash(r rune) bool {
	return r == '/' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
