// SPDX-License-Identifier: MPL-2.0

package gitrepo

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"
)

// Identity is the user.name / user.email pair from git configuration.
type Identity struct {
	Name  string
	Email string
}

// UserIdentity reads user.name and user.email from the caller's global git
// configuration. Missing values are returned empty; a missing config file is
// not an error.
func UserIdentity() (Identity, error) {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to read git config: %w", err)
	}
	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}, nil
}
