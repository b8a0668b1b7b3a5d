// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/license-project/generator/internal/config"
	"github.com/license-project/generator/internal/gitrepo"
	"github.com/license-project/generator/internal/spdx"
	"github.com/license-project/generator/internal/tui"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// App wires the CLI to its collaborators. It is the composition root of
	// the CLI layer; tests build one with NewApp and substitute dependencies.
	App struct {
		Config   ConfigProvider
		Identity func() (gitrepo.Identity, error)
		IDs      func() *spdx.Set
		Clock    gitrepo.Clock
		Prompt   func() tui.Config
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Identity func() (gitrepo.Identity, error)
		IDs      func() *spdx.Set
		Clock    gitrepo.Clock
		Prompt   func() tui.Config
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:   deps.Config,
		Identity: deps.Identity,
		IDs:      deps.IDs,
		Clock:    deps.Clock,
		Prompt:   deps.Prompt,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Identity == nil {
		app.Identity = gitrepo.UserIdentity
	}
	if app.IDs == nil {
		app.IDs = spdx.Canonical
	}
	if app.Clock == nil {
		app.Clock = gitrepo.RealClock{}
	}
	if app.Prompt == nil {
		app.Prompt = tui.DefaultConfig
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}
