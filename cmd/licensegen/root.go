// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the license-generator command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/license-project/generator/internal/compiler"
	"github.com/license-project/generator/internal/config"
	"github.com/license-project/generator/internal/generator"
	"github.com/license-project/generator/internal/gitrepo"
	"github.com/license-project/generator/internal/interview"
	"github.com/license-project/generator/internal/issue"
	"github.com/license-project/generator/internal/waiver"
	"github.com/license-project/generator/pkg/types"
)

// UsageMessage is printed when the command line does not name exactly one license file.
const UsageMessage = "You must specify a license file name."

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the values bound to the root command flags.
type rootFlags struct {
	answersFile string
	dir         string
	configFile  string
	verbose     bool
	accessible  bool
}

// NewRootCommand builds the license-generator command for app.
func NewRootCommand(app *App) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "license-generator <license-file>",
		Short: "Generate a license package from a license text",
		Long: TitleStyle.Render("license-generator") + SubtitleStyle.Render(" - package a license text as a module") + `

Interviews you about the license, then creates a directory named after the
package containing package.json, index.mjs, index.js and LICENSE, initializes
a git repository there with a single commit and adds the "origin" remote.
Nothing is pushed.

` + SubtitleStyle.Render("Examples:") + `
  license-generator ./MIT.txt                  Interview, then generate ./MIT
  license-generator -a answers.toml ./MIT.txt  Generate without prompting
  license-generator -C ~/src ./BlueOak.txt     Generate under ~/src`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.answersFile, "answers", "a", "", "read answers from a TOML or YAML file instead of prompting")
	cmd.Flags().StringVarP(&flags.dir, "dir", "C", "", "parent directory of the generated package (default is the current directory)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/license-generator/config.cue)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and detailed error guides")
	cmd.Flags().BoolVar(&flags.accessible, "accessible", false, "ask questions line by line instead of using the form")

	return cmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command line and exits the process with its status.
// This is called by main.main().
func Execute() {
	os.Exit(int(run(context.Background(), NewApp(Dependencies{}), os.Args[1:])))
}

// run executes the root command with args and returns the process exit code.
func run(ctx context.Context, app *App, args []string) types.ExitCode {
	root := NewRootCommand(app)
	root.SetArgs(args)

	// fang.WithVersion is used since fang overrides rootCmd.Version.
	if err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return types.ExitFailure
	}
	return types.ExitSuccess
}

func (app *App) run(cmd *cobra.Command, args []string, flags rootFlags) error {
	ctx := cmd.Context()

	if len(args) != 1 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		fmt.Fprintln(app.stderr, UsageMessage)
		return &ExitError{Code: types.ExitFailure}
	}
	cmd.SilenceUsage = true

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		cmd.SilenceErrors = true
		renderError(app.stderr, err, issue.ConfigLoadFailedId, flags.verbose, log.New(app.stderr))
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	verbose := flags.verbose || cfg.UI.Verbose
	logger := newLogger(app, verbose)

	pipeline, err := app.newPipeline(ctx, cfg, flags, logger)
	if err != nil {
		cmd.SilenceErrors = true
		renderError(app.stderr, err, 0, verbose, logger)
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	res, err := pipeline.Run(ctx, args[0])
	if err != nil {
		cmd.SilenceErrors = true
		renderError(app.stderr, err, classifyError(err), verbose, logger)
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	app.printSummary(res)
	return nil
}

func newLogger(app *App, verbose bool) *log.Logger {
	logger := log.NewWithOptions(app.stderr, log.Options{
		Prefix: "license-generator",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// newPipeline builds the pipeline for one run. The waiver text is resolved
// here, once, so the pipeline only ever sees the final value.
func (app *App) newPipeline(ctx context.Context, cfg *config.Config, flags rootFlags, logger *log.Logger) (*generator.Pipeline, error) {
	parent := types.FilesystemPath(flags.dir)
	if parent == "" {
		parent = "."
	}
	if err := parent.Validate(); err != nil {
		return nil, err
	}

	waiverText, err := waiver.Default(cfg.WaiverFile).Text(ctx)
	if err != nil {
		return nil, err
	}

	ids := app.IDs()

	defaults := interview.Defaults{WaiverText: waiverText}
	if ident, err := app.Identity(); err != nil {
		logger.Debug("no git identity defaults", "err", err)
	} else {
		defaults.AuthorName = ident.Name
		defaults.AuthorEmail = ident.Email
	}

	var iv interview.Interviewer
	if flags.answersFile != "" {
		iv = interview.FileInterviewer{Path: flags.answersFile, IDs: ids}
	} else {
		prompt := app.Prompt()
		prompt.Theme = cfg.UI.Theme
		if flags.accessible || cfg.UI.Accessible {
			prompt.Accessible = true
			prompt.Output = app.stderr
		}
		iv = interview.FormInterviewer{IDs: ids, Suggestions: ids.Suggestions(), Config: prompt}
	}

	return &generator.Pipeline{
		Interviewer: iv,
		Compiler:    compiler.New(compiler.Options{}),
		Committer:   &gitrepo.Committer{Clock: app.Clock, Branch: cfg.DefaultBranch},
		IDs:         ids,
		Defaults:    defaults,
		Logger:      logger,
		Namespace:   cfg.Namespace,
		ParentDir:   parent,
	}, nil
}

func (app *App) printSummary(res generator.Result) {
	fmt.Fprintf(app.stdout, "%s Created %s in %s\n",
		SuccessStyle.Render("✓"),
		TitleStyle.Render(res.Identity.FullName),
		PathStyle.Render(res.Dir.String()))
	fmt.Fprintf(app.stdout, "  %s %s\n", SubtitleStyle.Render("commit:"), res.Commit.Commit.String())
	fmt.Fprintf(app.stdout, "  %s %s %s\n", SubtitleStyle.Render("remote:"), gitrepo.RemoteName, PathStyle.Render(res.Commit.RemoteURL))
	fmt.Fprintf(app.stdout, "  %s\n", WarningStyle.Render("Nothing was pushed."))
}
