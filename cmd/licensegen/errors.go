// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"golang.org/x/term"

	"github.com/license-project/generator/internal/compiler"
	"github.com/license-project/generator/internal/generator"
	"github.com/license-project/generator/internal/gitrepo"
	"github.com/license-project/generator/internal/issue"
	"github.com/license-project/generator/pkg/answers"
	"github.com/license-project/generator/pkg/licensepkg"
)

// classifyError maps a pipeline failure to an issue catalog ID. Zero means
// no guide applies.
func classifyError(err error) issue.Id {
	var stageErr *generator.StageError
	if errors.As(err, &stageErr) && stageErr.Stage == generator.StageReadLicense {
		return issue.LicenseFileNotFoundId
	}

	var fieldErr *answers.FieldError
	var compileErr *compiler.CompileError
	var stepErr *gitrepo.StepError

	switch {
	case errors.Is(err, licensepkg.ErrDirectoryExists):
		return issue.DirectoryExistsId
	case errors.Is(err, licensepkg.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return issue.PermissionDeniedId
	case errors.As(err, &fieldErr), errors.Is(err, answers.ErrWaiverNotAccepted):
		return issue.InvalidAnswersId
	case errors.As(err, &compileErr):
		return issue.CompileFailedId
	case errors.Is(err, git.ErrRemoteExists):
		return issue.RemoteExistsId
	case errors.As(err, &stepErr):
		return issue.GitFailedId
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their Format method; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderError prints err to stderr, followed by the matching issue guide
// when verbose is set.
func renderError(stderr io.Writer, err error, issueID issue.Id, verbose bool, logger *log.Logger) {
	fmt.Fprintf(stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if !verbose || issueID == 0 {
		return
	}
	if entry := issue.Get(issueID); entry != nil {
		rendered, renderErr := entry.Render(guideStyle(stderr))
		if renderErr != nil {
			logger.Warn("failed to render issue guide", "issueID", issueID, "err", renderErr)
			return
		}
		fmt.Fprint(stderr, rendered)
	}
}

// guideStyle picks the glamour style for w: "dark" on terminals, plain
// text otherwise.
func guideStyle(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "dark"
	}
	return "notty"
}
