// SPDX-License-Identifier: MPL-2.0

package interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/license-project/generator/internal/tui"
	"github.com/license-project/generator/pkg/answers"
)

// ErrAborted is returned when the operator cancels the interview.
var ErrAborted = errors.New("interview aborted")

type (
	// FormInterviewer asks the questions with a huh form.
	FormInterviewer struct {
		IDs         answers.Membership
		Suggestions []string
		Config      tui.Config
	}

	// formState holds the values bound to the form fields.
	formState struct {
		isSPDX      bool
		spdxID      string
		shortName   string
		longName    string
		version     string
		authorName  string
		authorEmail string
		accepted    bool
	}
)

// Interview implements Interviewer.
func (f FormInterviewer) Interview(ctx context.Context, defaults Defaults) (answers.Record, error) {
	state := newFormState(defaults)
	form := f.newForm(state, defaults.WaiverText)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return answers.Record{}, ErrAborted
		}
		return answers.Record{}, fmt.Errorf("interview failed: %w", err)
	}

	rec := state.record()
	if err := rec.Validate(f.IDs); err != nil {
		return answers.Record{}, err
	}
	return rec, nil
}

func newFormState(defaults Defaults) *formState {
	return &formState{
		isSPDX:      true,
		authorName:  defaults.AuthorName,
		authorEmail: defaults.AuthorEmail,
	}
}

func (s *formState) record() answers.Record {
	rec := answers.Record{
		IsSPDX:          s.isSPDX,
		LongName:        s.longName,
		AuthorName:      s.authorName,
		AuthorEmail:     s.authorEmail,
		LicenseAccepted: s.accepted,
	}
	if s.isSPDX {
		rec.SPDXID = s.spdxID
	} else {
		rec.ShortName = s.shortName
		rec.Version = s.version
	}
	return rec
}

// newForm builds the question groups in their fixed order. Questions that
// do not apply to the SPDX answer are hidden rather than removed.
func (f FormInterviewer) newForm(s *formState, waiverText string) *huh.Form {
	notListed := func() bool { return !s.isSPDX }
	listed := func() bool { return s.isSPDX }

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is this license on the SPDX License List?").
				Affirmative("Yes").
				Negative("No").
				Value(&s.isSPDX),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("SPDX identifier").
				Description("For example MIT or Apache-2.0.").
				Suggestions(f.Suggestions).
				Value(&s.spdxID).
				Validate(answers.ValidateSPDXID(f.IDs)),
		).WithHideFunc(notListed),
		huh.NewGroup(
			huh.NewInput().
				Title("Short name").
				Description("Used in the package name; no whitespace.").
				Value(&s.shortName).
				Validate(answers.ValidateShortName),
		).WithHideFunc(listed),
		huh.NewGroup(
			huh.NewInput().
				Title("Long description").
				Description("The full name of the license.").
				Value(&s.longName).
				Validate(answers.ValidateLongName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("License version").
				Description("May be empty; no whitespace.").
				Value(&s.version).
				Validate(answers.ValidateVersion),
		).WithHideFunc(listed),
		huh.NewGroup(
			huh.NewInput().
				Title("Author name").
				Value(&s.authorName).
				Validate(answers.ValidateAuthorName),
			huh.NewInput().
				Title("Author email").
				Value(&s.authorEmail).
				Validate(answers.ValidateAuthorEmail),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("CC0 1.0 Universal").
				Description(waiverText),
			huh.NewConfirm().
				Title("Release the generated code under CC0 1.0?").
				Description("The license text keeps its own terms; only the wrapper code is dedicated to the public domain.").
				Affirmative("Accept").
				Negative("Decline").
				Value(&s.accepted).
				Validate(answers.ValidateAcceptance),
		),
	}

	form := huh.NewForm(groups...).
		WithTheme(tui.HuhTheme(f.Config.Theme)).
		WithAccessible(f.Config.Accessible)
	if f.Config.Input != nil {
		form = form.WithInput(f.Config.Input)
	}
	if f.Config.Output != nil {
		form = form.WithOutput(f.Config.Output)
	}
	return form
}
