// SPDX-License-Identifier: MPL-2.0

package interview

import (
	"context"
	"fmt"

	"github.com/license-project/generator/pkg/answers"
)

type (
	// Interviewer produces a validated answer record.
	Interviewer interface {
		Interview(ctx context.Context, defaults Defaults) (answers.Record, error)
	}

	// Defaults pre-fill answers the operator can accept as-is.
	Defaults struct {
		AuthorName  string
		AuthorEmail string
		// WaiverText is shown before the acceptance question.
		WaiverText string
	}

	// FileInterviewer answers from a TOML or YAML file without prompting.
	FileInterviewer struct {
		Path string
		IDs  answers.Membership
	}
)

// Interview implements Interviewer. Author fields missing from the file are
// taken from defaults before validation.
func (f FileInterviewer) Interview(ctx context.Context, defaults Defaults) (answers.Record, error) {
	if err := ctx.Err(); err != nil {
		return answers.Record{}, err
	}

	rec, err := answers.Read(f.Path)
	if err != nil {
		return answers.Record{}, err
	}
	if rec.AuthorName == "" {
		rec.AuthorName = defaults.AuthorName
	}
	if rec.AuthorEmail == "" {
		rec.AuthorEmail = defaults.AuthorEmail
	}

	if err := rec.Validate(f.IDs); err != nil {
		return answers.Record{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	return rec, nil
}
