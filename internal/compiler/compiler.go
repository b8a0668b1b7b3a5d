// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// ErrCompile is the sentinel error wrapped by CompileError.
var ErrCompile = errors.New("module compilation failed")

type (
	// Compiler turns a source-form module into its compiled form.
	Compiler interface {
		Compile(ctx context.Context, source string) (string, error)
	}

	// Options configures the esbuild-backed compiler.
	Options struct {
		// Sourcefile is the name used in diagnostics and helper identifiers.
		Sourcefile string
		// Target is the language level of the output. Defaults to ES2015.
		Target api.Target
	}

	// CompileError carries the diagnostics reported by the transform.
	CompileError struct {
		Messages []string
	}

	esbuildCompiler struct {
		opts Options
	}
)

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:\n  %s", ErrCompile, strings.Join(e.Messages, "\n  "))
}

// Unwrap returns ErrCompile for errors.Is() compatibility.
func (e *CompileError) Unwrap() error { return ErrCompile }

// New returns a Compiler producing CommonJS modules.
func New(opts Options) Compiler {
	if opts.Sourcefile == "" {
		opts.Sourcefile = "index.mjs"
	}
	if opts.Target == 0 {
		opts.Target = api.ES2015
	}
	return &esbuildCompiler{opts: opts}
}

// Compile transforms source into a CommonJS module exporting the same bindings.
// Legal comments (the waiver header) are kept in place.
func (c *esbuildCompiler) Compile(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("compile canceled: %w", err)
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:        api.LoaderJS,
		Format:        api.FormatCommonJS,
		Target:        c.opts.Target,
		Platform:      api.PlatformNeutral,
		Charset:       api.CharsetUTF8,
		LegalComments: api.LegalCommentsInline,
		Sourcefile:    c.opts.Sourcefile,
	})

	if len(result.Errors) > 0 {
		return "", &CompileError{Messages: formatMessages(result.Errors)}
	}
	if len(result.Code) == 0 {
		return "", &CompileError{Messages: []string{"transform produced no output"}}
	}

	return string(result.Code), nil
}

func formatMessages(msgs []api.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			out = append(out, fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		out = append(out, m.Text)
	}
	return out
}
