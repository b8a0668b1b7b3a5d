// SPDX-License-Identifier: MPL-2.0

package waiver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed cc0.txt
var bundledCC0 string

// ErrNoText is returned when no provider in a chain produced the waiver text.
var ErrNoText = errors.New("waiver text unavailable")

type (
	// Provider returns the waiver text.
	Provider interface {
		Text(ctx context.Context) (string, error)
	}

	// FileProvider reads the waiver text from a file on every call.
	FileProvider struct {
		Path string
	}

	// EmbeddedProvider returns the CC0 text bundled into the binary.
	EmbeddedProvider struct{}

	// Chain returns the text of the first provider that succeeds.
	Chain []Provider

	onceProvider struct {
		once sync.Once
		p    Provider
		text string
		err  error
	}
)

// Text implements Provider.
func (p FileProvider) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Path == "" {
		return "", fmt.Errorf("%w: no waiver file configured", ErrNoText)
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read waiver file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoText, p.Path)
	}
	return string(data), nil
}

// Text implements Provider.
func (EmbeddedProvider) Text(context.Context) (string, error) {
	return bundledCC0, nil
}

// Text implements Provider. Errors of skipped providers are joined into the
// returned error when every provider fails.
func (c Chain) Text(ctx context.Context) (string, error) {
	errs := []error{ErrNoText}
	for _, p := range c {
		text, err := p.Text(ctx)
		if err == nil {
			return text, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

// Default returns the provider used by the generator: the file at path when
// one is configured and readable, otherwise the bundled CC0 text. The result
// is resolved once.
func Default(path string) Provider {
	if path == "" {
		return Once(EmbeddedProvider{})
	}
	return Once(Chain{FileProvider{Path: path}, EmbeddedProvider{}})
}

// Once wraps p so that it is consulted at most once. The first result,
// text or error, is returned to every later caller.
func Once(p Provider) Provider {
	return &onceProvider{p: p}
}

// Text implements Provider.
func (o *onceProvider) Text(ctx context.Context) (string, error) {
	o.once.Do(func() {
		o.text, o.err = o.p.Text(ctx)
	})
	return o.text, o.err
}
