// SPDX-License-Identifier: MPL-2.0

package licensepkg

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// WaiverURL is the public-domain dedication the generated code is released under.
const WaiverURL = "https://creativecommons.org/publicdomain/zero/1.0/"

var (
	// ErrInvalidEncoding is returned for license text that is not valid UTF-8.
	// Such text cannot be carried in a string literal without loss.
	ErrInvalidEncoding = errors.New("license text is not valid UTF-8")
	// ErrBindingNotFound is returned when a module has no such export.
	ErrBindingNotFound = errors.New("binding not found")
)

const moduleHeader = `/*!
 * %s
 *
 * To the extent possible under law, the author(s) have dedicated all
 * copyright and related and neighboring rights to this software to the
 * public domain worldwide. This software is distributed without any
 * warranty.
 *
 * The license text exported by this module is covered by its own terms;
 * this dedication applies only to the code that wraps it.
 *
 * You should have received a copy of the CC0 Public Domain Dedication along
 * with this software. If not, see <%s>.
 */
`

// SynthesizeModule renders the source-form module for a package. The module
// exports two string constants: name (the package name) and text (the
// license text, escaped so that decoding it yields text byte-for-byte).
func SynthesizeModule(id Identity, text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidEncoding
	}

	quotedName, err := quote(id.Name)
	if err != nil {
		return "", err
	}
	quotedText, err := quote(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, moduleHeader, id.FullName, WaiverURL)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export const name = %s;\n", quotedName)
	fmt.Fprintf(&b, "export const text = %s;\n", quotedText)
	return b.String(), nil
}

// ExtractBinding decodes the string value of `export const <binding> = ...;`
// from a source-form module.
func ExtractBinding(module, binding string) (string, error) {
	prefix := "export const " + binding + " = "
	sc := bufio.NewScanner(strings.NewReader(module))
	sc.Buffer(make([]byte, 0, 64*1024), len(module)+1)
	for sc.Scan() {
		line := sc.Text()
		literal, ok := strings.CutPrefix(line, prefix)
		if !ok {
			continue
		}
		literal = strings.TrimSuffix(literal, ";")
		var value string
		if err := json.Unmarshal([]byte(literal), &value); err != nil {
			return "", fmt.Errorf("failed to decode binding %q: %w", binding, err)
		}
		return value, nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: %s", ErrBindingNotFound, binding)
}

// ExtractText is ExtractBinding(module, "text").
func ExtractText(module string) (string, error) {
	return ExtractBinding(module, "text")
}

// quote renders s as a JSON string literal, which is also a valid
// JavaScript string literal since U+2028 and U+2029 are escaped.
func quote(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("failed to quote string: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
