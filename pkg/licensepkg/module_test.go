// SPDX-License-Identifier: MPL-2.0

package licensepkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/license-project/generator/pkg/answers"
)

func TestSynthesizeModule_Layout(t *testing.T) {
	t.Parallel()

	id := Resolve(answers.Record{IsSPDX: true, SPDXID: "MIT"}, "")
	src, err := SynthesizeModule(id, "MIT License\n...")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src, "/*!\n * @license-project/MIT\n"), src)
	assert.Contains(t, src, WaiverURL)
	assert.Contains(t, src, "public domain worldwide")
	assert.Contains(t, src, `export const name = "MIT";`)
	assert.Contains(t, src, `export const text = "MIT License\n...";`)
	assert.Less(t, strings.Index(src, "*/"), strings.Index(src, "export const name"))
}

func TestSynthesizeModule_RoundTrip(t *testing.T) {
	t.Parallel()

	id := Resolve(answers.Record{ShortName: "Test", Version: "1"}, "")

	texts := map[string]string{
		"empty":           "",
		"plain":           "Permission is hereby granted, free of charge.",
		"quotes":          `He said "hello" and 'bye'`,
		"backslashes":     `C:\path\to\file \n is not a newline \\`,
		"newlines":        "line one\nline two\r\nline three\n\n",
		"tabs and nul":    "a\tb\x00c\x1f",
		"non-ascii":       "Lizenz für Ärzte · 許可証 · лицензия 🙂",
		"line separators": "para\u2028graph\u2029end",
		"html":            "<script>alert('x')</script> & more",
		"comment closer":  "end of comment */ export const name = 'evil';",
		"bom":             "\ufeffLicense",
	}

	for name, text := range texts {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src, err := SynthesizeModule(id, text)
			require.NoError(t, err)

			got, err := ExtractText(src)
			require.NoError(t, err)
			assert.Equal(t, text, got)

			gotName, err := ExtractBinding(src, "name")
			require.NoError(t, err)
			assert.Equal(t, "Test-1", gotName)

			assert.NotContains(t, src, "\u2028", "raw line separators break JavaScript string literals")
		})
	}
}

func TestSynthesizeModule_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := SynthesizeModule(Resolve(answers.Record{IsSPDX: true, SPDXID: "MIT"}, ""), "bad \xff byte")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestExtractBinding_Missing(t *testing.T) {
	t.Parallel()

	_, err := ExtractBinding("export const name = \"MIT\";\n", "text")
	assert.ErrorIs(t, err, ErrBindingNotFound)

	_, err = ExtractBinding("export const text = not-json;\n", "text")
	assert.Error(t, err)
}
