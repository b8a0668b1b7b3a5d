// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/license-project/generator/internal/config"
	"github.com/license-project/generator/internal/gitrepo"
	"github.com/license-project/generator/internal/spdx"
	"github.com/license-project/generator/internal/testutil"
	"github.com/license-project/generator/pkg/types"
)

type staticConfig struct {
	cfg *config.Config
	err error
}

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	return s.cfg, s.err
}

const mitAnswers = `spdx = true
spdx_id = "MIT"
long_name = "The MIT License"
accept_waiver = true
`

func testApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticConfig{cfg: cfg},
		Identity: func() (gitrepo.Identity, error) {
			return gitrepo.Identity{Name: "A", Email: "a@x.com"}, nil
		},
		IDs:    func() *spdx.Set { return spdx.NewSet("MIT", "Apache-2.0") },
		Clock:  testutil.NewFakeClock(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return app, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: mutates package-level Version/Commit/BuildDate vars.
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "v1.2.3", "abc1234", "2025-06-15T10:00:00Z"
	assert.Equal(t, "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)", getVersionString())

	Version = "dev"
	assert.Equal(t, "dev (built from source)", getVersionString())
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.txt", "b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parent := t.TempDir()
			app, stdout, stderr := testApp(t, nil)
			args := append([]string{"--dir", parent}, tt.args...)

			code := run(context.Background(), app, args)

			assert.Equal(t, types.ExitFailure, code)
			assert.Contains(t, stderr.String(), UsageMessage)
			assert.Empty(t, stdout.String())
			entries, err := os.ReadDir(parent)
			require.NoError(t, err)
			assert.Empty(t, entries, "invalid usage must not create anything")
		})
	}
}

func TestRun_GeneratesPackage(t *testing.T) {
	t.Parallel()

	work := t.TempDir()
	answersPath := writeFile(t, work, "answers.toml", mitAnswers)
	licensePath := writeFile(t, work, "MIT.txt", "MIT License\n\nCopyright (c) <year> <copyright holders>\n")

	app, stdout, stderr := testApp(t, nil)
	code := run(context.Background(), app, []string{"--answers", answersPath, "--dir", work, licensePath})
	require.Equal(t, types.ExitSuccess, code, "stderr: %s", stderr.String())

	assert.Contains(t, stdout.String(), "@license-project/MIT")
	assert.Contains(t, stdout.String(), "git@github.com:license-project/MIT.git")

	data, err := os.ReadFile(filepath.Join(work, "MIT", "package.json"))
	require.NoError(t, err)
	var manifest struct {
		Name   string `json:"name"`
		Author struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"author"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "@license-project/MIT", manifest.Name)
	// Author fields come from the git identity defaults.
	assert.Equal(t, "A", manifest.Author.Name)
	assert.Equal(t, "a@x.com", manifest.Author.Email)
}

func TestRun_ConfigApplied(t *testing.T) {
	t.Parallel()

	work := t.TempDir()
	answersPath := writeFile(t, work, "answers.toml", mitAnswers)
	licensePath := writeFile(t, work, "MIT.txt", "MIT License\n")

	cfg := config.DefaultConfig()
	cfg.Namespace = "acme"
	cfg.DefaultBranch = "trunk"
	app, stdout, _ := testApp(t, cfg)

	code := run(context.Background(), app, []string{"-a", answersPath, "-C", work, licensePath})
	require.Equal(t, types.ExitSuccess, code)
	assert.Contains(t, stdout.String(), "@acme/MIT")

	head, err := os.ReadFile(filepath.Join(work, "MIT", ".git", "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/trunk\n", string(head))
}

func TestNewPipeline_ResolvesWaiver(t *testing.T) {
	t.Parallel()

	custom := writeFile(t, t.TempDir(), "waiver.txt", "Custom waiver text.\n")
	tests := []struct {
		name       string
		waiverFile string
		want       string
	}{
		{name: "configured file", waiverFile: custom, want: "Custom waiver text.\n"},
		{name: "bundled fallback", waiverFile: filepath.Join(t.TempDir(), "missing.txt")},
		{name: "unset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.WaiverFile = tt.waiverFile
			app, _, _ := testApp(t, cfg)

			p, err := app.newPipeline(context.Background(), cfg, rootFlags{dir: t.TempDir()}, newLogger(app, false))
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, p.Defaults.WaiverText)
			} else {
				assert.Contains(t, p.Defaults.WaiverText, "CC0")
			}
			assert.Equal(t, "A", p.Defaults.AuthorName)
		})
	}
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	t.Run("config error", func(t *testing.T) {
		t.Parallel()

		app, _, stderr := testApp(t, nil)
		app.Config = staticConfig{err: errors.New("bad config")}

		code := run(context.Background(), app, []string{"LICENSE"})
		assert.Equal(t, types.ExitFailure, code)
		assert.Contains(t, stderr.String(), "bad config")
	})

	t.Run("missing license file", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		answersPath := writeFile(t, work, "answers.toml", mitAnswers)
		app, _, stderr := testApp(t, nil)

		code := run(context.Background(), app, []string{"-a", answersPath, "-C", work, filepath.Join(work, "missing.txt")})
		assert.Equal(t, types.ExitFailure, code)
		assert.Contains(t, stderr.String(), "read license")
		assert.NoDirExists(t, filepath.Join(work, "MIT"))
	})

	t.Run("empty license file", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		answersPath := writeFile(t, work, "answers.toml", mitAnswers)
		licensePath := writeFile(t, work, "empty.txt", "")
		app, _, stderr := testApp(t, nil)

		code := run(context.Background(), app, []string{"-a", answersPath, "-C", work, licensePath})
		assert.Equal(t, types.ExitFailure, code)
		assert.Contains(t, stderr.String(), "license file is empty")
		assert.NoDirExists(t, filepath.Join(work, "MIT"))
	})

	t.Run("second run", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		answersPath := writeFile(t, work, "answers.toml", mitAnswers)
		licensePath := writeFile(t, work, "MIT.txt", "MIT License\n")
		app, _, stderr := testApp(t, nil)

		require.Equal(t, types.ExitSuccess, run(context.Background(), app, []string{"-a", answersPath, "-C", work, licensePath}))
		code := run(context.Background(), app, []string{"-a", answersPath, "-C", work, licensePath})
		assert.Equal(t, types.ExitFailure, code)
		assert.Contains(t, stderr.String(), "already exists")
	})

	t.Run("verbose renders guide", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		answersPath := writeFile(t, work, "answers.toml", `spdx = true
spdx_id = "mit"
long_name = "The MIT License"
accept_waiver = true
`)
		licensePath := writeFile(t, work, "MIT.txt", "MIT License\n")
		app, _, stderr := testApp(t, nil)

		code := run(context.Background(), app, []string{"-v", "-a", answersPath, "-C", work, licensePath})
		assert.Equal(t, types.ExitFailure, code)
		assert.Contains(t, stderr.String(), "spdx_id")
		assert.Contains(t, stderr.String(), "Invalid answers")
	})
}
