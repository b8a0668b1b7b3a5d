// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/license-project/generator/internal/issue"
	"github.com/license-project/generator/internal/testutil"
	"github.com/license-project/generator/internal/tui"
	"github.com/license-project/generator/pkg/platform"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Namespace != "license-project" {
		t.Errorf("Namespace = %q, want license-project", cfg.Namespace)
	}
	if cfg.DefaultBranch != "main" {
		t.Errorf("DefaultBranch = %q, want main", cfg.DefaultBranch)
	}
	if cfg.WaiverFile != "" {
		t.Errorf("WaiverFile = %q, want empty", cfg.WaiverFile)
	}
	if cfg.UI.Theme != tui.ThemeDefault || cfg.UI.Accessible || cfg.UI.Verbose {
		t.Errorf("unexpected UI defaults: %+v", cfg.UI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != platform.Linux {
		t.Skip("XDG lookup applies to Linux")
	}

	xdg := t.TempDir()
	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", xdg)
	defer restore()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if want := filepath.Join(xdg, AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	override := t.TempDir()
	SetConfigDirOverride(override)
	t.Cleanup(Reset)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != override {
		t.Errorf("ConfigDir() = %q, want %q", dir, override)
	}

	Reset()
	if configDirOverride != "" {
		t.Error("Reset() should clear the override")
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	restore := testutil.MustChdir(t, t.TempDir())
	defer restore()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	restore := testutil.MustChdir(t, t.TempDir())
	defer restore()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
namespace: "acme-licenses"
ui: {
	theme:   "dracula"
	verbose: true
}
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if cfg.Namespace != "acme-licenses" {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
	if cfg.UI.Theme != tui.ThemeDracula || !cfg.UI.Verbose {
		t.Errorf("UI = %+v", cfg.UI)
	}
	// Fields left out keep their defaults.
	if cfg.DefaultBranch != "main" {
		t.Errorf("DefaultBranch = %q, want main", cfg.DefaultBranch)
	}
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	restore := testutil.MustChdir(t, wd)
	defer restore()

	writeConfig(t, wd, `default_branch: "trunk"`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if path != "config.cue" {
		t.Errorf("path = %q, want config.cue", path)
	}
	if cfg.DefaultBranch != "trunk" {
		t.Errorf("DefaultBranch = %q, want trunk", cfg.DefaultBranch)
	}
}

func TestLoad_CustomPath_Valid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte(`waiver_file: "/etc/waiver.txt"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WaiverFile != "/etc/waiver.txt" {
		t.Errorf("WaiverFile = %q", cfg.WaiverFile)
	}
}

func TestLoad_CustomPath_NotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
	if len(ae.Suggestions) == 0 {
		t.Error("expected suggestions")
	}
}

func TestLoad_CustomPath_InvalidCUE_ReturnsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax error", "namespace: \"unterminated\n", "custom.cue"},
		{"unknown theme", `ui: theme: "neon"`, "ui.theme"},
		{"bad namespace", `namespace: "Has Spaces"`, "namespace"},
		{"unknown field", `push: true`, "push"},
		{"wrong type", `ui: accessible: "yes"`, "ui.accessible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "custom.cue")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "failed to load configuration") {
				t.Errorf("error should be actionable, got %q", err)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
