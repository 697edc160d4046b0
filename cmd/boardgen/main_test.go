package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minicodemonkey/boardgen/internal/config"
	"github.com/minicodemonkey/boardgen/internal/paths"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := paths.ConfigPath(dir)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfgPath := paths.ConfigPath(t.TempDir())

	if code := run([]string{"-c", cfgPath, "render"}, &stdout, &stderr); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), `Unknown command "render"`) {
		t.Errorf("Expected unknown command message, got:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Usage: boardgen") {
		t.Errorf("Expected usage text, got:\n%s", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--bogus"}, &stdout, &stderr); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr.String(), "init       write a default boardgen.yaml") {
		t.Errorf("Expected usage to list init, got:\n%s", stderr.String())
	}
}

func TestRunOutputFromConfig(t *testing.T) {
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "from-config")
	cfgPath := writeConfig(t, dir, fmt.Sprintf("outputDir: %q\n", fromConfig))
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "sprites"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(paths.ImagePath(fromConfig, "tiles/tile_start.png")); err != nil {
		t.Errorf("Expected sprites under the configured output dir: %v", err)
	}
	if !strings.Contains(stdout.String(), "Total: 20 files") {
		t.Errorf("Expected summary on stdout, got:\n%s", stdout.String())
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "from-config")
	fromFlag := filepath.Join(dir, "from-flag")
	cfgPath := writeConfig(t, dir, fmt.Sprintf("outputDir: %q\nquiet: true\n", fromConfig))

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfgPath, "-o", fromFlag, "sprites"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(paths.ImagePath(fromFlag, "ui/dice_6.png")); err != nil {
		t.Errorf("Expected sprites under the flag output dir: %v", err)
	}
	if _, err := os.Stat(fromConfig); !os.IsNotExist(err) {
		t.Errorf("Expected configured output dir to be unused, got %v", err)
	}
	if strings.Contains(stderr.String(), "Created") {
		t.Errorf("Expected quiet config to suppress info logs, got:\n%s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-c", cfgPath, "-o", fromFlag, "--quiet=false", "sprites"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "Created") {
		t.Errorf("Expected --quiet=false to restore info logs, got:\n%s", stderr.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "outputDir: [unterminated\n")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "-o", filepath.Join(dir, "out"), "audio"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Error loading config") {
		t.Errorf("Expected config error message, got:\n%s", stderr.String())
	}
}

func TestRunInitCommand(t *testing.T) {
	cfgPath := paths.ConfigPath(t.TempDir())
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "-o", "build/game", "init"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "build/game" {
		t.Errorf("Expected output dir build/game, got %q", cfg.OutputDir)
	}

	stderr.Reset()
	if code := run([]string{"-c", cfgPath, "init"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1 when the config exists, got %d", code)
	}
	if !strings.Contains(stderr.String(), "config already exists") {
		t.Errorf("Expected already exists error, got:\n%s", stderr.String())
	}
}

func TestRunManifestCommand(t *testing.T) {
	cfgPath := paths.ConfigPath(t.TempDir())
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-c", cfgPath, "manifest"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "sampleRate: 44100") {
		t.Errorf("Expected manifest YAML on stdout, got:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), "\x1b[") {
		t.Error("Expected no escape codes when stdout is not a terminal")
	}
}
