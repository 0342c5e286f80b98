package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/cratefind/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the CLI with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	path := writeManifest(t, `
[dependencies]
serde-json = "1.0"

[build-dependencies]
cc = "1.0"
`)

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantCode errs.Code
		contains []string
	}{
		{
			name:     "plain dependency",
			args:     []string{"find", "serde-json", "-m", path},
			contains: []string{"serde_json", "1.0"},
		},
		{
			name:     "first of several candidates",
			args:     []string{"find", "nope", "serde-json", "-m", path},
			contains: []string{"serde_json"},
		},
		{
			name:     "build table selector",
			args:     []string{"find", "cc", "-m", path, "--tables", "build"},
			contains: []string{"cc", "1.0"},
		},
		{
			name:     "build dep hidden from default selector",
			args:     []string{"find", "cc", "-m", path},
			wantErr:  true,
			wantCode: errs.ErrCodeCrateNotFound,
		},
		{
			name:     "unknown crate",
			args:     []string{"find", "nonexistent", "-m", path},
			wantErr:  true,
			wantCode: errs.ErrCodeCrateNotFound,
		},
		{
			name:     "bad selector",
			args:     []string{"find", "cc", "-m", path, "--tables", "bogus"},
			wantErr:  true,
			wantCode: errs.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("command succeeded, want error")
				}
				if tt.wantCode != "" && !errs.Is(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", errs.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestFindCommandRenamed(t *testing.T) {
	path := writeManifest(t, `
[dependencies]
foo-renamed = { package = "foo", version = "0.1" }
`)

	out, err := runCommand(t, "find", "foo", "-m", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	for _, want := range []string{"foo_renamed", "foo-renamed", "0.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootPackageCommand(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "my-crate"
version = "0.1.0"
`)

	out, err := runCommand(t, "root", "-m", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, want := range []string{"my_crate", "0.1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootPackageCommandInvalid(t *testing.T) {
	path := writeManifest(t, `
[dependencies]
foo = "0.1"
`)

	_, err := runCommand(t, "root", "-m", path)
	if err == nil {
		t.Fatal("command succeeded on a manifest without [package]")
	}
	if !errs.Is(err, errs.ErrCodeInvalidManifest) {
		t.Errorf("error code = %v, want INVALID_MANIFEST", errs.GetCode(err))
	}
}

func TestFindCommandLogsThroughContext(t *testing.T) {
	path := writeManifest(t, `
[dependencies]
foo = "0.1"
`)

	// The command retrieves its logger from the command context, where
	// RootCommand's PersistentPreRun attaches it.
	var logBuf bytes.Buffer
	c := New(&logBuf, log.DebugLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"find", "foo", "-m", path})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(logBuf.String(), "searching") {
		t.Errorf("debug log missing search trace:\n%s", logBuf.String())
	}
}

func TestFindCommandEnvFallback(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "Cargo.toml")
	if err := os.WriteFile(manifest, []byte("[dependencies]\nfoo = \"0.1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CARGO_MANIFEST_DIR", dir)

	out, err := runCommand(t, "find", "foo")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "foo") {
		t.Errorf("output missing %q:\n%s", "foo", out)
	}
}
