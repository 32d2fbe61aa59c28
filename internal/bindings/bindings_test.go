//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clpure/cl/internal/platform"
)

func TestFindLibrary_RespectsOverrideDir(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Base(platform.LibraryNames()[0])

	fake := filepath.Join(dir, name)
	if err := os.WriteFile(fake, []byte("not a real library"), 0o644); err != nil {
		t.Fatalf("write fake library: %v", err)
	}

	t.Setenv(EnvLibraryPath, dir)

	got, err := FindLibrary()
	if err != nil {
		t.Fatalf("FindLibrary error: %v", err)
	}
	if got != fake {
		t.Fatalf("expected %q, got %q", fake, got)
	}
}

func TestFindLibrary_OverrideDirEmpty(t *testing.T) {
	t.Setenv(EnvLibraryPath, t.TempDir())

	_, err := FindLibrary()
	if err == nil {
		t.Fatal("expected error for empty override directory")
	}
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("expected ErrLibraryNotFound, got %v", err)
	}
}

func TestFindLibrary_Unset(t *testing.T) {
	t.Setenv(EnvLibraryPath, "")

	_, err := FindLibrary()
	if err == nil {
		t.Fatal("expected error when override is not set")
	}
	if !strings.Contains(err.Error(), EnvLibraryPath) {
		t.Errorf("error should mention %s: %v", EnvLibraryPath, err)
	}
}

// Integration test - only meaningful where an OpenCL ICD loader is installed.
func TestLoad_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	err := Load()
	if err != nil {
		t.Logf("Load returned error (expected without an OpenCL runtime): %v", err)
		return
	}
	if !IsLoaded() {
		t.Error("IsLoaded returned false after successful Load")
	}
	if Lib() == 0 {
		t.Error("Lib returned 0 after successful Load")
	}
}
