//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package bindings handles loading the OpenCL client library and exposes
// the library handle used to register function bindings with purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/platform"
)

// ErrNotLoaded is returned when OpenCL functions are called before the
// library could be loaded.
var ErrNotLoaded = errors.New("cl: OpenCL library not loaded; call cl.Init() first")

// ErrLibraryNotFound is returned when no OpenCL client library can be found.
var ErrLibraryNotFound = errors.New("cl: OpenCL library not found")

// EnvLibraryPath names the environment variable that overrides the library
// search location. If set, it must point at a directory containing the
// OpenCL client library.
const EnvLibraryPath = "CLPURE_LIBRARY_PATH"

var (
	libOpenCL uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the OpenCL library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Lib returns the handle of the loaded OpenCL library, or 0 if Load failed.
func Lib() uintptr {
	return libOpenCL
}

// Load loads the OpenCL client library. It is safe to call multiple times;
// subsequent calls are no-ops. Returns an error if no library can be found.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libOpenCL, err = loadLibrary()
	if err != nil {
		return fmt.Errorf("loading OpenCL: %w", err)
	}
	return nil
}

// loadLibrary tries the override directory first, then the candidate names
// on their own so the system resolver (ld.so, dyld) can find them.
func loadLibrary() (uintptr, error) {
	if dir := os.Getenv(EnvLibraryPath); dir != "" {
		for _, name := range platform.LibraryNames() {
			lib, err := tryOpen(filepath.Join(dir, filepath.Base(name)))
			if err == nil {
				return lib, nil
			}
		}
		return 0, fmt.Errorf("%w: no client library in %s=%s", ErrLibraryNotFound, EnvLibraryPath, dir)
	}

	for _, name := range platform.LibraryNames() {
		lib, err := tryOpen(name)
		if err == nil {
			return lib, nil
		}
	}
	return 0, ErrLibraryNotFound
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_GLOBAL keeps extension symbols resolvable for ICD vendor libraries.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the OpenCL library file and returns its full
// path. This is useful for diagnostics; it only consults the override
// directory, since the system resolver's search order is not visible here.
func FindLibrary() (string, error) {
	dir := os.Getenv(EnvLibraryPath)
	if dir == "" {
		return "", fmt.Errorf("%w: %s not set", ErrLibraryNotFound, EnvLibraryPath)
	}
	for _, name := range platform.LibraryNames() {
		full := filepath.Join(dir, filepath.Base(name))
		if _, err := os.Stat(full); err == nil {
			return full, nil
		}
	}
	return "", fmt.Errorf("%w: no client library in %s", ErrLibraryNotFound, dir)
}
