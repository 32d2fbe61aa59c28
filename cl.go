//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package cl provides bindings to OpenCL 1.2 without CGO using purego.
//
// The package centers on the callback boundary: OpenCL registration calls
// accept C function pointers plus an opaque user-data word, and may invoke
// them later from driver-owned threads. Go functions cannot be handed to
// the driver directly, so each callback kind has one fixed native-callable
// trampoline (created with purego.NewCallback) that resolves the user-data
// word back to the registered Go callback through an internal handle table.
//
// Callers never see that machinery: registration functions such as
// CreateContext, SetEventCallback, or BuildProgram take plain Go funcs.
// Passing a nil func installs no trampoline at all - the driver receives a
// NULL callback and NULL user data, matching the native null-callback
// semantics.
package cl

import (
	"github.com/clpure/cl/internal/bindings"
)

// ErrNotLoaded is returned when OpenCL functions are called but the client
// library could not be loaded.
var ErrNotLoaded = bindings.ErrNotLoaded

// ErrLibraryNotFound is returned when no OpenCL client library can be found.
var ErrLibraryNotFound = bindings.ErrLibraryNotFound

// Init loads the OpenCL client library. This happens automatically when
// the package is imported, but calling Init explicitly surfaces the load
// error. It is safe to call multiple times.
func Init() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	registerBindings()
	return nil
}

// IsLoaded returns true if the OpenCL library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}
