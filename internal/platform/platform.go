//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package platform provides platform detection for the OpenCL loader.
// It determines the shared-library names to try based on the operating system.
package platform

import (
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// The binding only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// FrameworkPath is the location of the OpenCL framework on macOS.
const FrameworkPath = "/System/Library/Frameworks/OpenCL.framework/OpenCL"

// LibraryNames returns the candidate names for the OpenCL client library,
// most specific first. On Linux the ICD loader is usually installed as
// libOpenCL.so.1 without the unversioned development symlink.
//
// Examples:
//   - Linux:  ["libOpenCL.so.1", "libOpenCL.so"]
//   - macOS:  ["/System/Library/Frameworks/OpenCL.framework/OpenCL"]
func LibraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{FrameworkPath}
	default: // linux, freebsd
		return []string{"libOpenCL.so.1", "libOpenCL.so"}
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
