//go:build !khr_terminate_context && (darwin || freebsd || linux) && (amd64 || arm64)

package cl

// TerminateContextSupported reports whether the cl_khr_terminate_context
// extension shim was compiled into this build (build tag
// khr_terminate_context).
const TerminateContextSupported = false

// TerminateContext returns ErrInvalidPlatform: the cl_khr_terminate_context
// shim is not compiled into this build. No native call is attempted. Build
// with the khr_terminate_context tag to enable the extension call-through.
func TerminateContext(_ uintptr, _ Context) error {
	return ErrInvalidPlatform
}
