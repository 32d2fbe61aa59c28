//go:build khr_terminate_context && (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"github.com/ebitengine/purego"
)

// TerminateContextSupported reports whether the cl_khr_terminate_context
// extension shim was compiled into this build (build tag
// khr_terminate_context).
const TerminateContextSupported = true

// TerminateContext invokes the clTerminateContextKHR extension function.
// fn is the raw function pointer resolved by the caller via
// ExtensionFunctionAddressForPlatform("clTerminateContextKHR"); its result
// is returned unchanged.
//
// See also: https://registry.khronos.org/OpenCL/specs/3.0-unified/html/OpenCL_Ext.html#cl_khr_terminate_context
func TerminateContext(fn uintptr, context Context) error {
	ret, _, _ := purego.SyscallN(fn, uintptr(context))
	if status := int32(ret); status != success {
		return StatusError(status)
	}
	return nil
}
