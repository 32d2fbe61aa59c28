//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"
)

// PlatformID references one of the available OpenCL platforms of the system.
// It allows applications to query OpenCL devices, device configuration
// information, and to create OpenCL contexts using one or more devices.
// Retrieve a list of available platforms with the function PlatformIDs().
type PlatformID uintptr

// String provides a readable presentation of the platform identifier.
// It is based on the numerical value of the underlying pointer.
func (id PlatformID) String() string {
	return fmt.Sprintf("0x%X", uintptr(id))
}

// PlatformIDs returns the list of available platforms on the system.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetPlatformIDs.html
func PlatformIDs() ([]PlatformID, error) {
	if clGetPlatformIDs == nil {
		return nil, ErrNotLoaded
	}
	count := uint32(0)
	status := clGetPlatformIDs(0, nil, &count)
	if status != success {
		return nil, StatusError(status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]PlatformID, count)
	status = clGetPlatformIDs(count, (*uintptr)(unsafe.Pointer(&ids[0])), &count)
	if status != success {
		return nil, StatusError(status)
	}
	return ids[:count], nil
}

// PlatformInfoName identifies properties of a platform, which can be
// queried with PlatformInfo().
type PlatformInfoName uint32

const (
	// PlatformProfileInfo refers to the profile name supported by the
	// implementation: "FULL_PROFILE" or "EMBEDDED_PROFILE".
	//
	// Returned type: string
	PlatformProfileInfo PlatformInfoName = 0x0900
	// PlatformVersionInfo refers to the OpenCL version supported by the
	// implementation.
	//
	// Returned type: string
	PlatformVersionInfo PlatformInfoName = 0x0901
	// PlatformNameInfo refers to a human-readable string that identifies
	// the platform.
	//
	// Returned type: string
	PlatformNameInfo PlatformInfoName = 0x0902
	// PlatformVendorInfo refers to a human-readable string that identifies
	// the vendor of the platform.
	//
	// Returned type: string
	PlatformVendorInfo PlatformInfoName = 0x0903
	// PlatformExtensionsInfo refers to a space separated list of extension
	// names supported by the platform.
	//
	// Returned type: string
	PlatformExtensionsInfo PlatformInfoName = 0x0904
)

// PlatformInfo queries information about an OpenCL platform.
//
// The provided size needs to specify the size of the available space
// pointed to by the provided value in bytes. The returned number is the
// required size, in bytes, for the queried information. Call the function
// with a zero size and nil value to request the required size.
//
// Raw strings are returned with a terminating NUL character. For
// convenience, use PlatformInfoString().
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetPlatformInfo.html
func PlatformInfo(id PlatformID, paramName PlatformInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	if clGetPlatformInfo == nil {
		return 0, ErrNotLoaded
	}
	sizeReturn := uintptr(0)
	status := clGetPlatformInfo(uintptr(id), uint32(paramName), paramSize, paramValue, &sizeReturn)
	if status != success {
		return sizeReturn, StatusError(status)
	}
	return sizeReturn, nil
}

// PlatformInfoString queries string-typed information about a platform.
// The returned string has the terminating NUL character removed.
func PlatformInfoString(id PlatformID, paramName PlatformInfoName) (string, error) {
	required, err := PlatformInfo(id, paramName, 0, nil)
	if err != nil {
		return "", err
	}
	if required == 0 {
		return "", nil
	}
	buf := make([]byte, required)
	_, err = PlatformInfo(id, paramName, uintptr(len(buf)), unsafe.Pointer(&buf[0]))
	if err != nil {
		return "", err
	}
	return string(buf[:required-1]), nil
}

// ExtensionFunctionAddressForPlatform returns the address of the named
// extension function for the given platform, or 0 if the function is not
// supported. The returned value is a raw native function pointer; pair it
// with the matching invocation shim (see TerminateContext).
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetExtensionFunctionAddressForPlatform.html
func ExtensionFunctionAddressForPlatform(id PlatformID, funcName string) uintptr {
	if clGetExtensionFunctionAddressForPlatform == nil {
		return 0
	}
	return clGetExtensionFunctionAddressForPlatform(uintptr(id), funcName)
}
