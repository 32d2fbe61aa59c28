//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
)

// Sampler describes how a kernel samples an image.
type Sampler uintptr

// String provides a readable presentation of the sampler identifier.
// It is based on the numerical value of the underlying pointer.
func (s Sampler) String() string {
	return fmt.Sprintf("0x%X", uintptr(s))
}

// AddressingMode specifies how out-of-range image coordinates are handled.
type AddressingMode uint32

const (
	AddressNone           AddressingMode = 0x1130
	AddressClampToEdge    AddressingMode = 0x1131
	AddressClamp          AddressingMode = 0x1132
	AddressRepeat         AddressingMode = 0x1133
	AddressMirroredRepeat AddressingMode = 0x1134
)

// FilterMode specifies the filter applied when sampling an image.
type FilterMode uint32

const (
	FilterNearest FilterMode = 0x1140
	FilterLinear  FilterMode = 0x1141
)

// CreateSampler creates a sampler object.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateSampler.html
func CreateSampler(context Context, normalizedCoords bool, addressingMode AddressingMode, filterMode FilterMode) (Sampler, error) {
	if clCreateSampler == nil {
		return 0, ErrNotLoaded
	}
	status := success
	sampler := clCreateSampler(uintptr(context), boolArg(normalizedCoords), uint32(addressingMode), uint32(filterMode), &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Sampler(sampler), nil
}

// RetainSampler increments the sampler reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainSampler.html
func RetainSampler(sampler Sampler) error {
	if clRetainSampler == nil {
		return ErrNotLoaded
	}
	if status := clRetainSampler(uintptr(sampler)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseSampler decrements the sampler reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseSampler.html
func ReleaseSampler(sampler Sampler) error {
	if clReleaseSampler == nil {
		return ErrNotLoaded
	}
	if status := clReleaseSampler(uintptr(sampler)); status != success {
		return StatusError(status)
	}
	return nil
}
