//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"
)

// DeviceID references one compute device of a platform.
type DeviceID uintptr

// String provides a readable presentation of the device identifier.
// It is based on the numerical value of the underlying pointer.
func (id DeviceID) String() string {
	return fmt.Sprintf("0x%X", uintptr(id))
}

// DeviceType is a bitfield identifying classes of compute devices.
type DeviceType uint64

const (
	// DeviceTypeDefault identifies the default device of a platform.
	DeviceTypeDefault DeviceType = 1 << 0
	// DeviceTypeCPU identifies a device running on the host processor.
	DeviceTypeCPU DeviceType = 1 << 1
	// DeviceTypeGPU identifies a GPU device.
	DeviceTypeGPU DeviceType = 1 << 2
	// DeviceTypeAccelerator identifies a dedicated accelerator.
	DeviceTypeAccelerator DeviceType = 1 << 3
	// DeviceTypeCustom identifies devices that do not support OpenCL C.
	//
	// Since: 1.2
	DeviceTypeCustom DeviceType = 1 << 4
	// DeviceTypeAll matches all devices except DeviceTypeCustom.
	DeviceTypeAll DeviceType = 0xFFFFFFFF
)

// DeviceIDs returns the devices of the given type available on a platform.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetDeviceIDs.html
func DeviceIDs(platform PlatformID, deviceType DeviceType) ([]DeviceID, error) {
	if clGetDeviceIDs == nil {
		return nil, ErrNotLoaded
	}
	count := uint32(0)
	status := clGetDeviceIDs(uintptr(platform), uint64(deviceType), 0, nil, &count)
	if status != success {
		return nil, StatusError(status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]DeviceID, count)
	status = clGetDeviceIDs(uintptr(platform), uint64(deviceType), count, (*uintptr)(unsafe.Pointer(&ids[0])), &count)
	if status != success {
		return nil, StatusError(status)
	}
	return ids[:count], nil
}

// DeviceInfoName identifies properties of a device, which can be queried
// with DeviceInfo().
type DeviceInfoName uint32

const (
	// DeviceTypeInfo returns the type of the device.
	//
	// Returned type: DeviceType
	DeviceTypeInfo DeviceInfoName = 0x1000
	// DeviceVendorIDInfo returns a unique vendor identifier.
	//
	// Returned type: uint32
	DeviceVendorIDInfo DeviceInfoName = 0x1001
	// DeviceMaxComputeUnitsInfo returns the number of parallel compute units.
	//
	// Returned type: uint32
	DeviceMaxComputeUnitsInfo DeviceInfoName = 0x1002
	// DeviceMaxWorkItemDimensionsInfo returns the maximum dimensions for
	// global and local work-item IDs.
	//
	// Returned type: uint32
	DeviceMaxWorkItemDimensionsInfo DeviceInfoName = 0x1003
	// DeviceMaxWorkGroupSizeInfo returns the maximum number of work-items
	// in a work-group.
	//
	// Returned type: uintptr
	DeviceMaxWorkGroupSizeInfo DeviceInfoName = 0x1004
	// DeviceMaxMemAllocSizeInfo returns the maximum size of a single memory
	// object allocation, in bytes.
	//
	// Returned type: uint64
	DeviceMaxMemAllocSizeInfo DeviceInfoName = 0x1010
	// DeviceGlobalMemSizeInfo returns the size of global device memory
	// in bytes.
	//
	// Returned type: uint64
	DeviceGlobalMemSizeInfo DeviceInfoName = 0x101F
	// DeviceNameInfo returns the device name.
	//
	// Returned type: string
	DeviceNameInfo DeviceInfoName = 0x102B
	// DeviceVendorInfo returns the vendor name.
	//
	// Returned type: string
	DeviceVendorInfo DeviceInfoName = 0x102C
	// DriverVersionInfo returns the OpenCL software driver version in the
	// form major.minor.
	//
	// Returned type: string
	DriverVersionInfo DeviceInfoName = 0x102D
	// DeviceProfileInfo returns the profile name supported by the device.
	//
	// Returned type: string
	DeviceProfileInfo DeviceInfoName = 0x102E
	// DeviceVersionInfo returns the OpenCL version supported by the device.
	//
	// Returned type: string
	DeviceVersionInfo DeviceInfoName = 0x102F
	// DeviceExtensionsInfo returns a space separated list of extension
	// names supported by the device.
	//
	// Returned type: string
	DeviceExtensionsInfo DeviceInfoName = 0x1030
)

// DeviceInfo queries specific information about a device.
//
// The provided size needs to specify the size of the available space
// pointed to by the provided value in bytes. The returned number is the
// required size, in bytes, for the queried information. Call the function
// with a zero size and nil value to request the required size.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetDeviceInfo.html
func DeviceInfo(id DeviceID, paramName DeviceInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	if clGetDeviceInfo == nil {
		return 0, ErrNotLoaded
	}
	sizeReturn := uintptr(0)
	status := clGetDeviceInfo(uintptr(id), uint32(paramName), paramSize, paramValue, &sizeReturn)
	if status != success {
		return sizeReturn, StatusError(status)
	}
	return sizeReturn, nil
}

// DeviceInfoString queries string-typed information about a device.
// The returned string has the terminating NUL character removed.
func DeviceInfoString(id DeviceID, paramName DeviceInfoName) (string, error) {
	required, err := DeviceInfo(id, paramName, 0, nil)
	if err != nil {
		return "", err
	}
	if required == 0 {
		return "", nil
	}
	buf := make([]byte, required)
	_, err = DeviceInfo(id, paramName, uintptr(len(buf)), unsafe.Pointer(&buf[0]))
	if err != nil {
		return "", err
	}
	return string(buf[:required-1]), nil
}

// DeviceInfoUint queries uint32-typed information about a device.
func DeviceInfoUint(id DeviceID, paramName DeviceInfoName) (uint32, error) {
	value := uint32(0)
	_, err := DeviceInfo(id, paramName, unsafe.Sizeof(value), unsafe.Pointer(&value))
	if err != nil {
		return 0, err
	}
	return value, nil
}

// DeviceInfoUlong queries uint64-typed information about a device.
func DeviceInfoUlong(id DeviceID, paramName DeviceInfoName) (uint64, error) {
	value := uint64(0)
	_, err := DeviceInfo(id, paramName, unsafe.Sizeof(value), unsafe.Pointer(&value))
	if err != nil {
		return 0, err
	}
	return value, nil
}
