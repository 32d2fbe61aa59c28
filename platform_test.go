//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformIDs(t *testing.T) {
	available := []uintptr{0x10, 0x20, 0x30}
	stub(t, &clGetPlatformIDs, func(numEntries uint32, platforms *uintptr, numPlatforms *uint32) int32 {
		if platforms == nil {
			*numPlatforms = uint32(len(available))
			return success
		}
		copy(unsafe.Slice(platforms, numEntries), available)
		*numPlatforms = uint32(len(available))
		return success
	})

	ids, err := PlatformIDs()
	require.NoError(t, err)
	assert.Equal(t, []PlatformID{0x10, 0x20, 0x30}, ids)
}

func TestPlatformIDs_NonePresent(t *testing.T) {
	stub(t, &clGetPlatformIDs, func(numEntries uint32, platforms *uintptr, numPlatforms *uint32) int32 {
		*numPlatforms = 0
		return success
	})

	ids, err := PlatformIDs()
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestPlatformInfoString_StripsTerminator(t *testing.T) {
	name := "Portable Computing Language\x00"
	stub(t, &clGetPlatformInfo, func(platform uintptr, paramName uint32, paramSize uintptr, paramValue unsafe.Pointer, sizeReturn *uintptr) int32 {
		if paramValue == nil {
			*sizeReturn = uintptr(len(name))
			return success
		}
		copy(unsafe.Slice((*byte)(paramValue), paramSize), name)
		*sizeReturn = uintptr(len(name))
		return success
	})

	got, err := PlatformInfoString(PlatformID(0x10), PlatformNameInfo)
	require.NoError(t, err)
	assert.Equal(t, "Portable Computing Language", got)
}

func TestExtensionFunctionAddressForPlatform(t *testing.T) {
	var capturedName string
	stub(t, &clGetExtensionFunctionAddressForPlatform, func(platform uintptr, funcName string) uintptr {
		capturedName = funcName
		if funcName == "clTerminateContextKHR" {
			return 0xF000
		}
		return 0
	})

	assert.Equal(t, uintptr(0xF000), ExtensionFunctionAddressForPlatform(PlatformID(0x10), "clTerminateContextKHR"))
	assert.Equal(t, "clTerminateContextKHR", capturedName)
	assert.Zero(t, ExtensionFunctionAddressForPlatform(PlatformID(0x10), "clIcdGetPlatformIDsKHR"))
}
