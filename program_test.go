//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clpure/cl/internal/handles"
)

func TestCreateProgramWithSource(t *testing.T) {
	var capturedCount uint32
	var capturedSources []string
	var capturedLengths *uintptr
	stub(t, &clCreateProgramWithSource, func(context uintptr, count uint32, strings **byte, lengths *uintptr, errcodeReturn *int32) uintptr {
		capturedCount = count
		capturedLengths = lengths
		for _, p := range unsafe.Slice(strings, count) {
			capturedSources = append(capturedSources, goString(p))
		}
		*errcodeReturn = success
		return 0x600
	})

	program, err := CreateProgramWithSource(Context(0x1), []string{"__kernel void a() {}", "__kernel void b() {}"})
	require.NoError(t, err)
	assert.Equal(t, Program(0x600), program)
	assert.Equal(t, uint32(2), capturedCount)
	assert.Equal(t, []string{"__kernel void a() {}", "__kernel void b() {}"}, capturedSources)
	// The copies are NUL-terminated, so the lengths array stays NULL.
	assert.Nil(t, capturedLengths)

	_, err = CreateProgramWithSource(Context(0x1), nil)
	assert.Equal(t, ErrInvalidValue, err)
}

func TestBuildProgram_NilCallbackElidesTrampoline(t *testing.T) {
	var capturedNotify, capturedUserData uintptr
	var capturedOptions *byte
	stub(t, &clBuildProgram, func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32 {
		capturedNotify = notify
		capturedUserData = userData
		capturedOptions = options
		return success
	})

	require.NoError(t, BuildProgram(Program(0x600), []DeviceID{0x11}, "", nil))
	assert.Zero(t, capturedNotify)
	assert.Zero(t, capturedUserData)
	// Empty options become a NULL pointer, not an empty C string.
	assert.Nil(t, capturedOptions)

	require.NoError(t, BuildProgram(Program(0x600), nil, "-cl-fast-relaxed-math", nil))
	assert.Equal(t, "-cl-fast-relaxed-math", goString(capturedOptions))
}

func TestBuildProgram_CallbackRoundTrip(t *testing.T) {
	var capturedNotify, capturedUserData uintptr
	stub(t, &clBuildProgram, func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32 {
		capturedNotify = notify
		capturedUserData = userData
		return success
	})

	built := 0
	var gotProgram Program
	require.NoError(t, BuildProgram(Program(0x600), []DeviceID{0x11}, "", func(program Program) {
		built++
		gotProgram = program
	}))

	// The driver is handed the build trampoline, so only the build
	// re-entry point can ever see this handle.
	assert.Equal(t, programBuildTrampoline(), capturedNotify)
	require.NotZero(t, capturedUserData)

	dispatchProgramBuild(purego.CDecl{}, 0x600, capturedUserData)
	assert.Equal(t, 1, built)
	assert.Equal(t, Program(0x600), gotProgram)

	// One-shot: a duplicate completion report is dropped.
	dispatchProgramBuild(purego.CDecl{}, 0x600, capturedUserData)
	assert.Equal(t, 1, built)
	assert.Nil(t, handles.Lookup(capturedUserData))
}

func TestBuildProgram_ErrorUnregistersHandle(t *testing.T) {
	stub(t, &clBuildProgram, func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32 {
		return int32(ErrBuildProgramFailure)
	})

	before := handles.Count()
	err := BuildProgram(Program(0x600), []DeviceID{0x11}, "", func(Program) {})
	assert.Equal(t, ErrBuildProgramFailure, err)
	assert.Equal(t, before, handles.Count())
}

func TestCompileProgram(t *testing.T) {
	var capturedNumHeaders uint32
	var capturedNames []string
	stub(t, &clCompileProgram, func(program uintptr, numDevices uint32, devices *uintptr, options *byte,
		numHeaders uint32, headers *uintptr, includeNames **byte, notify uintptr, userData uintptr) int32 {
		capturedNumHeaders = numHeaders
		for _, p := range unsafe.Slice(includeNames, numHeaders) {
			capturedNames = append(capturedNames, goString(p))
		}
		return success
	})

	err := CompileProgram(Program(0x600), []DeviceID{0x11}, "", []Program{0x700}, []string{"util.h"}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), capturedNumHeaders)
	assert.Equal(t, []string{"util.h"}, capturedNames)

	err = CompileProgram(Program(0x600), nil, "", []Program{0x700}, nil, nil)
	assert.Equal(t, ErrInvalidValue, err)
}

func TestLinkProgram_ErrorUnregistersHandle(t *testing.T) {
	stub(t, &clLinkProgram, func(context uintptr, numDevices uint32, devices *uintptr, options *byte,
		numPrograms uint32, programs *uintptr, notify uintptr, userData uintptr, errcodeReturn *int32) uintptr {
		*errcodeReturn = int32(ErrLinkProgramFailure)
		return 0
	})

	before := handles.Count()
	_, err := LinkProgram(Context(0x1), nil, "", []Program{0x600}, func(Program) {})
	assert.Equal(t, ErrLinkProgramFailure, err)
	assert.Equal(t, before, handles.Count())
}

func TestProgramBuildLog(t *testing.T) {
	log := "ptxas info: 0 bytes spill\x00"
	stub(t, &clGetProgramBuildInfo, func(program uintptr, device uintptr, paramName uint32, paramSize uintptr, paramValue unsafe.Pointer, sizeReturn *uintptr) int32 {
		if paramValue == nil {
			*sizeReturn = uintptr(len(log))
			return success
		}
		copy(unsafe.Slice((*byte)(paramValue), paramSize), log)
		*sizeReturn = uintptr(len(log))
		return success
	})

	got, err := ProgramBuildLog(Program(0x600), DeviceID(0x11))
	require.NoError(t, err)
	assert.Equal(t, "ptxas info: 0 bytes spill", got)
}
