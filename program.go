//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/handles"
)

// Program references a program object, a container of compiled or
// to-be-compiled OpenCL C sources and binaries.
type Program uintptr

// String provides a readable presentation of the program identifier.
// It is based on the numerical value of the underlying pointer.
func (p Program) String() string {
	return fmt.Sprintf("0x%X", uintptr(p))
}

// ProgramCallback is invoked when an asynchronous build, compile, or link
// operation has completed - successfully or not. Query the result with
// ProgramBuildLog() or the corresponding info functions.
//
// The driver may invoke the callback from any of its own threads. It fires
// exactly once per registration.
type ProgramCallback func(program Program)

// CreateProgramWithSource creates a program object from OpenCL C source
// strings. The sources are concatenated by the driver.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateProgramWithSource.html
func CreateProgramWithSource(context Context, sources []string) (Program, error) {
	if clCreateProgramWithSource == nil {
		return 0, ErrNotLoaded
	}
	if len(sources) == 0 {
		return 0, ErrInvalidValue
	}
	rawSources := make([]*byte, len(sources))
	for i, source := range sources {
		// NUL-terminated copies; the lengths array stays NULL.
		buf := make([]byte, len(source)+1)
		copy(buf, source)
		rawSources[i] = &buf[0]
	}
	status := success
	program := clCreateProgramWithSource(uintptr(context), uint32(len(sources)), &rawSources[0], nil, &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Program(program), nil
}

// RetainProgram increments the program reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainProgram.html
func RetainProgram(program Program) error {
	if clRetainProgram == nil {
		return ErrNotLoaded
	}
	if status := clRetainProgram(uintptr(program)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseProgram decrements the program reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseProgram.html
func ReleaseProgram(program Program) error {
	if clReleaseProgram == nil {
		return ErrNotLoaded
	}
	if status := clReleaseProgram(uintptr(program)); status != success {
		return StatusError(status)
	}
	return nil
}

// BuildProgram builds (compiles and links) a program executable from the
// program source or binary for the given devices.
//
// With a nil callback the call blocks until the build has completed. With
// a non-nil callback the call returns immediately and the callback fires
// once the build has completed, from a driver thread.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clBuildProgram.html
func BuildProgram(program Program, devices []DeviceID, options string, callback ProgramCallback) error {
	if clBuildProgram == nil {
		return ErrNotLoaded
	}
	notifyFn, userData := uintptr(0), uintptr(0)
	if callback != nil {
		notifyFn = programBuildTrampoline()
		userData = handles.Register(callback)
	}
	status := clBuildProgram(uintptr(program), uint32(len(devices)), rawDeviceList(devices), cString(options), notifyFn, userData)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return StatusError(status)
	}
	return nil
}

// CompileProgram compiles the program source for the given devices.
// headers and includeNames associate embedded header programs with the
// names under which the source includes them; both must have equal length.
//
// Callback semantics are the same as for BuildProgram.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCompileProgram.html
func CompileProgram(program Program, devices []DeviceID, options string, headers []Program, includeNames []string, callback ProgramCallback) error {
	if clCompileProgram == nil {
		return ErrNotLoaded
	}
	if len(headers) != len(includeNames) {
		return ErrInvalidValue
	}
	var rawHeaders *uintptr
	var rawNames **byte
	if len(headers) > 0 {
		rawHeaders = (*uintptr)(unsafe.Pointer(&headers[0]))
		names := make([]*byte, len(includeNames))
		for i, name := range includeNames {
			buf := make([]byte, len(name)+1)
			copy(buf, name)
			names[i] = &buf[0]
		}
		rawNames = &names[0]
	}
	notifyFn, userData := uintptr(0), uintptr(0)
	if callback != nil {
		notifyFn = programCompileTrampoline()
		userData = handles.Register(callback)
	}
	status := clCompileProgram(uintptr(program), uint32(len(devices)), rawDeviceList(devices), cString(options),
		uint32(len(headers)), rawHeaders, rawNames, notifyFn, userData)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return StatusError(status)
	}
	return nil
}

// LinkProgram links compiled program objects into a new program executable
// for the given devices within a context.
//
// Callback semantics are the same as for BuildProgram; with a non-nil
// callback the returned program must not be used before the callback has
// fired.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clLinkProgram.html
func LinkProgram(context Context, devices []DeviceID, options string, programs []Program, callback ProgramCallback) (Program, error) {
	if clLinkProgram == nil {
		return 0, ErrNotLoaded
	}
	var rawPrograms *uintptr
	if len(programs) > 0 {
		rawPrograms = (*uintptr)(unsafe.Pointer(&programs[0]))
	}
	notifyFn, userData := uintptr(0), uintptr(0)
	if callback != nil {
		notifyFn = programLinkTrampoline()
		userData = handles.Register(callback)
	}
	status := success
	linked := clLinkProgram(uintptr(context), uint32(len(devices)), rawDeviceList(devices), cString(options),
		uint32(len(programs)), rawPrograms, notifyFn, userData, &status)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return 0, StatusError(status)
	}
	return Program(linked), nil
}

// ProgramBuildInfoName identifies build properties of a program, which can
// be queried with ProgramBuildInfo().
type ProgramBuildInfoName uint32

const (
	// ProgramBuildStatusInfo returns the build status.
	//
	// Returned type: int32
	ProgramBuildStatusInfo ProgramBuildInfoName = 0x1181
	// ProgramBuildOptionsInfo returns the options argument of the last
	// build, compile, or link.
	//
	// Returned type: string
	ProgramBuildOptionsInfo ProgramBuildInfoName = 0x1182
	// ProgramBuildLogInfo returns the build, compile, or link log.
	//
	// Returned type: string
	ProgramBuildLogInfo ProgramBuildInfoName = 0x1183
)

// ProgramBuildInfo queries build information of a program for one device.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clGetProgramBuildInfo.html
func ProgramBuildInfo(program Program, device DeviceID, paramName ProgramBuildInfoName, paramSize uintptr, paramValue unsafe.Pointer) (uintptr, error) {
	if clGetProgramBuildInfo == nil {
		return 0, ErrNotLoaded
	}
	sizeReturn := uintptr(0)
	status := clGetProgramBuildInfo(uintptr(program), uintptr(device), uint32(paramName), paramSize, paramValue, &sizeReturn)
	if status != success {
		return sizeReturn, StatusError(status)
	}
	return sizeReturn, nil
}

// ProgramBuildLog returns the build log of a program for one device.
func ProgramBuildLog(program Program, device DeviceID) (string, error) {
	required, err := ProgramBuildInfo(program, device, ProgramBuildLogInfo, 0, nil)
	if err != nil {
		return "", err
	}
	if required == 0 {
		return "", nil
	}
	buf := make([]byte, required)
	_, err = ProgramBuildInfo(program, device, ProgramBuildLogInfo, uintptr(len(buf)), unsafe.Pointer(&buf[0]))
	if err != nil {
		return "", err
	}
	return string(buf[:required-1]), nil
}

func rawDeviceList(devices []DeviceID) *uintptr {
	if len(devices) == 0 {
		return nil
	}
	return (*uintptr)(unsafe.Pointer(&devices[0]))
}

// dispatchProgramDone resolves and consumes the handle of a completed
// build, compile, or link. All three phases share the shape; they differ
// only in which trampoline the driver was given.
func dispatchProgramDone(kind string, program uintptr, userData uintptr) {
	defer catchPanic(kind)
	callback, _ := handles.Take(userData).(ProgramCallback)
	if callback == nil {
		return
	}
	callback(Program(program))
}

func dispatchProgramBuild(_ purego.CDecl, program uintptr, userData uintptr) {
	dispatchProgramDone("program build", program, userData)
}

func dispatchProgramCompile(_ purego.CDecl, program uintptr, userData uintptr) {
	dispatchProgramDone("program compile", program, userData)
}

func dispatchProgramLink(_ purego.CDecl, program uintptr, userData uintptr) {
	dispatchProgramDone("program link", program, userData)
}
