//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/handles"
)

// MemObject represents a reference counted region of global memory.
type MemObject uintptr

// String provides a readable presentation of the memory identifier.
// It is based on the numerical value of the underlying pointer.
func (mem MemObject) String() string {
	return fmt.Sprintf("0x%X", uintptr(mem))
}

// MemFlags describe allocation and usage of a memory object.
type MemFlags uint64

const (
	// MemReadWriteFlag specifies that the memory object will be read and
	// written by a kernel. This is the default.
	MemReadWriteFlag MemFlags = 1 << 0
	// MemWriteOnlyFlag specifies that the memory object will be written
	// but not read by a kernel.
	MemWriteOnlyFlag MemFlags = 1 << 1
	// MemReadOnlyFlag specifies that the memory object is read-only for
	// kernels.
	MemReadOnlyFlag MemFlags = 1 << 2
	// MemUseHostPtrFlag specifies that the application wants the
	// implementation to use memory referenced by hostPtr as storage.
	MemUseHostPtrFlag MemFlags = 1 << 3
	// MemAllocHostPtrFlag specifies that the buffer should be allocated
	// from host accessible memory.
	MemAllocHostPtrFlag MemFlags = 1 << 4
	// MemCopyHostPtrFlag specifies that the memory is initialized by
	// copying from hostPtr.
	MemCopyHostPtrFlag MemFlags = 1 << 5
)

// CreateBuffer creates a buffer object of the given size in bytes.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateBuffer.html
func CreateBuffer(context Context, flags MemFlags, size uintptr, hostPtr unsafe.Pointer) (MemObject, error) {
	if clCreateBuffer == nil {
		return 0, ErrNotLoaded
	}
	status := success
	mem := clCreateBuffer(uintptr(context), uint64(flags), size, hostPtr, &status)
	if status != success {
		return 0, StatusError(status)
	}
	return MemObject(mem), nil
}

// RetainMemObject increments the memory object reference count.
//
// Functions that create a memory object perform an implicit retain.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainMemObject.html
func RetainMemObject(mem MemObject) error {
	if clRetainMemObject == nil {
		return ErrNotLoaded
	}
	if status := clRetainMemObject(uintptr(mem)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseMemObject decrements the memory object reference count.
//
// After the reference count becomes zero and commands queued for execution
// on a command-queue(s) that use mem have finished, the memory object is
// deleted.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseMemObject.html
func ReleaseMemObject(mem MemObject) error {
	if clReleaseMemObject == nil {
		return ErrNotLoaded
	}
	if status := clReleaseMemObject(uintptr(mem)); status != success {
		return StatusError(status)
	}
	return nil
}

// EnqueueReadBuffer enqueues a command to read from a buffer object into
// host memory at ptr. With blocking set, the call returns once the copy
// has completed.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueReadBuffer.html
func EnqueueReadBuffer(commandQueue CommandQueue, mem MemObject, blocking bool, offset, size uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	if clEnqueueReadBuffer == nil {
		return ErrNotLoaded
	}
	status := clEnqueueReadBuffer(uintptr(commandQueue), uintptr(mem), boolArg(blocking), offset, size, ptr,
		uint32(len(waitList)), rawEvents(waitList), (*uintptr)(unsafe.Pointer(event)))
	if status != success {
		return StatusError(status)
	}
	return nil
}

// EnqueueWriteBuffer enqueues a command to write to a buffer object from
// host memory at ptr. With blocking set, ptr can be reused once the call
// returns.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueWriteBuffer.html
func EnqueueWriteBuffer(commandQueue CommandQueue, mem MemObject, blocking bool, offset, size uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	if clEnqueueWriteBuffer == nil {
		return ErrNotLoaded
	}
	status := clEnqueueWriteBuffer(uintptr(commandQueue), uintptr(mem), boolArg(blocking), offset, size, ptr,
		uint32(len(waitList)), rawEvents(waitList), (*uintptr)(unsafe.Pointer(event)))
	if status != success {
		return StatusError(status)
	}
	return nil
}

// SetMemObjectDestructorCallback registers a destructor callback function
// with a memory object.
//
// Each call registers the specified callback function on a destructor
// callback stack associated with mem. The registered callback functions
// are called in the reverse order in which they were registered, when the
// memory object is about to be deleted.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clSetMemObjectDestructorCallback.html
func SetMemObjectDestructorCallback(mem MemObject, callback func()) error {
	if clSetMemObjectDestructorCallback == nil {
		return ErrNotLoaded
	}
	notifyFn, userData := uintptr(0), uintptr(0)
	if callback != nil {
		notifyFn = memDestructorTrampoline()
		userData = handles.Register(callback)
	}
	status := clSetMemObjectDestructorCallback(uintptr(mem), notifyFn, userData)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return StatusError(status)
	}
	return nil
}

func boolArg(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func rawEvents(events []Event) *uintptr {
	if len(events) == 0 {
		return nil
	}
	return (*uintptr)(unsafe.Pointer(&events[0]))
}

// dispatchMemDestructor is the re-entry point behind memDestructorTrampoline.
// A destructor fires exactly once, when the object is deleted; the handle
// is consumed on invocation. The memory object reference is already
// half-dead at this point and deliberately not forwarded.
func dispatchMemDestructor(_ purego.CDecl, _ uintptr, userData uintptr) {
	defer catchPanic("memory destructor")
	callback, _ := handles.Take(userData).(func())
	if callback == nil {
		return
	}
	callback()
}
