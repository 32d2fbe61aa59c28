//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/handles"
)

// Kernel references a kernel function within a built program.
type Kernel uintptr

// String provides a readable presentation of the kernel identifier.
// It is based on the numerical value of the underlying pointer.
func (k Kernel) String() string {
	return fmt.Sprintf("0x%X", uintptr(k))
}

// CreateKernel creates a kernel object for the named kernel function of a
// built program.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateKernel.html
func CreateKernel(program Program, kernelName string) (Kernel, error) {
	if clCreateKernel == nil {
		return 0, ErrNotLoaded
	}
	status := success
	kernel := clCreateKernel(uintptr(program), kernelName, &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Kernel(kernel), nil
}

// RetainKernel increments the kernel reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainKernel.html
func RetainKernel(kernel Kernel) error {
	if clRetainKernel == nil {
		return ErrNotLoaded
	}
	if status := clRetainKernel(uintptr(kernel)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseKernel decrements the kernel reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseKernel.html
func ReleaseKernel(kernel Kernel) error {
	if clReleaseKernel == nil {
		return ErrNotLoaded
	}
	if status := clReleaseKernel(uintptr(kernel)); status != success {
		return StatusError(status)
	}
	return nil
}

// SetKernelArg sets one argument of a kernel. value points at argSize
// bytes of argument data; for memory objects use SetKernelArgMem.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clSetKernelArg.html
func SetKernelArg(kernel Kernel, argIndex uint32, argSize uintptr, value unsafe.Pointer) error {
	if clSetKernelArg == nil {
		return ErrNotLoaded
	}
	if status := clSetKernelArg(uintptr(kernel), argIndex, argSize, value); status != success {
		return StatusError(status)
	}
	return nil
}

// SetKernelArgMem sets a memory object as kernel argument.
func SetKernelArgMem(kernel Kernel, argIndex uint32, mem MemObject) error {
	return SetKernelArg(kernel, argIndex, unsafe.Sizeof(mem), unsafe.Pointer(&mem))
}

// EnqueueNDRangeKernel enqueues a command to execute a kernel on a device
// over the given global work size. globalOffset and localSize may be nil;
// the work dimension is taken from len(globalSize).
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueNDRangeKernel.html
func EnqueueNDRangeKernel(commandQueue CommandQueue, kernel Kernel, globalOffset, globalSize, localSize []uintptr, waitList []Event, event *Event) error {
	if clEnqueueNDRangeKernel == nil {
		return ErrNotLoaded
	}
	if len(globalSize) == 0 {
		return ErrInvalidWorkDimension
	}
	status := clEnqueueNDRangeKernel(uintptr(commandQueue), uintptr(kernel), uint32(len(globalSize)),
		rawSizeList(globalOffset), rawSizeList(globalSize), rawSizeList(localSize),
		uint32(len(waitList)), rawEvents(waitList), (*uintptr)(unsafe.Pointer(event)))
	if status != success {
		return StatusError(status)
	}
	return nil
}

// EnqueueTask enqueues a command to execute a kernel as a single work-item.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueTask.html
func EnqueueTask(commandQueue CommandQueue, kernel Kernel, waitList []Event, event *Event) error {
	if clEnqueueTask == nil {
		return ErrNotLoaded
	}
	status := clEnqueueTask(uintptr(commandQueue), uintptr(kernel),
		uint32(len(waitList)), rawEvents(waitList), (*uintptr)(unsafe.Pointer(event)))
	if status != success {
		return StatusError(status)
	}
	return nil
}

// EnqueueNativeKernel enqueues a command to execute a native Go function
// not compiled using the OpenCL compiler.
//
// The provided callback function will receive pointers into global memory
// representing the provided MemObject entries, in order. The device must
// report ExecNativeKernel capability for this to succeed.
//
// The native API has no user-data slot for this callback kind; instead the
// args buffer itself carries the callback identity in its first word, and
// the driver patches the following words with the memory addresses before
// invoking the trampoline.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clEnqueueNativeKernel.html
func EnqueueNativeKernel(commandQueue CommandQueue, callback func([]unsafe.Pointer), memObjects []MemObject, waitList []Event, event *Event) error {
	if clEnqueueNativeKernel == nil {
		return ErrNotLoaded
	}
	userFunc, rawArgsPtr := uintptr(0), unsafe.Pointer(nil)
	userData, argsSize := uintptr(0), uintptr(0)
	rawArgs := make([]uintptr, len(memObjects)+1)
	if callback != nil {
		userData = handles.Register(func(argBase unsafe.Pointer) {
			argMovePtr := argBase
			memPtr := make([]unsafe.Pointer, len(memObjects))
			for i := 0; i < len(memObjects); i++ {
				memPtr[i] = *(*unsafe.Pointer)(argMovePtr)
				argMovePtr = unsafe.Add(argMovePtr, unsafe.Sizeof(uintptr(0)))
			}
			callback(memPtr)
		})
		userFunc = nativeKernelTrampoline()
		rawArgs[0] = userData
		rawArgsPtr = unsafe.Pointer(&rawArgs[0])
		argsSize = uintptr(len(rawArgs)) * unsafe.Sizeof(uintptr(0))
	}
	var rawMemObjectsPtr *uintptr
	var rawArgsMemLocsPtr *unsafe.Pointer
	if callback != nil && len(memObjects) > 0 {
		rawMemObjectsPtr = (*uintptr)(unsafe.Pointer(&memObjects[0]))
		rawArgsMemLocs := make([]unsafe.Pointer, len(memObjects))
		for i := 0; i < len(memObjects); i++ {
			rawArgsMemLocs[i] = unsafe.Pointer(&rawArgs[1+i])
		}
		rawArgsMemLocsPtr = &rawArgsMemLocs[0]
	}
	status := clEnqueueNativeKernel(
		uintptr(commandQueue),
		userFunc,
		rawArgsPtr,
		argsSize,
		uint32(len(memObjects)),
		rawMemObjectsPtr,
		rawArgsMemLocsPtr,
		uint32(len(waitList)),
		rawEvents(waitList),
		(*uintptr)(unsafe.Pointer(event)))
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return StatusError(status)
	}
	return nil
}

func rawSizeList(sizes []uintptr) *uintptr {
	if len(sizes) == 0 {
		return nil
	}
	return &sizes[0]
}

// dispatchNativeKernel is the re-entry point behind nativeKernelTrampoline.
// args points at the driver's copy of the args buffer: word 0 is the
// handle, the following words are the patched global-memory addresses,
// which are handed to the adapter registered by EnqueueNativeKernel.
func dispatchNativeKernel(_ purego.CDecl, args unsafe.Pointer) {
	defer catchPanic("native kernel")
	if args == nil {
		return
	}
	callback, _ := handles.Take(*(*uintptr)(args)).(func(unsafe.Pointer))
	if callback == nil {
		return
	}
	callback(unsafe.Add(args, unsafe.Sizeof(uintptr(0))))
}
