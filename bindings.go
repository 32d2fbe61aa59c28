//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/bindings"
)

// Function bindings - registered when init() is called. Callback-capable
// entry points take the trampoline function pointer and the user-data word
// as plain uintptr values; the wrapper decides both (see callback.go).
var (
	clGetPlatformIDs                         func(numEntries uint32, platforms *uintptr, numPlatforms *uint32) int32
	clGetPlatformInfo                        func(platform uintptr, paramName uint32, paramSize uintptr, paramValue unsafe.Pointer, sizeReturn *uintptr) int32
	clGetExtensionFunctionAddressForPlatform func(platform uintptr, funcName string) uintptr

	clGetDeviceIDs  func(platform uintptr, deviceType uint64, numEntries uint32, devices *uintptr, numDevices *uint32) int32
	clGetDeviceInfo func(device uintptr, paramName uint32, paramSize uintptr, paramValue unsafe.Pointer, sizeReturn *uintptr) int32

	clCreateContext         func(properties *uintptr, numDevices uint32, devices *uintptr, notify uintptr, userData uintptr, errcodeReturn *int32) uintptr
	clCreateContextFromType func(properties *uintptr, deviceType uint64, notify uintptr, userData uintptr, errcodeReturn *int32) uintptr
	clRetainContext         func(context uintptr) int32
	clReleaseContext        func(context uintptr) int32

	clCreateCommandQueue  func(context uintptr, device uintptr, properties uint64, errcodeReturn *int32) uintptr
	clRetainCommandQueue  func(commandQueue uintptr) int32
	clReleaseCommandQueue func(commandQueue uintptr) int32
	clFlush               func(commandQueue uintptr) int32
	clFinish              func(commandQueue uintptr) int32

	clCreateBuffer                   func(context uintptr, flags uint64, size uintptr, hostPtr unsafe.Pointer, errcodeReturn *int32) uintptr
	clRetainMemObject                func(mem uintptr) int32
	clReleaseMemObject               func(mem uintptr) int32
	clEnqueueReadBuffer              func(commandQueue uintptr, mem uintptr, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32
	clEnqueueWriteBuffer             func(commandQueue uintptr, mem uintptr, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32
	clSetMemObjectDestructorCallback func(mem uintptr, notify uintptr, userData uintptr) int32

	clCreateProgramWithSource func(context uintptr, count uint32, strings **byte, lengths *uintptr, errcodeReturn *int32) uintptr
	clRetainProgram           func(program uintptr) int32
	clReleaseProgram          func(program uintptr) int32
	clBuildProgram            func(program uintptr, numDevices uint32, devices *uintptr, options *byte, notify uintptr, userData uintptr) int32
	clCompileProgram          func(program uintptr, numDevices uint32, devices *uintptr, options *byte, numInputHeaders uint32, headers *uintptr, includeNames **byte, notify uintptr, userData uintptr) int32
	clLinkProgram             func(context uintptr, numDevices uint32, devices *uintptr, options *byte, numInputPrograms uint32, programs *uintptr, notify uintptr, userData uintptr, errcodeReturn *int32) uintptr
	clGetProgramBuildInfo     func(program uintptr, device uintptr, paramName uint32, paramSize uintptr, paramValue unsafe.Pointer, sizeReturn *uintptr) int32

	clCreateKernel         func(program uintptr, kernelName string, errcodeReturn *int32) uintptr
	clRetainKernel         func(kernel uintptr) int32
	clReleaseKernel        func(kernel uintptr) int32
	clSetKernelArg         func(kernel uintptr, argIndex uint32, argSize uintptr, argValue unsafe.Pointer) int32
	clEnqueueNDRangeKernel func(commandQueue uintptr, kernel uintptr, workDim uint32, globalOffset *uintptr, globalSize *uintptr, localSize *uintptr, waitListCount uint32, waitList *uintptr, event *uintptr) int32
	clEnqueueTask          func(commandQueue uintptr, kernel uintptr, waitListCount uint32, waitList *uintptr, event *uintptr) int32
	clEnqueueNativeKernel  func(commandQueue uintptr, userFunc uintptr, args unsafe.Pointer, argsSize uintptr, numMemObjects uint32, memList *uintptr, argsMemLoc *unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32

	clWaitForEvents      func(numEvents uint32, eventList *uintptr) int32
	clRetainEvent        func(event uintptr) int32
	clReleaseEvent       func(event uintptr) int32
	clSetEventCallback   func(event uintptr, callbackType int32, notify uintptr, userData uintptr) int32
	clCreateUserEvent    func(context uintptr, errcodeReturn *int32) uintptr
	clSetUserEventStatus func(event uintptr, executionStatus int32) int32

	clCreateSampler  func(context uintptr, normalizedCoords uint32, addressingMode uint32, filterMode uint32, errcodeReturn *int32) uintptr
	clRetainSampler  func(sampler uintptr) int32
	clReleaseSampler func(sampler uintptr) int32

	bindingsRegistered bool
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	if err := bindings.Load(); err != nil {
		return // Will fail later with ErrNotLoaded when functions are called
	}

	lib := bindings.Lib()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&clGetPlatformIDs, lib, "clGetPlatformIDs")
	purego.RegisterLibFunc(&clGetPlatformInfo, lib, "clGetPlatformInfo")
	purego.RegisterLibFunc(&clGetExtensionFunctionAddressForPlatform, lib, "clGetExtensionFunctionAddressForPlatform")

	purego.RegisterLibFunc(&clGetDeviceIDs, lib, "clGetDeviceIDs")
	purego.RegisterLibFunc(&clGetDeviceInfo, lib, "clGetDeviceInfo")

	purego.RegisterLibFunc(&clCreateContext, lib, "clCreateContext")
	purego.RegisterLibFunc(&clCreateContextFromType, lib, "clCreateContextFromType")
	purego.RegisterLibFunc(&clRetainContext, lib, "clRetainContext")
	purego.RegisterLibFunc(&clReleaseContext, lib, "clReleaseContext")

	purego.RegisterLibFunc(&clCreateCommandQueue, lib, "clCreateCommandQueue")
	purego.RegisterLibFunc(&clRetainCommandQueue, lib, "clRetainCommandQueue")
	purego.RegisterLibFunc(&clReleaseCommandQueue, lib, "clReleaseCommandQueue")
	purego.RegisterLibFunc(&clFlush, lib, "clFlush")
	purego.RegisterLibFunc(&clFinish, lib, "clFinish")

	purego.RegisterLibFunc(&clCreateBuffer, lib, "clCreateBuffer")
	purego.RegisterLibFunc(&clRetainMemObject, lib, "clRetainMemObject")
	purego.RegisterLibFunc(&clReleaseMemObject, lib, "clReleaseMemObject")
	purego.RegisterLibFunc(&clEnqueueReadBuffer, lib, "clEnqueueReadBuffer")
	purego.RegisterLibFunc(&clEnqueueWriteBuffer, lib, "clEnqueueWriteBuffer")
	purego.RegisterLibFunc(&clSetMemObjectDestructorCallback, lib, "clSetMemObjectDestructorCallback")

	purego.RegisterLibFunc(&clCreateProgramWithSource, lib, "clCreateProgramWithSource")
	purego.RegisterLibFunc(&clRetainProgram, lib, "clRetainProgram")
	purego.RegisterLibFunc(&clReleaseProgram, lib, "clReleaseProgram")
	purego.RegisterLibFunc(&clBuildProgram, lib, "clBuildProgram")
	purego.RegisterLibFunc(&clCompileProgram, lib, "clCompileProgram")
	purego.RegisterLibFunc(&clLinkProgram, lib, "clLinkProgram")
	purego.RegisterLibFunc(&clGetProgramBuildInfo, lib, "clGetProgramBuildInfo")

	purego.RegisterLibFunc(&clCreateKernel, lib, "clCreateKernel")
	purego.RegisterLibFunc(&clRetainKernel, lib, "clRetainKernel")
	purego.RegisterLibFunc(&clReleaseKernel, lib, "clReleaseKernel")
	purego.RegisterLibFunc(&clSetKernelArg, lib, "clSetKernelArg")
	purego.RegisterLibFunc(&clEnqueueNDRangeKernel, lib, "clEnqueueNDRangeKernel")
	purego.RegisterLibFunc(&clEnqueueTask, lib, "clEnqueueTask")
	purego.RegisterLibFunc(&clEnqueueNativeKernel, lib, "clEnqueueNativeKernel")

	purego.RegisterLibFunc(&clWaitForEvents, lib, "clWaitForEvents")
	purego.RegisterLibFunc(&clRetainEvent, lib, "clRetainEvent")
	purego.RegisterLibFunc(&clReleaseEvent, lib, "clReleaseEvent")
	purego.RegisterLibFunc(&clSetEventCallback, lib, "clSetEventCallback")
	purego.RegisterLibFunc(&clCreateUserEvent, lib, "clCreateUserEvent")
	purego.RegisterLibFunc(&clSetUserEventStatus, lib, "clSetUserEventStatus")

	purego.RegisterLibFunc(&clCreateSampler, lib, "clCreateSampler")
	purego.RegisterLibFunc(&clRetainSampler, lib, "clRetainSampler")
	purego.RegisterLibFunc(&clReleaseSampler, lib, "clReleaseSampler")

	bindingsRegistered = true
}
