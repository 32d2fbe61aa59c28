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

const wordSize = unsafe.Sizeof(uintptr(0))

func TestEnqueueNativeKernel_RoundTrip(t *testing.T) {
	var capturedFunc uintptr
	var capturedArgs unsafe.Pointer
	var capturedArgsSize uintptr
	var capturedMemList []uintptr
	var capturedMemLocs []unsafe.Pointer
	stub(t, &clEnqueueNativeKernel, func(commandQueue uintptr, userFunc uintptr, args unsafe.Pointer, argsSize uintptr,
		numMemObjects uint32, memList *uintptr, argsMemLoc *unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32 {
		capturedFunc = userFunc
		capturedArgs = args
		capturedArgsSize = argsSize
		capturedMemList = unsafe.Slice(memList, numMemObjects)
		capturedMemLocs = unsafe.Slice(argsMemLoc, numMemObjects)
		return success
	})

	fired := 0
	var gotPtrs []unsafe.Pointer
	mems := []MemObject{0x800, 0x900}
	err := EnqueueNativeKernel(CommandQueue(0x40), func(ptrs []unsafe.Pointer) {
		fired++
		gotPtrs = ptrs
	}, mems, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, nativeKernelTrampoline(), capturedFunc)
	assert.Equal(t, []uintptr{0x800, 0x900}, capturedMemList)

	// The args buffer carries the handle word plus one patch slot per
	// memory object, and each memory location points at its patch slot.
	require.Equal(t, 3*wordSize, capturedArgsSize)
	require.Len(t, capturedMemLocs, 2)
	assert.Equal(t, unsafe.Add(capturedArgs, 1*wordSize), capturedMemLocs[0])
	assert.Equal(t, unsafe.Add(capturedArgs, 2*wordSize), capturedMemLocs[1])

	// Simulate the driver: copy the args buffer, patch the memory
	// locations with global-memory addresses, invoke the trampoline with
	// the copy.
	driverCopy := make([]uintptr, 3)
	copy(driverCopy, unsafe.Slice((*uintptr)(capturedArgs), 3))
	var global0, global1 [16]byte
	driverCopy[1] = uintptr(unsafe.Pointer(&global0))
	driverCopy[2] = uintptr(unsafe.Pointer(&global1))
	dispatchNativeKernel(purego.CDecl{}, unsafe.Pointer(&driverCopy[0]))

	assert.Equal(t, 1, fired)
	require.Len(t, gotPtrs, 2)
	assert.Equal(t, unsafe.Pointer(&global0), gotPtrs[0])
	assert.Equal(t, unsafe.Pointer(&global1), gotPtrs[1])

	// Native kernels run once; the handle is consumed.
	dispatchNativeKernel(purego.CDecl{}, unsafe.Pointer(&driverCopy[0]))
	assert.Equal(t, 1, fired)
}

func TestEnqueueNativeKernel_NilCallbackElidesEverything(t *testing.T) {
	var capturedFunc uintptr
	var capturedArgs unsafe.Pointer
	var capturedArgsSize uintptr
	stub(t, &clEnqueueNativeKernel, func(commandQueue uintptr, userFunc uintptr, args unsafe.Pointer, argsSize uintptr,
		numMemObjects uint32, memList *uintptr, argsMemLoc *unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32 {
		capturedFunc = userFunc
		capturedArgs = args
		capturedArgsSize = argsSize
		return success
	})

	before := handles.Count()
	require.NoError(t, EnqueueNativeKernel(CommandQueue(0x40), nil, nil, nil, nil))
	assert.Zero(t, capturedFunc)
	assert.Nil(t, capturedArgs)
	assert.Zero(t, capturedArgsSize)
	assert.Equal(t, before, handles.Count())
}

func TestEnqueueNativeKernel_ErrorUnregistersHandle(t *testing.T) {
	stub(t, &clEnqueueNativeKernel, func(commandQueue uintptr, userFunc uintptr, args unsafe.Pointer, argsSize uintptr,
		numMemObjects uint32, memList *uintptr, argsMemLoc *unsafe.Pointer, waitListCount uint32, waitList *uintptr, event *uintptr) int32 {
		return int32(ErrInvalidOperation)
	})

	before := handles.Count()
	err := EnqueueNativeKernel(CommandQueue(0x40), func([]unsafe.Pointer) {}, nil, nil, nil)
	assert.Equal(t, ErrInvalidOperation, err)
	assert.Equal(t, before, handles.Count())
}

func TestEnqueueNDRangeKernel(t *testing.T) {
	var capturedWorkDim uint32
	var capturedGlobal []uintptr
	var capturedLocal *uintptr
	var capturedEvent *uintptr
	stub(t, &clEnqueueNDRangeKernel, func(commandQueue uintptr, kernel uintptr, workDim uint32,
		globalOffset *uintptr, globalSize *uintptr, localSize *uintptr, waitListCount uint32, waitList *uintptr, event *uintptr) int32 {
		capturedWorkDim = workDim
		capturedGlobal = unsafe.Slice(globalSize, workDim)
		capturedLocal = localSize
		capturedEvent = event
		*event = 0x51
		return success
	})

	var event Event
	err := EnqueueNDRangeKernel(CommandQueue(0x40), Kernel(0x700), nil, []uintptr{1024, 768}, nil, nil, &event)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), capturedWorkDim)
	assert.Equal(t, []uintptr{1024, 768}, capturedGlobal)
	assert.Nil(t, capturedLocal)
	assert.NotNil(t, capturedEvent)
	assert.Equal(t, Event(0x51), event)

	err = EnqueueNDRangeKernel(CommandQueue(0x40), Kernel(0x700), nil, nil, nil, nil, nil)
	assert.Equal(t, ErrInvalidWorkDimension, err)
}

func TestCreateKernel(t *testing.T) {
	var capturedName string
	stub(t, &clCreateKernel, func(program uintptr, kernelName string, errcodeReturn *int32) uintptr {
		capturedName = kernelName
		*errcodeReturn = success
		return 0x700
	})

	kernel, err := CreateKernel(Program(0x600), "vector_add")
	require.NoError(t, err)
	assert.Equal(t, Kernel(0x700), kernel)
	assert.Equal(t, "vector_add", capturedName)
}

func TestSetKernelArgMem(t *testing.T) {
	var capturedIndex uint32
	var capturedSize uintptr
	var capturedValue uintptr
	stub(t, &clSetKernelArg, func(kernel uintptr, argIndex uint32, argSize uintptr, argValue unsafe.Pointer) int32 {
		capturedIndex = argIndex
		capturedSize = argSize
		capturedValue = *(*uintptr)(argValue)
		return success
	})

	require.NoError(t, SetKernelArgMem(Kernel(0x700), 2, MemObject(0x800)))
	assert.Equal(t, uint32(2), capturedIndex)
	assert.Equal(t, wordSize, capturedSize)
	assert.Equal(t, uintptr(0x800), capturedValue)
}
