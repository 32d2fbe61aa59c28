//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import "fmt"

// success is the native CL_SUCCESS status.
const success int32 = 0

// StatusError wraps a native OpenCL status code. The code is passed through
// verbatim; this layer never remaps or invents status values.
type StatusError int32

// Error implements the error interface.
func (e StatusError) Error() string {
	return fmt.Sprintf("cl: %s (%d)", statusName(int32(e)), int32(e))
}

// Code returns the raw native status code.
func (e StatusError) Code() int32 {
	return int32(e)
}

// Native error codes of OpenCL 1.2. The names follow the CL_* constants.
const (
	ErrDeviceNotFound              StatusError = -1
	ErrDeviceNotAvailable          StatusError = -2
	ErrCompilerNotAvailable        StatusError = -3
	ErrMemObjectAllocationFailure  StatusError = -4
	ErrOutOfResources              StatusError = -5
	ErrOutOfHostMemory             StatusError = -6
	ErrProfilingInfoNotAvailable   StatusError = -7
	ErrMemCopyOverlap              StatusError = -8
	ErrImageFormatMismatch         StatusError = -9
	ErrImageFormatNotSupported     StatusError = -10
	ErrBuildProgramFailure         StatusError = -11
	ErrMapFailure                  StatusError = -12
	ErrMisalignedSubBufferOffset   StatusError = -13
	ErrExecStatusErrorForEvents    StatusError = -14
	ErrCompileProgramFailure       StatusError = -15
	ErrLinkerNotAvailable          StatusError = -16
	ErrLinkProgramFailure          StatusError = -17
	ErrDevicePartitionFailed       StatusError = -18
	ErrKernelArgInfoNotAvailable   StatusError = -19
	ErrInvalidValue                StatusError = -30
	ErrInvalidDeviceType           StatusError = -31
	ErrInvalidPlatform             StatusError = -32
	ErrInvalidDevice               StatusError = -33
	ErrInvalidContext              StatusError = -34
	ErrInvalidQueueProperties      StatusError = -35
	ErrInvalidCommandQueue         StatusError = -36
	ErrInvalidHostPtr              StatusError = -37
	ErrInvalidMemObject            StatusError = -38
	ErrInvalidImageFormat          StatusError = -39
	ErrInvalidImageSize            StatusError = -40
	ErrInvalidSampler              StatusError = -41
	ErrInvalidBinary               StatusError = -42
	ErrInvalidBuildOptions         StatusError = -43
	ErrInvalidProgram              StatusError = -44
	ErrInvalidProgramExecutable    StatusError = -45
	ErrInvalidKernelName           StatusError = -46
	ErrInvalidKernelDefinition     StatusError = -47
	ErrInvalidKernel               StatusError = -48
	ErrInvalidArgIndex             StatusError = -49
	ErrInvalidArgValue             StatusError = -50
	ErrInvalidArgSize              StatusError = -51
	ErrInvalidKernelArgs           StatusError = -52
	ErrInvalidWorkDimension        StatusError = -53
	ErrInvalidWorkGroupSize        StatusError = -54
	ErrInvalidWorkItemSize         StatusError = -55
	ErrInvalidGlobalOffset         StatusError = -56
	ErrInvalidEventWaitList        StatusError = -57
	ErrInvalidEvent                StatusError = -58
	ErrInvalidOperation            StatusError = -59
	ErrInvalidGLObject             StatusError = -60
	ErrInvalidBufferSize           StatusError = -61
	ErrInvalidMipLevel             StatusError = -62
	ErrInvalidGlobalWorkSize       StatusError = -63
	ErrInvalidProperty             StatusError = -64
	ErrInvalidImageDescriptor      StatusError = -65
	ErrInvalidCompilerOptions      StatusError = -66
	ErrInvalidLinkerOptions        StatusError = -67
	ErrInvalidDevicePartitionCount StatusError = -68
)

func statusName(code int32) string {
	switch StatusError(code) {
	case ErrDeviceNotFound:
		return "CL_DEVICE_NOT_FOUND"
	case ErrDeviceNotAvailable:
		return "CL_DEVICE_NOT_AVAILABLE"
	case ErrCompilerNotAvailable:
		return "CL_COMPILER_NOT_AVAILABLE"
	case ErrMemObjectAllocationFailure:
		return "CL_MEM_OBJECT_ALLOCATION_FAILURE"
	case ErrOutOfResources:
		return "CL_OUT_OF_RESOURCES"
	case ErrOutOfHostMemory:
		return "CL_OUT_OF_HOST_MEMORY"
	case ErrProfilingInfoNotAvailable:
		return "CL_PROFILING_INFO_NOT_AVAILABLE"
	case ErrMemCopyOverlap:
		return "CL_MEM_COPY_OVERLAP"
	case ErrImageFormatMismatch:
		return "CL_IMAGE_FORMAT_MISMATCH"
	case ErrImageFormatNotSupported:
		return "CL_IMAGE_FORMAT_NOT_SUPPORTED"
	case ErrBuildProgramFailure:
		return "CL_BUILD_PROGRAM_FAILURE"
	case ErrMapFailure:
		return "CL_MAP_FAILURE"
	case ErrMisalignedSubBufferOffset:
		return "CL_MISALIGNED_SUB_BUFFER_OFFSET"
	case ErrExecStatusErrorForEvents:
		return "CL_EXEC_STATUS_ERROR_FOR_EVENTS_IN_WAIT_LIST"
	case ErrCompileProgramFailure:
		return "CL_COMPILE_PROGRAM_FAILURE"
	case ErrLinkerNotAvailable:
		return "CL_LINKER_NOT_AVAILABLE"
	case ErrLinkProgramFailure:
		return "CL_LINK_PROGRAM_FAILURE"
	case ErrDevicePartitionFailed:
		return "CL_DEVICE_PARTITION_FAILED"
	case ErrKernelArgInfoNotAvailable:
		return "CL_KERNEL_ARG_INFO_NOT_AVAILABLE"
	case ErrInvalidValue:
		return "CL_INVALID_VALUE"
	case ErrInvalidDeviceType:
		return "CL_INVALID_DEVICE_TYPE"
	case ErrInvalidPlatform:
		return "CL_INVALID_PLATFORM"
	case ErrInvalidDevice:
		return "CL_INVALID_DEVICE"
	case ErrInvalidContext:
		return "CL_INVALID_CONTEXT"
	case ErrInvalidQueueProperties:
		return "CL_INVALID_QUEUE_PROPERTIES"
	case ErrInvalidCommandQueue:
		return "CL_INVALID_COMMAND_QUEUE"
	case ErrInvalidHostPtr:
		return "CL_INVALID_HOST_PTR"
	case ErrInvalidMemObject:
		return "CL_INVALID_MEM_OBJECT"
	case ErrInvalidImageFormat:
		return "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR"
	case ErrInvalidImageSize:
		return "CL_INVALID_IMAGE_SIZE"
	case ErrInvalidSampler:
		return "CL_INVALID_SAMPLER"
	case ErrInvalidBinary:
		return "CL_INVALID_BINARY"
	case ErrInvalidBuildOptions:
		return "CL_INVALID_BUILD_OPTIONS"
	case ErrInvalidProgram:
		return "CL_INVALID_PROGRAM"
	case ErrInvalidProgramExecutable:
		return "CL_INVALID_PROGRAM_EXECUTABLE"
	case ErrInvalidKernelName:
		return "CL_INVALID_KERNEL_NAME"
	case ErrInvalidKernelDefinition:
		return "CL_INVALID_KERNEL_DEFINITION"
	case ErrInvalidKernel:
		return "CL_INVALID_KERNEL"
	case ErrInvalidArgIndex:
		return "CL_INVALID_ARG_INDEX"
	case ErrInvalidArgValue:
		return "CL_INVALID_ARG_VALUE"
	case ErrInvalidArgSize:
		return "CL_INVALID_ARG_SIZE"
	case ErrInvalidKernelArgs:
		return "CL_INVALID_KERNEL_ARGS"
	case ErrInvalidWorkDimension:
		return "CL_INVALID_WORK_DIMENSION"
	case ErrInvalidWorkGroupSize:
		return "CL_INVALID_WORK_GROUP_SIZE"
	case ErrInvalidWorkItemSize:
		return "CL_INVALID_WORK_ITEM_SIZE"
	case ErrInvalidGlobalOffset:
		return "CL_INVALID_GLOBAL_OFFSET"
	case ErrInvalidEventWaitList:
		return "CL_INVALID_EVENT_WAIT_LIST"
	case ErrInvalidEvent:
		return "CL_INVALID_EVENT"
	case ErrInvalidOperation:
		return "CL_INVALID_OPERATION"
	case ErrInvalidGLObject:
		return "CL_INVALID_GL_OBJECT"
	case ErrInvalidBufferSize:
		return "CL_INVALID_BUFFER_SIZE"
	case ErrInvalidMipLevel:
		return "CL_INVALID_MIP_LEVEL"
	case ErrInvalidGlobalWorkSize:
		return "CL_INVALID_GLOBAL_WORK_SIZE"
	case ErrInvalidProperty:
		return "CL_INVALID_PROPERTY"
	case ErrInvalidImageDescriptor:
		return "CL_INVALID_IMAGE_DESCRIPTOR"
	case ErrInvalidCompilerOptions:
		return "CL_INVALID_COMPILER_OPTIONS"
	case ErrInvalidLinkerOptions:
		return "CL_INVALID_LINKER_OPTIONS"
	case ErrInvalidDevicePartitionCount:
		return "CL_INVALID_DEVICE_PARTITION_COUNT"
	default:
		return "unknown OpenCL status"
	}
}
