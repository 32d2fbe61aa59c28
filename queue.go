//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
)

// CommandQueue describes a sequence of events for OpenCL operations.
// Create a new command-queue with CreateCommandQueue().
type CommandQueue uintptr

// String provides a readable presentation of the command-queue identifier.
// It is based on the numerical value of the underlying pointer.
func (cq CommandQueue) String() string {
	return fmt.Sprintf("0x%X", uintptr(cq))
}

// CommandQueuePropertiesFlags determines properties for CreateCommandQueue().
type CommandQueuePropertiesFlags uint64

const (
	// QueueOutOfOrderExecModeEnable determines whether the commands queued
	// in the command-queue are executed in-order or out-of-order.
	QueueOutOfOrderExecModeEnable CommandQueuePropertiesFlags = 1 << 0
	// QueueProfilingEnable enables profiling of commands in the queue.
	QueueProfilingEnable CommandQueuePropertiesFlags = 1 << 1
)

// CreateCommandQueue creates a command-queue on a specific device.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateCommandQueue.html
func CreateCommandQueue(context Context, deviceID DeviceID, properties CommandQueuePropertiesFlags) (CommandQueue, error) {
	if clCreateCommandQueue == nil {
		return 0, ErrNotLoaded
	}
	status := success
	commandQueue := clCreateCommandQueue(uintptr(context), uintptr(deviceID), uint64(properties), &status)
	if status != success {
		return 0, StatusError(status)
	}
	return CommandQueue(commandQueue), nil
}

// RetainCommandQueue increments the commandQueue reference count.
//
// CreateCommandQueue() performs an implicit retain.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainCommandQueue.html
func RetainCommandQueue(commandQueue CommandQueue) error {
	if clRetainCommandQueue == nil {
		return ErrNotLoaded
	}
	if status := clRetainCommandQueue(uintptr(commandQueue)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseCommandQueue decrements the commandQueue reference count.
//
// ReleaseCommandQueue() performs an implicit flush to issue any previously
// queued OpenCL commands in commandQueue.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseCommandQueue.html
func ReleaseCommandQueue(commandQueue CommandQueue) error {
	if clReleaseCommandQueue == nil {
		return ErrNotLoaded
	}
	if status := clReleaseCommandQueue(uintptr(commandQueue)); status != success {
		return StatusError(status)
	}
	return nil
}

// Flush issues all previously queued commands to the device.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clFlush.html
func Flush(commandQueue CommandQueue) error {
	if clFlush == nil {
		return ErrNotLoaded
	}
	if status := clFlush(uintptr(commandQueue)); status != success {
		return StatusError(status)
	}
	return nil
}

// Finish blocks until all previously queued commands have completed.
//
// Finish is a synchronization point; do not call it from inside a
// registered callback, the driver thread running the callback may be the
// one that has to make progress.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clFinish.html
func Finish(commandQueue CommandQueue) error {
	if clFinish == nil {
		return ErrNotLoaded
	}
	if status := clFinish(uintptr(commandQueue)); status != success {
		return StatusError(status)
	}
	return nil
}
