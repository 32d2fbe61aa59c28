//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/handles"
)

// Event references the status of a command submitted to a command-queue.
type Event uintptr

// String provides a readable presentation of the event identifier.
// It is based on the numerical value of the underlying pointer.
func (e Event) String() string {
	return fmt.Sprintf("0x%X", uintptr(e))
}

// Execution states of a command, used as the callbackType of
// SetEventCallback and reported to the registered callback.
const (
	// CommandComplete means the command has completed.
	CommandComplete int32 = 0x0
	// CommandRunning means the device is executing the command.
	CommandRunning int32 = 0x1
	// CommandSubmitted means the command has been submitted to the device.
	CommandSubmitted int32 = 0x2
	// CommandQueued means the command has been enqueued.
	CommandQueued int32 = 0x3
)

// EventCallback receives the event and its new execution status, or a
// negative status code if execution was abnormally terminated.
type EventCallback func(event Event, commandStatus int32)

// SetEventCallback registers a callback for a specific command execution
// status. The registered callback fires exactly once when the command
// associated with the event reaches (or passes) the given status.
//
// The callback may fire on a driver thread at any point after
// registration - or synchronously within this call, on the calling thread,
// if the status has already been reached.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clSetEventCallback.html
func SetEventCallback(event Event, callbackType int32, callback EventCallback) error {
	if clSetEventCallback == nil {
		return ErrNotLoaded
	}
	notifyFn, userData := uintptr(0), uintptr(0)
	if callback != nil {
		notifyFn = eventStatusTrampoline()
		userData = handles.Register(callback)
	}
	status := clSetEventCallback(uintptr(event), callbackType, notifyFn, userData)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return StatusError(status)
	}
	return nil
}

// WaitForEvents blocks until all listed events have completed.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clWaitForEvents.html
func WaitForEvents(events []Event) error {
	if clWaitForEvents == nil {
		return ErrNotLoaded
	}
	if len(events) == 0 {
		return nil
	}
	status := clWaitForEvents(uint32(len(events)), (*uintptr)(unsafe.Pointer(&events[0])))
	if status != success {
		return StatusError(status)
	}
	return nil
}

// CreateUserEvent creates an event object that the application, rather
// than a queued command, moves to completion with SetUserEventStatus().
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateUserEvent.html
func CreateUserEvent(context Context) (Event, error) {
	if clCreateUserEvent == nil {
		return 0, ErrNotLoaded
	}
	status := success
	event := clCreateUserEvent(uintptr(context), &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Event(event), nil
}

// SetUserEventStatus sets the execution status of a user event. It can be
// called only once per event, with CommandComplete or a negative value.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clSetUserEventStatus.html
func SetUserEventStatus(event Event, executionStatus int32) error {
	if clSetUserEventStatus == nil {
		return ErrNotLoaded
	}
	if status := clSetUserEventStatus(uintptr(event), executionStatus); status != success {
		return StatusError(status)
	}
	return nil
}

// RetainEvent increments the event reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainEvent.html
func RetainEvent(event Event) error {
	if clRetainEvent == nil {
		return ErrNotLoaded
	}
	if status := clRetainEvent(uintptr(event)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseEvent decrements the event reference count.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseEvent.html
func ReleaseEvent(event Event) error {
	if clReleaseEvent == nil {
		return ErrNotLoaded
	}
	if status := clReleaseEvent(uintptr(event)); status != success {
		return StatusError(status)
	}
	return nil
}

// dispatchEventStatus is the re-entry point behind eventStatusTrampoline.
// Event callbacks fire exactly once per registration, so the handle is
// consumed on the first invocation.
func dispatchEventStatus(_ purego.CDecl, event uintptr, commandStatus int32, userData uintptr) {
	defer catchPanic("event status")
	callback, _ := handles.Take(userData).(EventCallback)
	if callback == nil {
		return
	}
	callback(Event(event), commandStatus)
}
