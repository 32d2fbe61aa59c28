//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/clpure/cl/internal/handles"
)

// Context references an OpenCL context, the environment within which
// kernels execute and in which synchronization and memory management occur.
type Context uintptr

// String provides a readable presentation of the context identifier.
// It is based on the numerical value of the underlying pointer.
func (c Context) String() string {
	return fmt.Sprintf("0x%X", uintptr(c))
}

// ContextProperty is an element of the property list accepted by
// CreateContext and CreateContextFromType. Properties come in key-value
// pairs; the wrapper appends the terminating zero entry.
type ContextProperty uintptr

// ContextPlatformProperty is the property key selecting the platform.
const ContextPlatformProperty ContextProperty = 0x1084

// WithPlatform returns the property pair selecting the given platform.
func WithPlatform(id PlatformID) []ContextProperty {
	return []ContextProperty{ContextPlatformProperty, ContextProperty(id)}
}

// ContextErrorCallback receives asynchronous error notifications for a
// context. errorInfo is the driver's message; privateInfo is a copy of the
// driver's binary diagnostic data, if any.
//
// The driver may invoke the callback from any of its own threads, at any
// time during the lifetime of the context, and concurrently with other
// callbacks. It must not call back into OpenCL.
type ContextErrorCallback func(errorInfo string, privateInfo []byte)

// contextCallbackSlot determines the (function pointer, user data) pair for
// a context error callback. A nil callback installs nothing: the driver
// receives NULL for both and will never call back.
func contextCallbackSlot(notify ContextErrorCallback) (fn, userData uintptr) {
	if notify == nil {
		return 0, 0
	}
	return contextErrorTrampoline(), handles.Register(notify)
}

// terminatedProps flattens the property pairs and appends the zero
// terminator the native call expects. Returns nil for an empty list.
func terminatedProps(properties []ContextProperty) *uintptr {
	if len(properties) == 0 {
		return nil
	}
	raw := make([]uintptr, len(properties)+1)
	for i, p := range properties {
		raw[i] = uintptr(p)
	}
	return &raw[0]
}

// CreateContext creates an OpenCL context for the given devices.
//
// notify, if non-nil, is registered to receive asynchronous error reports
// for the context. It remains registered for the lifetime of the process;
// the native API offers no point at which it could be safely removed.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateContext.html
func CreateContext(properties []ContextProperty, devices []DeviceID, notify ContextErrorCallback) (Context, error) {
	if clCreateContext == nil {
		return 0, ErrNotLoaded
	}
	notifyFn, userData := contextCallbackSlot(notify)
	status := success
	context := clCreateContext(terminatedProps(properties), uint32(len(devices)), rawDeviceList(devices), notifyFn, userData, &status)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return 0, StatusError(status)
	}
	return Context(context), nil
}

// CreateContextFromType creates an OpenCL context from a device type that
// identifies the specific device(s) to use.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clCreateContextFromType.html
func CreateContextFromType(properties []ContextProperty, deviceType DeviceType, notify ContextErrorCallback) (Context, error) {
	if clCreateContextFromType == nil {
		return 0, ErrNotLoaded
	}
	notifyFn, userData := contextCallbackSlot(notify)
	status := success
	context := clCreateContextFromType(terminatedProps(properties), uint64(deviceType), notifyFn, userData, &status)
	if status != success {
		if userData != 0 {
			handles.Unregister(userData)
		}
		return 0, StatusError(status)
	}
	return Context(context), nil
}

// CreateContextWithNotify is the raw calling convention of CreateContext:
// notify is a native function pointer with the clCreateContext notify
// signature, and userData is an uninterpreted word passed through verbatim.
// Both are forwarded untouched; no trampoline is involved. Callers that
// obtained a native notify function elsewhere use this entry point.
func CreateContextWithNotify(properties []ContextProperty, devices []DeviceID, notify uintptr, userData uintptr) (Context, error) {
	if clCreateContext == nil {
		return 0, ErrNotLoaded
	}
	status := success
	context := clCreateContext(terminatedProps(properties), uint32(len(devices)), rawDeviceList(devices), notify, userData, &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Context(context), nil
}

// CreateContextFromTypeWithNotify is the raw calling convention of
// CreateContextFromType; see CreateContextWithNotify.
func CreateContextFromTypeWithNotify(properties []ContextProperty, deviceType DeviceType, notify uintptr, userData uintptr) (Context, error) {
	if clCreateContextFromType == nil {
		return 0, ErrNotLoaded
	}
	status := success
	context := clCreateContextFromType(terminatedProps(properties), uint64(deviceType), notify, userData, &status)
	if status != success {
		return 0, StatusError(status)
	}
	return Context(context), nil
}

// RetainContext increments the context reference count.
//
// CreateContext() and CreateContextFromType() perform an implicit retain.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clRetainContext.html
func RetainContext(context Context) error {
	if clRetainContext == nil {
		return ErrNotLoaded
	}
	if status := clRetainContext(uintptr(context)); status != success {
		return StatusError(status)
	}
	return nil
}

// ReleaseContext decrements the context reference count.
//
// After the reference count becomes zero and all the objects attached to
// the context (such as memory objects, command-queues) are released, the
// context is deleted.
//
// See also: https://registry.khronos.org/OpenCL/sdk/1.2/docs/man/xhtml/clReleaseContext.html
func ReleaseContext(context Context) error {
	if clReleaseContext == nil {
		return ErrNotLoaded
	}
	if status := clReleaseContext(uintptr(context)); status != success {
		return StatusError(status)
	}
	return nil
}

// dispatchContextError is the re-entry point behind contextErrorTrampoline.
// The driver supplies a NUL-terminated message, an optional binary buffer
// with its length, and the user-data word from registration. Both buffers
// are driver-owned and copied before the Go callback runs.
//
// Context error callbacks are not one-shot: the handle stays registered.
func dispatchContextError(_ purego.CDecl, errorInfo *byte, privateInfo unsafe.Pointer, privateInfoLen uintptr, userData uintptr) {
	defer catchPanic("context error")
	notify, _ := handles.Lookup(userData).(ContextErrorCallback)
	if notify == nil {
		return
	}
	notify(goString(errorInfo), goBytes(privateInfo, privateInfoLen))
}
