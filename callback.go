//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Trampoline table: one fixed native-callable stub per callback kind,
// created on first use and reused for every registration of that kind.
// The driver stores a raw function address with no capture information,
// so these must be static; per-registration identity travels in the
// user-data word instead (see internal/handles).
var (
	contextErrorTrampoline   = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchContextError) })
	eventStatusTrampoline    = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchEventStatus) })
	nativeKernelTrampoline   = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchNativeKernel) })
	memDestructorTrampoline  = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchMemDestructor) })
	programBuildTrampoline   = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchProgramBuild) })
	programCompileTrampoline = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchProgramCompile) })
	programLinkTrampoline    = sync.OnceValue(func() uintptr { return purego.NewCallback(dispatchProgramLink) })
)

var (
	panicHandlerMu sync.Mutex
	panicHandler   func(kind string, recovered any)
)

// SetCallbackPanicHandler installs a process-wide hook that receives the
// value recovered when a registered callback panics. kind names the
// callback kind ("event status", "program build", ...). Pass nil to restore
// the default, which writes a single line to stderr.
//
// A panic inside a callback must never unwind into the driver thread that
// invoked the trampoline; dispatch always recovers before returning.
func SetCallbackPanicHandler(h func(kind string, recovered any)) {
	panicHandlerMu.Lock()
	defer panicHandlerMu.Unlock()
	panicHandler = h
}

// catchPanic is deferred by every dispatch function.
func catchPanic(kind string) {
	r := recover()
	if r == nil {
		return
	}
	panicHandlerMu.Lock()
	h := panicHandler
	panicHandlerMu.Unlock()
	if h != nil {
		h(kind, r)
		return
	}
	fmt.Fprintf(os.Stderr, "cl: panic in %s callback: %v\n", kind, r)
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// goBytes copies n bytes of driver-owned memory. The driver may reuse the
// buffer once the callback returns, so the copy is mandatory.
func goBytes(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	buf := make([]byte, n)
	copy(buf, unsafe.Slice((*byte)(p), n))
	return buf
}

// cString returns a NUL-terminated copy of s, or nil for the empty string
// so that optional char* parameters receive native NULL.
func cString(s string) *byte {
	if s == "" {
		return nil
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}
