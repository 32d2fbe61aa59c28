// Package handles provides a thread-safe handle table for Go callbacks
// that need to be referenced from native OpenCL callbacks.
//
// The native API stores a raw void* user-data word alongside a registered
// callback and hands it back, uninterpreted, when the callback fires. Go
// pointers must not cross that boundary, so registration stores the
// callback here and passes the returned uintptr id as user data. The
// dispatch path resolves the id back to the live callback.
//
// Handle 0 is never issued: it is the native null, and a null user-data
// word means no callback was installed at all.
package handles

import (
	"sync"
)

var (
	mu     sync.RWMutex
	table  = make(map[uintptr]any)
	nextID uintptr = 1
)

// Register stores a Go callback and returns a non-zero handle id.
// The id can be safely stored in native memory as a void* or uintptr_t.
// The callback remains reachable until Take or Unregister is called.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	table[id] = v
	return id
}

// Lookup retrieves a callback by its handle id without removing it.
// Returns nil if the handle is not registered. Used for callback kinds
// that can fire more than once (context error notifications).
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return table[id]
}

// Take retrieves a callback and removes it in one step. Used for one-shot
// callback kinds (event status, memory destructor, program completion,
// native kernel), where the native library invokes the registered function
// exactly once. Returns nil if the handle is not registered; a concurrent
// Take for the same id yields the callback to exactly one caller.
//
// Thread-safe.
func Take(id uintptr) any {
	mu.Lock()
	defer mu.Unlock()
	v, ok := table[id]
	if !ok {
		return nil
	}
	delete(table, id)
	return v
}

// Unregister removes a handle and allows the callback to be garbage
// collected. Called when a registration fails after the handle was created.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(table, id)
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing handle leaks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(table)
}
