//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"testing"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminateContext(t *testing.T) {
	if !TerminateContextSupported {
		// Compiled without the khr_terminate_context tag: the shim
		// reports an invalid platform without touching native code.
		err := TerminateContext(0xDEAD, Context(0x1))
		assert.Equal(t, ErrInvalidPlatform, err)
		return
	}

	// With the shim compiled in, the raw extension pointer is invoked
	// directly. Stand in for clTerminateContextKHR with a Go callback.
	var capturedContext uintptr
	fn := purego.NewCallback(func(context uintptr) int32 {
		capturedContext = context
		return success
	})
	require.NoError(t, TerminateContext(fn, Context(0x1000)))
	assert.Equal(t, uintptr(0x1000), capturedContext)

	failing := purego.NewCallback(func(context uintptr) int32 {
		return int32(ErrInvalidContext)
	})
	assert.Equal(t, ErrInvalidContext, TerminateContext(failing, Context(0x1000)))
}
