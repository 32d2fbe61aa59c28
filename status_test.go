//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	assert.EqualError(t, ErrDeviceNotFound, "cl: CL_DEVICE_NOT_FOUND (-1)")
	assert.EqualError(t, ErrInvalidPlatform, "cl: CL_INVALID_PLATFORM (-32)")
	assert.EqualError(t, ErrInvalidDevicePartitionCount, "cl: CL_INVALID_DEVICE_PARTITION_COUNT (-68)")

	// Codes this layer has no name for still travel verbatim.
	unknown := StatusError(-9999)
	assert.EqualError(t, unknown, "cl: unknown OpenCL status (-9999)")
	assert.Equal(t, int32(-9999), unknown.Code())
}

func TestStatusErrorIsComparable(t *testing.T) {
	var err error = StatusError(-5)
	assert.ErrorIs(t, err, ErrOutOfResources)
}
