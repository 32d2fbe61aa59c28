//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cl

import "testing"

// stub replaces a registered binding function with a fake driver entry
// point for the duration of one test. The binding vars are nil on machines
// without an OpenCL runtime, so the fake also makes the wrapper reachable.
func stub[T any](t *testing.T, fn *T, fake T) {
	t.Helper()
	old := *fn
	*fn = fake
	t.Cleanup(func() { *fn = old })
}
