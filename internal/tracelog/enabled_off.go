//go:build !gonestrace

package tracelog

// Enabled is false in the default build; tracing is compiled out.
const Enabled = false
