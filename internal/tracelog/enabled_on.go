//go:build gonestrace

package tracelog

// Enabled is true only in builds compiled with -tags gonestrace.
const Enabled = true
