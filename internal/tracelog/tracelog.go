// Package tracelog provides an opt-in per-instruction trace for
// debugging, built on the standard library's log package the way the
// rest of this core's ambient logging is. Tracing is gated entirely at
// compile time: Enabled is a const flipped by the gonestrace build tag
// (see enabled_on.go / enabled_off.go), so a build without the tag
// never even evaluates the trace line and carries no runtime cost
// beyond the single boolean checks callers make before formatting one.
package tracelog

import "log"

// Tracer emits one line per CPU instruction executed.
type Tracer struct {
	log *log.Logger
}

// New returns a Tracer writing through l. Pass nil to use log.Default().
func New(l *log.Logger) *Tracer {
	if l == nil {
		l = log.Default()
	}
	return &Tracer{log: l}
}

// Line logs one pre-formatted instruction trace line. Callers should
// guard calls to Line (and any formatting that feeds it) with Enabled,
// so the work is skipped entirely in builds without the gonestrace tag.
func (t *Tracer) Line(s string) {
	t.log.Println(s)
}
