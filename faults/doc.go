// Package faults turns arbitrary failure indicators into plain Go errors.
//
// Panics recovered from user code, rejection reasons of futures and error
// values returned from computations all pass through Normalize before they
// are stored in a failure. Normalize keeps errors as they are, wraps strings,
// and maps everything else onto ErrUnknown.
//
// The package also defines the panic value used for illegal-state access, i.e.
// calling an accessor that is only valid for the other variant. Those panics
// are programming errors and are never turned into failures.
package faults

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outcome.faults'.
func tracer() tracing.Trace {
	return tracing.Select("outcome.faults")
}
