package futures

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outcome.futures'.
func tracer() tracing.Trace {
	return tracing.Select("outcome.futures")
}
