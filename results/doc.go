/*
Package results provides a Result type, the outcome of a computation that may
fail.

A Result is either a Success holding a value or a Failure holding an error.
Results are built from computations rather than from (value, error) pairs:

	res := results.From(func() *Config { return loadConfig(path) })

From treats three things as failure: a panic inside the computation, a
returned nil, and a returned error value. Panic values are normalized with
faults.Normalize, so a panic with a string becomes an error with that
message and a panic with an error keeps that very error.

Combinators (Map, FlatMap, Fold, Flatten) are package functions because Go
methods cannot introduce type parameters. Map re-runs the failure detection
on the mapped value. Only Flatten and the accessors Get and Err leave the
pipeline by panicking; everything else is total.

A Result converts into an options.Option (dropping the error) or an
eithers.Either with the error on the left.

PromiseOf and Promise await a futures.Future and classify its outcome the
same way.
*/
package results

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outcome.results'.
func tracer() tracing.Trace {
	return tracing.Select("outcome.results")
}
