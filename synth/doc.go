// Package synth produces random expressions together with an assignment
// that satisfies them.
//
// [Synthesize] draws trees from a [gen.Generator] until one is true under
// some row of the truth table. The loop is bounded by a maximum number of
// attempts and by its context; when either runs out it returns a
// [*SynthesisTimeoutError].
package synth
