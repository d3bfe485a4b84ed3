// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package outcome

// The transformation operators live at package level since Go methods
// cannot introduce new type parameters, and all of them change one of the
// payload types. Callbacks are expected to be synchronous and total; a
// panic inside a callback propagates to the caller unmodified.

// Map applies f to the success payload, yielding a new Outcome with the
// transformed value. On the Err variant the error passes through unchanged
// and f is never invoked.
func Map[T, E, U any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	if o.kind != KindOk {
		return Err[U, E](o.err)
	}
	return Ok[U, E](f(o.value))
}

// MapErr applies f to the error payload, passing successes through
// unchanged.
func MapErr[T, E, F any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	if o.kind != KindErr {
		return Ok[T, F](o.value)
	}
	return Err[T, F](f(o.err))
}

// AndThen chains a fallible continuation: on the Ok variant it applies f
// to the success payload and returns f's Outcome directly, so sequencing
// never nests Outcomes. On the Err variant it short-circuits without
// invoking f, which lets a chain of fallible steps propagate its first
// failure automatically.
func AndThen[T, E, U any](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	if o.kind != KindOk {
		return Err[U, E](o.err)
	}
	return f(o.value)
}

// OrElse is the error-side counterpart of AndThen: f runs only on the Err
// variant and may recover into a success or substitute a new error, while
// successes short-circuit past it unchanged.
func OrElse[T, E, F any](o Outcome[T, E], f func(E) Outcome[T, F]) Outcome[T, F] {
	if o.kind != KindErr {
		return Ok[T, F](o.value)
	}
	return f(o.err)
}

// Fold collapses an Outcome into a single value by applying exactly one of
// the two functions to the payload held.
func Fold[T, E, U any](o Outcome[T, E], onOk func(T) U, onErr func(E) U) U {
	if o.kind == KindOk {
		return onOk(o.value)
	}
	return onErr(o.err)
}

// Match invokes exactly one of the two callbacks with the payload held,
// for callers that branch for effect rather than for a value.
func (o Outcome[T, E]) Match(onOk func(T), onErr func(E)) {
	if o.kind == KindOk {
		onOk(o.value)
	} else {
		onErr(o.err)
	}
}
