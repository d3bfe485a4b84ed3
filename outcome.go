// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package outcome provides a two-variant container representing the result
// of an operation that can either succeed with a value of type T or fail
// with an error value of type E. It is intended for code that wants failure
// to be an explicit, inspectable value rather than a side channel. This
// may, for instance, be useful for channels or containers.
package outcome

import "fmt"

// Kind identifies the variant held by an Outcome.
type Kind uint8

const (
	// KindOk marks an Outcome holding a success payload.
	KindOk Kind = iota
	// KindErr marks an Outcome holding an error payload.
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindErr:
		return "Err"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Outcome is a tagged union over two mutually exclusive states: a success
// carrying a value of type T, or an error carrying a value of type E. The
// payload types are independent of each other, and E is not required to be
// Go's error type. Outcomes are immutable values: no operation changes the
// variant or payload of an existing instance, transformations always
// produce a new Outcome. Sharing an Outcome between goroutines is safe.
//
// The variant tag is authoritative; the payload of the variant not held is
// always the zero value. The zero value of the type itself is Ok holding
// T's zero value.
type Outcome[T, E any] struct {
	kind  Kind
	value T
	err   E
}

// Ok creates an Outcome representing a successful result with the given
// value.
func Ok[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{kind: KindOk, value: value}
}

// Err creates an Outcome representing a failed result with the given error
// value.
func Err[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{kind: KindErr, err: err}
}

// New constructs an Outcome from optional payloads, of which exactly one
// must be provided. A nil pointer marks an absent argument, so every
// payload value, including zero values, remains expressible. If both or
// neither payload is provided, New reports ErrInvalidConstruction and no
// Outcome is produced.
//
// Validating here is what lets every other operation assume the holds-one
// invariant without re-checking it.
func New[T, E any](success *T, failure *E) (Outcome[T, E], error) {
	if (success == nil) == (failure == nil) {
		return Outcome[T, E]{}, ErrInvalidConstruction
	}
	if success != nil {
		return Ok[T, E](*success), nil
	}
	return Err[T, E](*failure), nil
}

// IsOk returns true if the Outcome holds a success payload.
func (o Outcome[T, E]) IsOk() bool {
	return o.kind == KindOk
}

// IsErr returns true if the Outcome holds an error payload.
func (o Outcome[T, E]) IsErr() bool {
	return o.kind == KindErr
}

// Kind returns the variant tag, for callers that switch exhaustively over
// the two cases rather than using the boolean predicates.
func (o Outcome[T, E]) Kind() Kind {
	return o.kind
}

// Unwrap returns the success payload. It panics with an *ExtractionError
// wrapping ErrUnwrapOnError if the Outcome holds an error; it is only
// appropriate where the caller has already established, or chooses to
// assert, the Ok case.
func (o Outcome[T, E]) Unwrap() T {
	if o.kind != KindOk {
		panic(&ExtractionError{sentinel: ErrUnwrapOnError, Payload: o.err})
	}
	return o.value
}

// UnwrapErr returns the error payload. It panics with an *ExtractionError
// wrapping ErrUnwrapOnSuccess if the Outcome holds a success.
func (o Outcome[T, E]) UnwrapErr() E {
	if o.kind != KindErr {
		panic(&ExtractionError{sentinel: ErrUnwrapOnSuccess, Payload: o.value})
	}
	return o.err
}

// UnwrapOr returns the success payload, or def if the Outcome holds an
// error. It never fails.
func (o Outcome[T, E]) UnwrapOr(def T) T {
	if o.kind != KindOk {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the success payload, or the result of applying
// fallback to the error payload. The fallback is only invoked on the Err
// variant.
func (o Outcome[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if o.kind != KindOk {
		return fallback(o.err)
	}
	return o.value
}

// Expect behaves like Unwrap, with msg attached to the failure for
// diagnostic context.
func (o Outcome[T, E]) Expect(msg string) T {
	if o.kind != KindOk {
		panic(&ExtractionError{sentinel: ErrUnwrapOnError, Payload: o.err, Context: msg})
	}
	return o.value
}

// String renders the Outcome as Ok(value) or Err(err).
func (o Outcome[T, E]) String() string {
	if o.kind == KindOk {
		return fmt.Sprintf("Ok(%v)", o.value)
	}
	return fmt.Sprintf("Err(%v)", o.err)
}
