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

import "fmt"

// Helpers for the E = error specialization, bridging code written against
// Go's conventional (value, error) return pairs.

// Of converts a (value, error) pair into an Outcome. A non-nil error takes
// precedence and the value is discarded.
func Of[T any](value T, err error) Outcome[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Get returns the contained payloads in (value, error) form. Using this
// function forces the caller to handle the error the conventional way. On
// the Ok variant the returned error is nil; on the Err variant the value
// is T's zero value.
func Get[T any](o Outcome[T, error]) (T, error) {
	if o.kind != KindOk {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}

// WithContext prefixes the error payload with msg, wrapping it so that
// errors.Is and errors.As still reach the original error. Successes pass
// through unchanged.
func WithContext[T any](o Outcome[T, error], msg string) Outcome[T, error] {
	if o.kind != KindErr {
		return o
	}
	return Err[T, error](fmt.Errorf("%s: %w", msg, o.err))
}
