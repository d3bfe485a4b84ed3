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

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstruction is reported by New when zero or two payloads
	// are supplied. An outcome is exactly one of success and failure;
	// anything else is rejected before an Outcome exists.
	ErrInvalidConstruction = errors.New("outcome requires exactly one of a success or an error payload")

	// ErrUnwrapOnError marks a call of Unwrap or Expect against the Err
	// variant.
	ErrUnwrapOnError = errors.New("unwrap called on the error variant")

	// ErrUnwrapOnSuccess marks a call of UnwrapErr against the Ok variant.
	ErrUnwrapOnSuccess = errors.New("unwrap-err called on the success variant")
)

// ExtractionError is the panic value produced when an extraction method is
// applied to the variant it does not support. Such a panic signals a logic
// defect in the caller, not a data problem. The error carries the payload
// of the variant actually held, and errors.Is resolves it to
// ErrUnwrapOnError or ErrUnwrapOnSuccess accordingly.
type ExtractionError struct {
	sentinel error

	// Payload is the payload of the variant the Outcome actually held.
	Payload any

	// Context is the optional message supplied via Expect.
	Context string
}

func (e *ExtractionError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %v: %v", e.Context, e.sentinel, e.Payload)
	}
	return fmt.Sprintf("%v: %v", e.sentinel, e.Payload)
}

func (e *ExtractionError) Unwrap() error {
	return e.sentinel
}
