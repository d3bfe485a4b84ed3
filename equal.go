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

// Equal reports whether two Outcomes hold the same variant and payloads
// that compare equal under the payload types' own equality. An Ok is never
// equal to an Err, regardless of payload values.
//
// For comparable payload types the == operator on Outcomes is equivalent,
// since construction always leaves the inactive payload at its zero value.
func Equal[T, E comparable](a, b Outcome[T, E]) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == KindOk {
		return a.value == b.value
	}
	return a.err == b.err
}
