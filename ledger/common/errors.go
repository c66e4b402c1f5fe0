// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"fmt"
)

var (
	// Sentinels for each error kind so callers can use errors.Is
	ErrDecoding   = errors.New("transaction decoding failed")
	ErrEncoding   = errors.New("transaction encoding failed")
	ErrAddress    = errors.New("invalid address")
	ErrGrouping   = errors.New("transaction grouping failed")
	ErrEnvelope   = errors.New("signature envelope failed")
	ErrValidation = errors.New("transaction validation failed")

	ErrZeroLengthInput = errors.New("attempted to decode 0 bytes")
	ErrMissingField    = errors.New("missing required field")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnsupportedType = errors.New("unsupported transaction type")
	ErrNonCanonical    = errors.New("encoding is not canonical")
	ErrPayloadMismatch = errors.New(
		"transaction payload does not match transaction type",
	)
	ErrFeeOverflow = errors.New("fee calculation overflows uint64")

	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrMalformedAddress = errors.New("malformed address")

	ErrAlreadyGrouped = errors.New("transaction already has a group")
	ErrEmptyGroup     = errors.New("transaction group is empty")
	ErrGroupTooLarge  = errors.New("transaction group is too large")
	ErrGroupMismatch  = errors.New("group id does not match members")

	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrSignatureMismatch      = errors.New("signature does not match")
	ErrInvalidSigningKey      = errors.New("invalid signing key")
	ErrSignatureCount         = errors.New(
		"number of signatures does not match number of transactions",
	)

	ErrInvalidValidityWindow = errors.New("first valid round after last valid round")
	ErrNoteTooLarge          = errors.New("note too large")
)

// DecodingError indicates bytes that are not a valid canonical transaction
type DecodingError struct {
	Field string
	Err   error
}

func (e DecodingError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e DecodingError) Unwrap() error { return e.Err }

func (DecodingError) Is(target error) bool {
	return target == ErrDecoding
}

// EncodingError indicates a transaction value that cannot be encoded
type EncodingError struct {
	Field string
	Err   error
}

func (e EncodingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("encode transaction: %v", e.Err)
	}
	return fmt.Sprintf("encode transaction field %q: %v", e.Field, e.Err)
}

func (e EncodingError) Unwrap() error { return e.Err }

func (EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// AddressError indicates a malformed public key or address string
type AddressError struct {
	Address string
	Err     error
}

func (e AddressError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("invalid address: %v", e.Err)
	}
	return fmt.Sprintf("invalid address %q: %v", e.Address, e.Err)
}

func (e AddressError) Unwrap() error { return e.Err }

func (AddressError) Is(target error) bool {
	return target == ErrAddress
}

// GroupingError indicates a transaction group that cannot be assigned an id.
// Index is the offending member, or -1 when the error applies to the whole group.
type GroupingError struct {
	Index int
	Err   error
}

func (e GroupingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("group transactions: %v", e.Err)
	}
	return fmt.Sprintf("group transactions: transaction %d: %v", e.Index, e.Err)
}

func (e GroupingError) Unwrap() error { return e.Err }

func (GroupingError) Is(target error) bool {
	return target == ErrGrouping
}

// EnvelopeError indicates a signature or signed transaction that cannot be
// attached, split or verified
type EnvelopeError struct {
	Err error
}

func (e EnvelopeError) Error() string {
	return fmt.Sprintf("signed transaction: %v", e.Err)
}

func (e EnvelopeError) Unwrap() error { return e.Err }

func (EnvelopeError) Is(target error) bool {
	return target == ErrEnvelope
}

// ValidationError indicates a well-formed transaction that breaks a ledger rule
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validate transaction field %q: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error { return e.Err }

func (ValidationError) Is(target error) bool {
	return target == ErrValidation
}
