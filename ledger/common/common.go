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
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"fmt"
)

const (
	DigestSize    = sha512.Size256
	PublicKeySize = 32
	SignatureSize = 64

	// Maximum size of a transaction note, in bytes
	MaxNoteSize = 1024

	// Maximum number of transactions in an atomic group
	MaxTxGroupSize = 16
)

// HashPrefix is the domain separator prepended to data before hashing or signing
type HashPrefix string

const (
	HashPrefixTransaction HashPrefix = "TX"
	HashPrefixTxGroup     HashPrefix = "TG"
)

// Bytes returns the prefix as a new byte slice
func (p HashPrefix) Bytes() []byte {
	return []byte(p)
}

// base32 without padding, used for ids and addresses
var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

type Digest [DigestSize]byte

func NewDigest(data []byte) Digest {
	d := Digest{}
	copy(d[:], data)
	return d
}

// NewDigestFromString parses the base32 form returned by Digest.String
func NewDigestFromString(s string) (Digest, error) {
	decoded, err := base32NoPad.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest string: %w", err)
	}
	if len(decoded) != DigestSize {
		return Digest{}, fmt.Errorf(
			"invalid digest length: expected %d bytes, got %d",
			DigestSize,
			len(decoded),
		)
	}
	return NewDigest(decoded), nil
}

// String returns the base32 (no padding) encoding of the digest
func (d Digest) String() string {
	return base32NoPad.EncodeToString(d[:])
}

func (d Digest) Bytes() []byte {
	return d[:]
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

// MarshalText encodes the digest as standard base64, which is how genesis
// hashes and group ids are usually presented. A zero digest is empty.
func (d Digest) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(base64.StdEncoding.EncodeToString(d[:])), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Digest{}
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}
	if len(decoded) != DigestSize {
		return fmt.Errorf(
			"invalid digest length: expected %d bytes, got %d",
			DigestSize,
			len(decoded),
		)
	}
	*d = NewDigest(decoded)
	return nil
}

// Signature is an Ed25519 signature over a signing payload
type Signature [SignatureSize]byte

// NewSignature returns a Signature from the provided bytes, which must be
// exactly SignatureSize long
func NewSignature(data []byte) (Signature, error) {
	if len(data) != SignatureSize {
		return Signature{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidSignatureLength,
			SignatureSize,
			len(data),
		)
	}
	return Signature(data), nil
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(s[:])), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}
	tmp, err := NewSignature(decoded)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

// Sha512_256Hash generates a SHA-512/256 hash from the provided data
func Sha512_256Hash(data []byte) Digest {
	return Digest(sha512.Sum512_256(data))
}

// HashWithPrefix hashes data after prepending the provided domain separator
func HashWithPrefix(prefix HashPrefix, data []byte) Digest {
	h := sha512.New512_256()
	h.Write(prefix.Bytes())
	h.Write(data)
	return NewDigest(h.Sum(nil))
}
