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
	"bytes"
	"fmt"
)

const (
	AddressSize         = PublicKeySize
	AddressChecksumSize = 4

	// Length of the string form of an address
	AddressStringLength = 58
)

// Address is an account public key. The checksum only exists in the string form.
type Address [AddressSize]byte

// NewAddressFromPublicKey returns an Address for the provided Ed25519 public key
func NewAddressFromPublicKey(pk []byte) (Address, error) {
	if len(pk) != AddressSize {
		return Address{}, AddressError{
			Err: fmt.Errorf(
				"%w: public key must be %d bytes, got %d",
				ErrMalformedAddress,
				AddressSize,
				len(pk),
			),
		}
	}
	var ret Address
	copy(ret[:], pk)
	return ret, nil
}

// NewAddress returns an Address based on the provided address string
func NewAddress(addr string) (Address, error) {
	if len(addr) != AddressStringLength {
		return Address{}, AddressError{
			Address: addr,
			Err: fmt.Errorf(
				"%w: expected %d characters, got %d",
				ErrMalformedAddress,
				AddressStringLength,
				len(addr),
			),
		}
	}
	decoded, err := base32NoPad.DecodeString(addr)
	if err != nil {
		return Address{}, AddressError{
			Address: addr,
			Err:     fmt.Errorf("%w: %w", ErrMalformedAddress, err),
		}
	}
	if len(decoded) != AddressSize+AddressChecksumSize {
		return Address{}, AddressError{
			Address: addr,
			Err: fmt.Errorf(
				"%w: decoded to %d bytes",
				ErrMalformedAddress,
				len(decoded),
			),
		}
	}
	var ret Address
	copy(ret[:], decoded[:AddressSize])
	checksum := ret.Checksum()
	if !bytes.Equal(checksum, decoded[AddressSize:]) {
		return Address{}, AddressError{
			Address: addr,
			Err:     ErrChecksumMismatch,
		}
	}
	// The final character carries two unused bits that must be zero
	if ret.String() != addr {
		return Address{}, AddressError{
			Address: addr,
			Err:     ErrChecksumMismatch,
		}
	}
	return ret, nil
}

// Checksum returns the last 4 bytes of the SHA-512/256 hash of the public key
func (a Address) Checksum() []byte {
	hash := Sha512_256Hash(a[:])
	return hash[DigestSize-AddressChecksumSize:]
}

func (a Address) PublicKey() []byte {
	return a[:]
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the base32 encoding of the public key followed by its checksum
func (a Address) String() string {
	data := make([]byte, 0, AddressSize+AddressChecksumSize)
	data = append(data, a[:]...)
	data = append(data, a.Checksum()...)
	return base32NoPad.EncodeToString(data)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	tmp, err := NewAddress(string(text))
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}
