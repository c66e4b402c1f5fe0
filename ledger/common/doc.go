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

// Package common provides the types shared by the transaction codec.
//
// # Key Files by Purpose
//
//   - common.go: Digest, SHA-512/256 hashing with domain separators, size limits
//   - address.go: Address and its checksummed base32 string form
//   - errors.go: error kinds returned by the codec
//
// # Error Kinds
//
// Every error kind is a struct that wraps a detail sentinel and matches a kind
// sentinel, so both can be checked with errors.Is:
//
//	_, err := common.NewAddress(s)
//	if errors.Is(err, common.ErrAddress) && errors.Is(err, common.ErrChecksumMismatch) {
//	    // typo in the address
//	}
package common
