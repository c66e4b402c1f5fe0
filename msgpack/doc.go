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

// Package msgpack provides the canonical MessagePack map encoding used for
// transaction wire bytes.
//
// It wraps github.com/vmihailenco/msgpack/v5 and only exposes what the
// ledger needs: maps with short string keys whose values are unsigned
// integers, strings, byte strings, lists of byte strings and nested maps.
//
// # Encoding
//
// A Map collects key/value pairs. Each adder applies its own zero-value rule
// and drops the entry when the value is empty, so callers never encode
// absent fields:
//
//	data, err := msgpack.NewMap().
//	    String("type", "pay").
//	    Uint("fee", 1000).
//	    Bytes("note", nil). // omitted
//	    Encode()
//
// Encode sorts keys bytewise and always picks the smallest header for each
// map, string, byte string and integer, so equal maps produce equal bytes.
//
// # Decoding
//
// DecodeMap walks one top-level map and hands each key to a callback along
// with a Decoder positioned at the value. The typed readers on Decoder are
// strict: a byte string is not accepted where a string is expected, negative
// numbers, floats, nil and extension values are rejected. Duplicate keys and
// bytes after the map are errors.
package msgpack
