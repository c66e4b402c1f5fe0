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

package msgpack

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	_msgpack "github.com/vmihailenco/msgpack/v5"
)

type mapEntry struct {
	key   string
	write func(*_msgpack.Encoder) error
}

// Map builds a canonical MessagePack map. The zero value is ready to use.
type Map struct {
	entries []mapEntry
}

func NewMap() *Map {
	return &Map{}
}

func (m *Map) add(key string, write func(*_msgpack.Encoder) error) *Map {
	m.entries = append(m.entries, mapEntry{key: key, write: write})
	return m
}

// Uint adds an unsigned integer, omitted when zero
func (m *Map) Uint(key string, v uint64) *Map {
	if v == 0 {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		return enc.EncodeUint(v)
	})
}

// String adds a string, omitted when empty
func (m *Map) String(key string, v string) *Map {
	if v == "" {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		return enc.EncodeString(v)
	})
}

// Bytes adds a byte string, omitted when empty
func (m *Map) Bytes(key string, v []byte) *Map {
	if len(v) == 0 {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		return enc.EncodeBytes(v)
	})
}

// Fixed adds a fixed-size byte string such as a key or digest. It is omitted
// when every byte is zero.
func (m *Map) Fixed(key string, v []byte) *Map {
	if isZero(v) {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		return enc.EncodeBytes(v)
	})
}

// Raw adds an already encoded value, omitted when empty
func (m *Map) Raw(key string, v []byte) *Map {
	if len(v) == 0 {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		_, err := enc.Writer().Write(v)
		return err
	})
}

// BytesList adds an array of byte strings, omitted when the list is empty
func (m *Map) BytesList(key string, v [][]byte) *Map {
	if len(v) == 0 {
		return m
	}
	return m.add(key, func(enc *_msgpack.Encoder) error {
		if err := enc.EncodeArrayLen(len(v)); err != nil {
			return err
		}
		for _, item := range v {
			if err := enc.EncodeBytes(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// Len returns the number of entries that will be encoded
func (m *Map) Len() int {
	return len(m.entries)
}

// Encode returns the canonical encoding of the map
func (m *Map) Encode() ([]byte, error) {
	entries := slices.Clone(m.entries)
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		return strings.Compare(a.key, b.key)
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].key == entries[i-1].key {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, entries[i].key)
		}
	}
	var buf bytes.Buffer
	enc := _msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(entries)); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := enc.EncodeString(entry.key); err != nil {
			return nil, err
		}
		if err := entry.write(enc); err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.key, err)
		}
	}
	return buf.Bytes(), nil
}

func isZero(v []byte) bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}
