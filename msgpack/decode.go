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

	_msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Decoder reads values from a MessagePack map, one field at a time
type Decoder struct {
	r   *bytes.Reader
	dec *_msgpack.Decoder
}

func newDecoder(data []byte) *Decoder {
	r := bytes.NewReader(data)
	return &Decoder{
		r:   r,
		dec: _msgpack.NewDecoder(r),
	}
}

// DecodeMap decodes a single map from data, calling fn for each key. The
// callback must consume exactly one value from d. Duplicate keys and any
// bytes following the map result in an error.
func DecodeMap(data []byte, fn func(key string, d *Decoder) error) error {
	d := newDecoder(data)
	if err := d.Map(fn); err != nil {
		return err
	}
	if d.r.Len() > 0 {
		return fmt.Errorf("%w: %d", ErrTrailingBytes, d.r.Len())
	}
	return nil
}

// Map decodes a nested map at the current position
func (d *Decoder) Map(fn func(key string, d *Decoder) error) error {
	code, err := d.dec.PeekCode()
	if err != nil {
		return err
	}
	if !msgpcode.IsFixedMap(code) && code != msgpcode.Map16 &&
		code != msgpcode.Map32 {
		return fmt.Errorf("%w: found code 0x%02x", ErrNotMap, code)
	}
	mapLen, err := d.dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if mapLen > MaxMapEntries || mapLen*2 > d.r.Len() {
		return fmt.Errorf("%w: map with %d entries", ErrTooManyItems, mapLen)
	}
	seen := make(map[string]struct{}, mapLen)
	for range mapLen {
		key, err := d.String()
		if err != nil {
			return fmt.Errorf("map key: %w", err)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
		if err := fn(key, d); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) expect(kind string, match func(byte) bool) error {
	code, err := d.dec.PeekCode()
	if err != nil {
		return err
	}
	if !match(code) {
		return fmt.Errorf(
			"%w: expected %s, found code 0x%02x",
			ErrTypeMismatch,
			kind,
			code,
		)
	}
	return nil
}

func isUint(c byte) bool {
	return c <= msgpcode.PosFixedNumHigh ||
		(c >= msgpcode.Uint8 && c <= msgpcode.Uint64)
}

func isArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 ||
		c == msgpcode.Array32
}

// Uint reads an unsigned integer
func (d *Decoder) Uint() (uint64, error) {
	if err := d.expect("unsigned integer", isUint); err != nil {
		return 0, err
	}
	return d.dec.DecodeUint64()
}

// String reads a string
func (d *Decoder) String() (string, error) {
	if err := d.expect("string", msgpcode.IsString); err != nil {
		return "", err
	}
	return d.dec.DecodeString()
}

// Bytes reads a byte string. An empty byte string is returned as nil.
func (d *Decoder) Bytes() ([]byte, error) {
	if err := d.expect("byte string", msgpcode.IsBin); err != nil {
		return nil, err
	}
	ret, err := d.dec.DecodeBytes()
	if err != nil {
		return nil, err
	}
	if len(ret) == 0 {
		return nil, nil
	}
	return ret, nil
}

// Fixed reads a byte string that must be exactly size bytes long
func (d *Decoder) Fixed(size int) ([]byte, error) {
	ret, err := d.Bytes()
	if err != nil {
		return nil, err
	}
	if len(ret) != size {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, found %d",
			ErrTypeMismatch,
			size,
			len(ret),
		)
	}
	return ret, nil
}

// BytesList reads an array of byte strings, each exactly size bytes long
func (d *Decoder) BytesList(size int) ([][]byte, error) {
	if err := d.expect("array", isArray); err != nil {
		return nil, err
	}
	listLen, err := d.dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if listLen > d.r.Len() {
		return nil, fmt.Errorf("%w: array with %d items", ErrTooManyItems, listLen)
	}
	ret := make([][]byte, 0, listLen)
	for range listLen {
		item, err := d.Fixed(size)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

// Raw returns the encoded bytes of the next value without interpreting them
func (d *Decoder) Raw() (RawMessage, error) {
	return d.dec.DecodeRaw()
}

// Skip discards the next value
func (d *Decoder) Skip() error {
	return d.dec.Skip()
}

// PeekMapString returns the string stored under key in the map encoded in
// data. Other values are skipped without being validated.
func PeekMapString(data []byte, key string) (string, error) {
	var ret string
	found := false
	d := newDecoder(data)
	err := d.Map(func(k string, d *Decoder) error {
		if k != key {
			return d.Skip()
		}
		val, err := d.String()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		ret = val
		found = true
		return nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return ret, nil
}
