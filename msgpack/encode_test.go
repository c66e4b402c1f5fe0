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

package msgpack_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gotransact/msgpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	name   string
	build  func() *msgpack.Map
	hexStr string
}

var encodeTests = []encodeTestDefinition{
	{
		name:   "empty map",
		build:  msgpack.NewMap,
		hexStr: "80",
	},
	{
		name: "keys sorted bytewise",
		build: func() *msgpack.Map {
			return msgpack.NewMap().Uint("b", 2).Uint("a", 1)
		},
		hexStr: "82a16101a16202",
	},
	{
		name: "zero values omitted",
		build: func() *msgpack.Map {
			return msgpack.NewMap().
				Uint("a", 0).
				String("b", "").
				Bytes("c", nil).
				Bytes("d", []byte{}).
				Fixed("e", make([]byte, 32)).
				Raw("f", nil).
				BytesList("g", nil)
		},
		hexStr: "80",
	},
	{
		name: "uint widths",
		build: func() *msgpack.Map {
			return msgpack.NewMap().
				Uint("a", 127).
				Uint("b", 200).
				Uint("c", 300).
				Uint("d", 70000).
				Uint("e", 1<<32)
		},
		hexStr: "85a1617fa162ccc8a163cd012ca164ce00011170a165cf0000000100000000",
	},
	{
		name: "byte string",
		build: func() *msgpack.Map {
			return msgpack.NewMap().Bytes("n", []byte{1, 2})
		},
		hexStr: "81a16ec4020102",
	},
	{
		name: "fixed with non-zero byte",
		build: func() *msgpack.Map {
			return msgpack.NewMap().Fixed("k", []byte{0, 0, 1})
		},
		hexStr: "81a16bc403000001",
	},
	{
		name: "bytes list",
		build: func() *msgpack.Map {
			return msgpack.NewMap().BytesList("t", [][]byte{{1}, {2}})
		},
		hexStr: "81a17492c40101c40102",
	},
	{
		name: "raw nested map",
		build: func() *msgpack.Map {
			return msgpack.NewMap().
				Raw("r", []byte{0x81, 0xa1, 0x61, 0x01}).
				String("q", "x")
		},
		hexStr: "82a171a178a17281a16101",
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		t.Run(test.name, func(t *testing.T) {
			data, err := test.build().Encode()
			require.NoError(t, err)
			assert.Equal(t, test.hexStr, hex.EncodeToString(data))
		})
	}
}

func TestEncodeDuplicateKey(t *testing.T) {
	_, err := msgpack.NewMap().Uint("a", 1).String("a", "b").Encode()
	require.ErrorIs(t, err, msgpack.ErrDuplicateKey)
}

func TestEncodeDuplicateOmittedKey(t *testing.T) {
	// An omitted value never becomes an entry
	data, err := msgpack.NewMap().Uint("a", 0).Uint("a", 1).Encode()
	require.NoError(t, err)
	assert.Equal(t, "81a16101", hex.EncodeToString(data))
}

func TestEncodeInsertionOrderIndependent(t *testing.T) {
	first, err := msgpack.NewMap().
		String("type", "pay").
		Uint("fee", 1000).
		Uint("fv", 1).
		Encode()
	require.NoError(t, err)
	second, err := msgpack.NewMap().
		Uint("fv", 1).
		String("type", "pay").
		Uint("fee", 1000).
		Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeLongString(t *testing.T) {
	str := make([]byte, 40)
	for i := range str {
		str[i] = 'x'
	}
	data, err := msgpack.NewMap().String("s", string(str)).Encode()
	require.NoError(t, err)
	// str8 header for strings of 32 bytes or more
	assert.Equal(t, []byte{0x81, 0xa1, 's', 0xd9, 40}, data[:5])
	assert.Len(t, data, 45)
}
