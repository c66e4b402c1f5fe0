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
	"errors"

	_msgpack "github.com/vmihailenco/msgpack/v5"
)

// Create an alias for RawMessage for convenience
type RawMessage = _msgpack.RawMessage

// MaxMapEntries limits the number of entries accepted in a decoded map
const MaxMapEntries = 64

var (
	ErrNotMap        = errors.New("value is not a map")
	ErrTrailingBytes = errors.New("trailing bytes after value")
	ErrDuplicateKey  = errors.New("duplicate map key")
	ErrTypeMismatch  = errors.New("unexpected value type")
	ErrKeyNotFound   = errors.New("key not found")
	ErrTooManyItems  = errors.New("too many items")
)
