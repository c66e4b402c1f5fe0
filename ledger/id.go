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

package ledger

import (
	"github.com/blinklabs-io/gotransact/ledger/common"
)

// RawId returns the transaction id: the SHA-512/256 hash of the encoded
// transaction under the "TX" domain separator
func (tx Transaction) RawId() (common.Digest, error) {
	data, err := Encode(tx)
	if err != nil {
		return common.Digest{}, err
	}
	return common.HashWithPrefix(common.HashPrefixTransaction, data), nil
}

// Id returns the base32 form of the transaction id
func (tx Transaction) Id() (string, error) {
	rawId, err := tx.RawId()
	if err != nil {
		return "", err
	}
	return rawId.String(), nil
}
