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
	"fmt"

	"github.com/blinklabs-io/gotransact/ledger/common"
	"github.com/blinklabs-io/gotransact/msgpack"
)

// Encode returns the canonical encoding of the transaction. The result does
// not include the "TX" domain separator.
func Encode(tx Transaction) ([]byte, error) {
	m, err := tx.encodeMap()
	if err != nil {
		return nil, err
	}
	data, err := m.Encode()
	if err != nil {
		return nil, common.EncodingError{Err: err}
	}
	return data, nil
}

// EncodeWithPrefix returns the canonical encoding prefixed with the "TX"
// domain separator. This is the payload that gets signed.
func EncodeWithPrefix(tx Transaction) ([]byte, error) {
	data, err := Encode(tx)
	if err != nil {
		return nil, err
	}
	return SigningPayloadFromBytes(data), nil
}

// EncodeTransactions encodes each transaction in order
func EncodeTransactions(txs []Transaction) ([][]byte, error) {
	ret := make([][]byte, 0, len(txs))
	for i, tx := range txs {
		data, err := Encode(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		ret = append(ret, data)
	}
	return ret, nil
}

func (tx Transaction) encodeMap() (*msgpack.Map, error) {
	if err := tx.checkEncodable(); err != nil {
		return nil, err
	}
	m := msgpack.NewMap().
		String(keyType, string(tx.Type)).
		Fixed(keySender, tx.Sender[:]).
		Uint(keyFee, tx.Fee).
		Uint(keyFirstValid, tx.FirstValid).
		Uint(keyLastValid, tx.LastValid).
		Fixed(keyGenesisHash, tx.GenesisHash[:]).
		String(keyGenesisId, tx.GenesisId).
		Bytes(keyNote, tx.Note).
		Fixed(keyLease, tx.Lease[:]).
		Fixed(keyRekeyTo, tx.RekeyTo[:]).
		Fixed(keyGroup, tx.Group[:])
	switch tx.Type {
	case TxTypePayment:
		tx.Payment.encode(m)
	case TxTypeAssetTransfer:
		tx.AssetTransfer.encode(m)
	}
	return m, nil
}

func (tx Transaction) checkEncodable() error {
	if tx.Type == "" {
		return common.EncodingError{
			Field: keyType,
			Err:   common.ErrMissingField,
		}
	}
	if !tx.Type.Supported() {
		return common.EncodingError{
			Field: keyType,
			Err:   fmt.Errorf("%w: %s", common.ErrUnsupportedType, tx.Type),
		}
	}
	if (tx.Payment != nil) != (tx.Type == TxTypePayment) ||
		(tx.AssetTransfer != nil) != (tx.Type == TxTypeAssetTransfer) {
		return common.EncodingError{
			Field: keyType,
			Err:   fmt.Errorf("%w: %s", common.ErrPayloadMismatch, tx.Type),
		}
	}
	if tx.Sender.IsZero() {
		return common.EncodingError{
			Field: keySender,
			Err:   common.ErrMissingField,
		}
	}
	if tx.FirstValid == 0 {
		return common.EncodingError{
			Field: keyFirstValid,
			Err:   common.ErrMissingField,
		}
	}
	if tx.LastValid == 0 {
		return common.EncodingError{
			Field: keyLastValid,
			Err:   common.ErrMissingField,
		}
	}
	return nil
}
