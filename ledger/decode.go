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
	"bytes"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotransact/ledger/common"
	"github.com/blinklabs-io/gotransact/msgpack"
)

type fieldDecoder func(*decodeState, *msgpack.Decoder) error

var headerFieldDecoders = map[string]fieldDecoder{
	keyType: func(s *decodeState, d *msgpack.Decoder) error {
		val, err := d.String()
		s.tx.Type = TransactionType(val)
		return err
	},
	keySender: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.tx.Sender)
	},
	keyFee: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.tx.Fee, err = d.Uint()
		return err
	},
	keyFirstValid: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.tx.FirstValid, err = d.Uint()
		return err
	},
	keyLastValid: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.tx.LastValid, err = d.Uint()
		return err
	},
	keyGenesisHash: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeDigest(d, &s.tx.GenesisHash)
	},
	keyGenesisId: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.tx.GenesisId, err = d.String()
		return err
	},
	keyNote: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.tx.Note, err = d.Bytes()
		return err
	},
	keyLease: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeDigest(d, &s.tx.Lease)
	},
	keyRekeyTo: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.tx.RekeyTo)
	},
	keyGroup: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeDigest(d, &s.tx.Group)
	},
}

// Payload field decoders by the transaction type that owns them
var payloadFieldDecoders = map[TransactionType]map[string]fieldDecoder{
	TxTypePayment:       paymentFieldDecoders,
	TxTypeAssetTransfer: assetTransferFieldDecoders,
}

type payloadField struct {
	key   string
	owner TransactionType
}

type decodeState struct {
	tx            Transaction
	payment       PaymentFields
	assetTransfer AssetTransferFields
	payloadFields []payloadField
	unknownFields []string
}

func (s *decodeState) decodeField(key string, d *msgpack.Decoder) error {
	decodeFunc, ok := headerFieldDecoders[key]
	if !ok {
		for owner, decoders := range payloadFieldDecoders {
			if tmp, ok := decoders[key]; ok {
				decodeFunc = tmp
				s.payloadFields = append(
					s.payloadFields,
					payloadField{key: key, owner: owner},
				)
				break
			}
		}
	}
	if decodeFunc == nil {
		// Unknown fields are reported once the type is known
		s.unknownFields = append(s.unknownFields, key)
		if err := d.Skip(); err != nil {
			return common.DecodingError{Field: key, Err: err}
		}
		return nil
	}
	if err := decodeFunc(s, d); err != nil {
		return common.DecodingError{Field: key, Err: err}
	}
	return nil
}

func (s *decodeState) finish() (Transaction, error) {
	if s.tx.Type == "" {
		return Transaction{}, common.DecodingError{
			Field: keyType,
			Err:   common.ErrMissingField,
		}
	}
	if !s.tx.Type.Supported() {
		return Transaction{}, common.DecodingError{
			Field: keyType,
			Err:   fmt.Errorf("%w: %s", common.ErrUnsupportedType, s.tx.Type),
		}
	}
	if len(s.unknownFields) > 0 {
		return Transaction{}, common.DecodingError{
			Field: s.unknownFields[0],
			Err:   common.ErrUnknownField,
		}
	}
	for _, field := range s.payloadFields {
		if field.owner != s.tx.Type {
			return Transaction{}, common.DecodingError{
				Field: field.key,
				Err: fmt.Errorf(
					"%w: not valid for type %s",
					common.ErrUnknownField,
					s.tx.Type,
				),
			}
		}
	}
	if s.tx.Sender.IsZero() {
		return Transaction{}, common.DecodingError{
			Field: keySender,
			Err:   common.ErrMissingField,
		}
	}
	if s.tx.FirstValid == 0 {
		return Transaction{}, common.DecodingError{
			Field: keyFirstValid,
			Err:   common.ErrMissingField,
		}
	}
	if s.tx.LastValid == 0 {
		return Transaction{}, common.DecodingError{
			Field: keyLastValid,
			Err:   common.ErrMissingField,
		}
	}
	switch s.tx.Type {
	case TxTypePayment:
		s.tx.Payment = &s.payment
	case TxTypeAssetTransfer:
		s.tx.AssetTransfer = &s.assetTransfer
	}
	return s.tx, nil
}

// Decode parses a canonical transaction encoding, with or without the "TX"
// domain separator
func Decode(data []byte) (Transaction, error) {
	if len(data) == 0 {
		return Transaction{}, common.DecodingError{
			Err: common.ErrZeroLengthInput,
		}
	}
	return decodeTransaction(stripTransactionPrefix(data))
}

// DecodeTransactions decodes each encoded transaction in order
func DecodeTransactions(data [][]byte) ([]Transaction, error) {
	ret := make([]Transaction, 0, len(data))
	for i, item := range data {
		tx, err := Decode(item)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		ret = append(ret, tx)
	}
	return ret, nil
}

// PeekType returns the transaction type without decoding the rest of the transaction
func PeekType(data []byte) (TransactionType, error) {
	if len(data) == 0 {
		return "", common.DecodingError{
			Err: common.ErrZeroLengthInput,
		}
	}
	val, err := msgpack.PeekMapString(stripTransactionPrefix(data), keyType)
	if err != nil {
		if errors.Is(err, msgpack.ErrKeyNotFound) {
			err = common.ErrMissingField
		}
		return "", common.DecodingError{Field: keyType, Err: err}
	}
	txType := TransactionType(val)
	if !txType.Known() {
		return "", common.DecodingError{
			Field: keyType,
			Err:   fmt.Errorf("%w: %s", common.ErrUnsupportedType, val),
		}
	}
	return txType, nil
}

func decodeTransaction(data []byte) (Transaction, error) {
	var s decodeState
	if err := msgpack.DecodeMap(data, s.decodeField); err != nil {
		var decErr common.DecodingError
		if errors.As(err, &decErr) {
			return Transaction{}, decErr
		}
		return Transaction{}, common.DecodingError{Err: err}
	}
	return s.finish()
}

// decodeCanonical decodes data and requires it to be the canonical encoding
// of the result
func decodeCanonical(data []byte) (Transaction, error) {
	tx, err := decodeTransaction(data)
	if err != nil {
		return Transaction{}, err
	}
	encoded, err := Encode(tx)
	if err != nil {
		return Transaction{}, common.DecodingError{Err: err}
	}
	if !bytes.Equal(encoded, data) {
		return Transaction{}, common.DecodingError{Err: common.ErrNonCanonical}
	}
	return tx, nil
}

func stripTransactionPrefix(data []byte) []byte {
	ret, _ := bytes.CutPrefix(data, common.HashPrefixTransaction.Bytes())
	return ret
}

func decodeAddress(d *msgpack.Decoder, dest *common.Address) error {
	val, err := d.Fixed(common.AddressSize)
	if err != nil {
		return err
	}
	*dest = common.Address(val)
	return nil
}

func decodeDigest(d *msgpack.Decoder, dest *common.Digest) error {
	val, err := d.Fixed(common.DigestSize)
	if err != nil {
		return err
	}
	*dest = common.Digest(val)
	return nil
}
