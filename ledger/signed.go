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

const (
	keySignature   = "sig"
	keyTransaction = "txn"
)

// SignedTransaction is a transaction with the signature of its sender
type SignedTransaction struct {
	Transaction Transaction      `json:"transaction"`
	Signature   common.Signature `json:"signature"`
}

// Encode returns the canonical encoding of the signed transaction
func (stx SignedTransaction) Encode() ([]byte, error) {
	txData, err := Encode(stx.Transaction)
	if err != nil {
		return nil, err
	}
	return encodeEnvelope(txData, stx.Signature)
}

// RawId returns the id of the inner transaction
func (stx SignedTransaction) RawId() (common.Digest, error) {
	return stx.Transaction.RawId()
}

// Id returns the base32 id of the inner transaction
func (stx SignedTransaction) Id() (string, error) {
	return stx.Transaction.Id()
}

// DecodeSignedTransaction parses an encoded signed transaction
func DecodeSignedTransaction(data []byte) (SignedTransaction, error) {
	if len(data) == 0 {
		return SignedTransaction{}, common.EnvelopeError{
			Err: common.DecodingError{Err: common.ErrZeroLengthInput},
		}
	}
	sig, txData, err := decodeEnvelope(data)
	if err != nil {
		return SignedTransaction{}, err
	}
	tx, err := decodeTransaction(txData)
	if err != nil {
		return SignedTransaction{}, common.EnvelopeError{Err: err}
	}
	return SignedTransaction{
		Transaction: tx,
		Signature:   sig,
	}, nil
}

// SigningPayload returns the bytes an external signer must sign for the transaction
func SigningPayload(tx Transaction) ([]byte, error) {
	return EncodeWithPrefix(tx)
}

// SigningPayloadFromBytes prepends the "TX" domain separator to an encoded transaction
func SigningPayloadFromBytes(data []byte) []byte {
	prefix := common.HashPrefixTransaction.Bytes()
	ret := make([]byte, 0, len(prefix)+len(data))
	ret = append(ret, prefix...)
	return append(ret, data...)
}

// AttachSignature wraps an encoded transaction and its signature in a signed
// transaction envelope. The transaction bytes may carry the "TX" prefix and
// must be canonical.
func AttachSignature(encodedTx []byte, sig []byte) ([]byte, error) {
	tmpSig, err := common.NewSignature(sig)
	if err != nil {
		return nil, common.EnvelopeError{Err: err}
	}
	if len(encodedTx) == 0 {
		return nil, common.EnvelopeError{
			Err: common.DecodingError{Err: common.ErrZeroLengthInput},
		}
	}
	txData := stripTransactionPrefix(encodedTx)
	if _, err := decodeCanonical(txData); err != nil {
		return nil, common.EnvelopeError{Err: err}
	}
	return encodeEnvelope(txData, tmpSig)
}

// AttachSignatures attaches each signature to the transaction at the same index
func AttachSignatures(encodedTxs [][]byte, sigs [][]byte) ([][]byte, error) {
	if len(encodedTxs) != len(sigs) {
		return nil, common.EnvelopeError{
			Err: fmt.Errorf(
				"%w: %d transactions, %d signatures",
				common.ErrSignatureCount,
				len(encodedTxs),
				len(sigs),
			),
		}
	}
	ret := make([][]byte, 0, len(encodedTxs))
	for i, encodedTx := range encodedTxs {
		signedTx, err := AttachSignature(encodedTx, sigs[i])
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		ret = append(ret, signedTx)
	}
	return ret, nil
}

// SplitEnvelope is the inverse of AttachSignature. It returns the canonical
// transaction bytes, without prefix, and the signature.
func SplitEnvelope(signedTx []byte) ([]byte, []byte, error) {
	if len(signedTx) == 0 {
		return nil, nil, common.EnvelopeError{
			Err: common.DecodingError{Err: common.ErrZeroLengthInput},
		}
	}
	sig, txData, err := decodeEnvelope(signedTx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := decodeCanonical(txData); err != nil {
		return nil, nil, common.EnvelopeError{Err: err}
	}
	return txData, sig.Bytes(), nil
}

func encodeEnvelope(txData []byte, sig common.Signature) ([]byte, error) {
	data, err := msgpack.NewMap().
		Bytes(keySignature, sig[:]).
		Raw(keyTransaction, txData).
		Encode()
	if err != nil {
		return nil, common.EnvelopeError{Err: err}
	}
	return data, nil
}

func decodeEnvelope(data []byte) (common.Signature, []byte, error) {
	var (
		sig    []byte
		txData []byte
	)
	err := msgpack.DecodeMap(data, func(key string, d *msgpack.Decoder) error {
		var err error
		switch key {
		case keySignature:
			sig, err = d.Bytes()
		case keyTransaction:
			txData, err = d.Raw()
		default:
			return common.DecodingError{Field: key, Err: common.ErrUnknownField}
		}
		if err != nil {
			return common.DecodingError{Field: key, Err: err}
		}
		return nil
	})
	if err != nil {
		return common.Signature{}, nil, common.EnvelopeError{Err: err}
	}
	if sig == nil {
		return common.Signature{}, nil, common.EnvelopeError{
			Err: common.DecodingError{
				Field: keySignature,
				Err:   common.ErrMissingField,
			},
		}
	}
	if txData == nil {
		return common.Signature{}, nil, common.EnvelopeError{
			Err: common.DecodingError{
				Field: keyTransaction,
				Err:   common.ErrMissingField,
			},
		}
	}
	tmpSig, err := common.NewSignature(sig)
	if err != nil {
		return common.Signature{}, nil, common.EnvelopeError{Err: err}
	}
	return tmpSig, txData, nil
}
