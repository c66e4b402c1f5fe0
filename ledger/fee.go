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
	"math/bits"

	"github.com/blinklabs-io/gotransact/ledger/common"
)

// SignatureEncodingIncrement is the number of bytes a signature envelope adds
// to an encoded transaction
const SignatureEncodingIncrement = 75

// FeePolicy describes how fees are computed from the transaction size. The
// size is that of the signed transaction, including the signature envelope.
type FeePolicy struct {
	FeePerByte uint64
	MinFee     uint64
}

// EstimateSize returns the encoded size of the transaction once signed
func EstimateSize(tx Transaction) (int, error) {
	data, err := Encode(tx)
	if err != nil {
		return 0, err
	}
	return len(data) + SignatureEncodingIncrement, nil
}

// AssignFee returns a copy of the transaction with Fee set from the policy.
// The size used is that of the signed transaction with a zero fee, so the
// result does not depend on the fee field's own width.
func AssignFee(tx Transaction, policy FeePolicy) (Transaction, error) {
	ret, err := tx.Clone()
	if err != nil {
		return Transaction{}, common.EncodingError{Err: err}
	}
	ret.Fee = 0
	size, err := EstimateSize(ret)
	if err != nil {
		return Transaction{}, err
	}
	hi, fee := bits.Mul64(policy.FeePerByte, uint64(size))
	if hi != 0 {
		return Transaction{}, common.EncodingError{
			Field: keyFee,
			Err: fmt.Errorf(
				"%w: %d bytes at %d per byte",
				common.ErrFeeOverflow,
				size,
				policy.FeePerByte,
			),
		}
	}
	ret.Fee = max(fee, policy.MinFee)
	return ret, nil
}

// SuggestedParams carries the network values needed to build a transaction
type SuggestedParams struct {
	// When set, Fee is a flat fee for the transaction rather than a per-byte rate
	FlatFee     bool          `json:"flatFee"`
	Fee         uint64        `json:"fee"`
	MinFee      uint64        `json:"minFee"`
	FirstValid  uint64        `json:"firstValid"`
	LastValid   uint64        `json:"lastValid"`
	GenesisId   string        `json:"genesisId"`
	GenesisHash common.Digest `json:"genesisHash"`
}

// Apply returns a copy of the transaction with the validity window, genesis
// values and fee taken from the params. A flat fee below MinFee is raised to MinFee.
func (p SuggestedParams) Apply(tx Transaction) (Transaction, error) {
	ret, err := tx.Clone()
	if err != nil {
		return Transaction{}, common.EncodingError{Err: err}
	}
	ret.FirstValid = p.FirstValid
	ret.LastValid = p.LastValid
	ret.GenesisId = p.GenesisId
	ret.GenesisHash = p.GenesisHash
	if p.FlatFee {
		ret.Fee = max(p.Fee, p.MinFee)
		return ret, nil
	}
	return AssignFee(
		ret,
		FeePolicy{
			FeePerByte: p.Fee,
			MinFee:     p.MinFee,
		},
	)
}
