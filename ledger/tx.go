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
	"github.com/jinzhu/copier"
)

type TransactionType string

const (
	TxTypePayment         TransactionType = "pay"
	TxTypeAssetTransfer   TransactionType = "axfer"
	TxTypeAssetFreeze     TransactionType = "afrz"
	TxTypeAssetConfig     TransactionType = "acfg"
	TxTypeKeyRegistration TransactionType = "keyreg"
	TxTypeApplicationCall TransactionType = "appl"
)

// Known reports whether the type is one the ledger defines
func (t TransactionType) Known() bool {
	switch t {
	case TxTypePayment,
		TxTypeAssetTransfer,
		TxTypeAssetFreeze,
		TxTypeAssetConfig,
		TxTypeKeyRegistration,
		TxTypeApplicationCall:
		return true
	}
	return false
}

// Supported reports whether transactions of this type can be encoded and decoded
func (t TransactionType) Supported() bool {
	return t == TxTypePayment || t == TxTypeAssetTransfer
}

func (t TransactionType) String() string {
	return string(t)
}

// Wire keys for the transaction header
const (
	keyType        = "type"
	keySender      = "snd"
	keyFee         = "fee"
	keyFirstValid  = "fv"
	keyLastValid   = "lv"
	keyGenesisHash = "gh"
	keyGenesisId   = "gen"
	keyNote        = "note"
	keyLease       = "lx"
	keyRekeyTo     = "rekey"
	keyGroup       = "grp"
)

// Transaction is a ledger transaction. The header fields are shared by all
// types and exactly one payload, selected by Type, must be set. Zero values
// mean the field is absent and are left out of the encoding.
type Transaction struct {
	Type          TransactionType      `json:"type"`
	Sender        common.Address       `json:"sender"`
	Fee           uint64               `json:"fee,omitempty"`
	FirstValid    uint64               `json:"firstValid"`
	LastValid     uint64               `json:"lastValid"`
	GenesisHash   common.Digest        `json:"genesisHash"`
	GenesisId     string               `json:"genesisId,omitempty"`
	Note          []byte               `json:"note,omitempty"`
	Lease         common.Digest        `json:"lease"`
	RekeyTo       common.Address       `json:"rekeyTo"`
	Group         common.Digest        `json:"group"`
	Payment       *PaymentFields       `json:"payment,omitempty"`
	AssetTransfer *AssetTransferFields `json:"assetTransfer,omitempty"`
}

// NewPaymentTransaction returns a payment transaction with the minimum header set
func NewPaymentTransaction(
	sender common.Address,
	firstValid uint64,
	lastValid uint64,
	payment PaymentFields,
) Transaction {
	return Transaction{
		Type:       TxTypePayment,
		Sender:     sender,
		FirstValid: firstValid,
		LastValid:  lastValid,
		Payment:    &payment,
	}
}

// NewAssetTransferTransaction returns an asset transfer transaction with the
// minimum header set
func NewAssetTransferTransaction(
	sender common.Address,
	firstValid uint64,
	lastValid uint64,
	assetTransfer AssetTransferFields,
) Transaction {
	return Transaction{
		Type:          TxTypeAssetTransfer,
		Sender:        sender,
		FirstValid:    firstValid,
		LastValid:     lastValid,
		AssetTransfer: &assetTransfer,
	}
}

// IsGrouped reports whether the transaction belongs to an atomic group
func (tx Transaction) IsGrouped() bool {
	return !tx.Group.IsZero()
}

// Clone returns a deep copy of the transaction that shares no memory with the original
func (tx Transaction) Clone() (Transaction, error) {
	var ret Transaction
	err := copier.CopyWithOption(
		&ret,
		&tx,
		copier.Option{DeepCopy: true, IgnoreEmpty: true},
	)
	if err != nil {
		return Transaction{}, err
	}
	return ret, nil
}

// Validate checks ledger rules that the encoding does not enforce
func (tx Transaction) Validate() error {
	if tx.FirstValid > tx.LastValid {
		return common.ValidationError{
			Field: keyLastValid,
			Err:   common.ErrInvalidValidityWindow,
		}
	}
	if len(tx.Note) > common.MaxNoteSize {
		return common.ValidationError{
			Field: keyNote,
			Err:   common.ErrNoteTooLarge,
		}
	}
	return nil
}
