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

const keyTxList = "txlist"

// ComputeGroupId returns the group id for the provided transactions, in order.
// The transactions must not already belong to a group.
func ComputeGroupId(txs []Transaction) (common.Digest, error) {
	if len(txs) == 0 {
		return common.Digest{}, common.GroupingError{
			Index: -1,
			Err:   common.ErrEmptyGroup,
		}
	}
	if len(txs) > common.MaxTxGroupSize {
		return common.Digest{}, common.GroupingError{
			Index: -1,
			Err: fmt.Errorf(
				"%w: %d transactions, maximum is %d",
				common.ErrGroupTooLarge,
				len(txs),
				common.MaxTxGroupSize,
			),
		}
	}
	txIds := make([][]byte, 0, len(txs))
	for i, tx := range txs {
		if tx.IsGrouped() {
			return common.Digest{}, common.GroupingError{
				Index: i,
				Err:   common.ErrAlreadyGrouped,
			}
		}
		rawId, err := tx.RawId()
		if err != nil {
			return common.Digest{}, common.GroupingError{Index: i, Err: err}
		}
		txIds = append(txIds, rawId.Bytes())
	}
	data, err := msgpack.NewMap().BytesList(keyTxList, txIds).Encode()
	if err != nil {
		return common.Digest{}, common.GroupingError{Index: -1, Err: err}
	}
	return common.HashWithPrefix(common.HashPrefixTxGroup, data), nil
}

// GroupTransactions returns copies of the transactions with Group set to the
// id of the whole group. The input is not modified.
func GroupTransactions(txs []Transaction) ([]Transaction, error) {
	groupId, err := ComputeGroupId(txs)
	if err != nil {
		return nil, err
	}
	ret := make([]Transaction, 0, len(txs))
	for i, tx := range txs {
		tmpTx, err := tx.Clone()
		if err != nil {
			return nil, common.GroupingError{Index: i, Err: err}
		}
		tmpTx.Group = groupId
		ret = append(ret, tmpTx)
	}
	return ret, nil
}

// VerifyGroup checks that every transaction carries the id computed from
// the whole group
func VerifyGroup(txs []Transaction) error {
	if len(txs) == 0 {
		return common.GroupingError{Index: -1, Err: common.ErrEmptyGroup}
	}
	members := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		tmpTx := tx
		tmpTx.Group = common.Digest{}
		members = append(members, tmpTx)
	}
	groupId, err := ComputeGroupId(members)
	if err != nil {
		return err
	}
	for i, tx := range txs {
		if tx.Group != groupId {
			return common.GroupingError{
				Index: i,
				Err: fmt.Errorf(
					"%w: found %s, expected %s",
					common.ErrGroupMismatch,
					tx.Group.String(),
					groupId.String(),
				),
			}
		}
	}
	return nil
}
