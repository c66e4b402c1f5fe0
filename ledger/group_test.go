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

package ledger_test

import (
	"testing"

	"github.com/blinklabs-io/gotransact/internal/test"
	"github.com/blinklabs-io/gotransact/ledger"
	"github.com/blinklabs-io/gotransact/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTransactions(t *testing.T) {
	txs := []ledger.Transaction{simplePayment(), optInAssetTransfer()}
	expectedGroup := common.NewDigest([]byte{
		202, 79, 82, 7, 197, 237, 213, 55, 117, 226, 131, 74, 221, 85, 86, 215,
		64, 133, 212, 7, 58, 234, 248, 162, 222, 53, 161, 29, 141, 101, 133, 49,
	})
	grouped, err := ledger.GroupTransactions(txs)
	require.NoError(t, err)
	require.Len(t, grouped, len(txs))
	for i, tx := range grouped {
		if tx.Group != expectedGroup {
			t.Fatalf(
				"transaction %d did not have expected group\n  got: %s\n  wanted: %s",
				i,
				tx.Group.String(),
				expectedGroup.String(),
			)
		}
		// Inputs are left alone
		assert.False(t, txs[i].IsGrouped())
		tmpTx := tx
		tmpTx.Group = common.Digest{}
		assert.Equal(t, txs[i], tmpTx)
	}
	expectedIds := []string{
		"KADHZZ73VUUOVIKO7B5WKRK5NO2FAGIELP5SEEZAMGZBWEODEJCQ",
		"DFG7O3OAJ63GENDO5MQRE677HL7YFIUYDST4CP52OL5NYFHULPHA",
	}
	for i, tx := range grouped {
		txId, err := tx.Id()
		require.NoError(t, err)
		assert.Equal(t, expectedIds[i], txId)
	}
	require.NoError(t, ledger.VerifyGroup(grouped))
}

func TestGroupTransactionsOrder(t *testing.T) {
	forward, err := ledger.ComputeGroupId(
		[]ledger.Transaction{simplePayment(), optInAssetTransfer()},
	)
	require.NoError(t, err)
	reverse, err := ledger.ComputeGroupId(
		[]ledger.Transaction{optInAssetTransfer(), simplePayment()},
	)
	require.NoError(t, err)
	assert.NotEqual(t, forward, reverse)
	expectedReverse := common.NewDigest(
		test.DecodeBase64String("ascP+KRKhSrcs1CQaUpfVvwn/l8OWDPApRzt1M2eRA4="),
	)
	assert.Equal(t, expectedReverse, reverse)
}

func TestGroupSingleTransaction(t *testing.T) {
	grouped, err := ledger.GroupTransactions(
		[]ledger.Transaction{simplePayment()},
	)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	expectedGroup := common.NewDigest(
		test.DecodeBase64String("ddGbc8trEypxlWRHgeaWmPUq2BMPBN3pIz6EQoZ/900="),
	)
	assert.Equal(t, expectedGroup, grouped[0].Group)
}

func TestGroupMaxSize(t *testing.T) {
	txs := make([]ledger.Transaction, common.MaxTxGroupSize)
	for i := range txs {
		txs[i] = simplePayment()
		txs[i].Note = []byte{byte(i)}
	}
	grouped, err := ledger.GroupTransactions(txs)
	require.NoError(t, err)
	require.Len(t, grouped, common.MaxTxGroupSize)
	require.NoError(t, ledger.VerifyGroup(grouped))
}

func TestGroupTransactionsErrors(t *testing.T) {
	groupedPayment := simplePayment()
	groupedPayment.Group = common.NewDigest(
		test.DecodeBase64String("y1Hz6KZhHJI4TZLwZqXO3TFgXVQdD/1+c6BLk3wTW6Q="),
	)
	invalidPayment := simplePayment()
	invalidPayment.FirstValid = 0
	testDefs := []struct {
		name          string
		txs           []ledger.Transaction
		expectedErr   error
		expectedIndex int
	}{
		{
			name:          "empty group",
			txs:           nil,
			expectedErr:   common.ErrEmptyGroup,
			expectedIndex: -1,
		},
		{
			name:          "group too large",
			txs:           make([]ledger.Transaction, common.MaxTxGroupSize+1),
			expectedErr:   common.ErrGroupTooLarge,
			expectedIndex: -1,
		},
		{
			name:          "already grouped",
			txs:           []ledger.Transaction{simplePayment(), groupedPayment},
			expectedErr:   common.ErrAlreadyGrouped,
			expectedIndex: 1,
		},
		{
			name:          "invalid member",
			txs:           []ledger.Transaction{invalidPayment, simplePayment()},
			expectedErr:   common.ErrMissingField,
			expectedIndex: 0,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			ret, err := ledger.GroupTransactions(testDef.txs)
			require.Nil(t, ret)
			require.ErrorIs(t, err, common.ErrGrouping)
			require.ErrorIs(t, err, testDef.expectedErr)
			var groupErr common.GroupingError
			require.ErrorAs(t, err, &groupErr)
			assert.Equal(t, testDef.expectedIndex, groupErr.Index)
		})
	}
	// The pre-existing group is not overwritten
	assert.Equal(
		t,
		"y1Hz6KZhHJI4TZLwZqXO3TFgXVQdD/1+c6BLk3wTW6Q=",
		test.EncodeBase64String(groupedPayment.Group.Bytes()),
	)
}

func TestVerifyGroupMismatch(t *testing.T) {
	grouped, err := ledger.GroupTransactions(
		[]ledger.Transaction{simplePayment(), optInAssetTransfer()},
	)
	require.NoError(t, err)
	// Swapping members changes the expected id
	err = ledger.VerifyGroup([]ledger.Transaction{grouped[1], grouped[0]})
	require.ErrorIs(t, err, common.ErrGroupMismatch)
	// A member from another group
	grouped[1].Group = common.Digest{1}
	err = ledger.VerifyGroup(grouped)
	require.ErrorIs(t, err, common.ErrGroupMismatch)
	var groupErr common.GroupingError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, 1, groupErr.Index)
	require.ErrorIs(t, ledger.VerifyGroup(nil), common.ErrEmptyGroup)
}
