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
	"github.com/blinklabs-io/gotransact/internal/test"
	"github.com/blinklabs-io/gotransact/ledger"
	"github.com/blinklabs-io/gotransact/ledger/common"
)

const (
	testnetGenesisId      = "testnet-v1.0"
	testnetGenesisHashB64 = "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI="

	simplePaymentHex = "89a3616d74ce00018a88a3666565cd03e8a26676ce030500d4a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030504bca3726376c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a3736e64c4208a18089959a73cecffee5bc673be89fe0323c662c321417b8ac884c24a002c19a474797065a3706179"
	optInAssetHex    = "89a461726376c4204876af1e60bb86ee4ce492db89c8de34285692a881be0f671518051f581bc97ba3666565cd03e8a26676ce030d0038a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030d0100a3736e64c4204876af1e60bb86ee4ce492db89c8de34285692a881be0f671518051f581bc97ba474797065a56178666572a478616964ce066b289d"
)

func mustAddress(addr string) common.Address {
	ret, err := common.NewAddress(addr)
	if err != nil {
		panic(err)
	}
	return ret
}

func testnetGenesisHash() common.Digest {
	return common.NewDigest(test.DecodeBase64String(testnetGenesisHashB64))
}

func simplePayment() ledger.Transaction {
	return ledger.Transaction{
		Type:        ledger.TxTypePayment,
		Sender:      mustAddress("RIMARGKZU46OZ77OLPDHHPUJ7YBSHRTCYMQUC64KZCCMESQAFQMYU6SL2Q"),
		Fee:         1000,
		FirstValid:  50659540,
		LastValid:   50660540,
		GenesisId:   testnetGenesisId,
		GenesisHash: testnetGenesisHash(),
		Payment: &ledger.PaymentFields{
			Receiver: mustAddress("VXH5UP6JLU2CGIYPUFZ4Z5OTLJCLMA5EXD3YHTMVNDE5P7ILZ324FSYSPQ"),
			Amount:   101000,
		},
	}
}

func paymentWithNote() ledger.Transaction {
	tx := simplePayment()
	tx.Note = test.DecodeBase64String(
		"MGFhNTBkMjctYjhmNy00ZDc3LWExZmItNTUxZmQ1NWRmMmJj",
	)
	return tx
}

func optInAssetTransfer() ledger.Transaction {
	sender := mustAddress("JB3K6HTAXODO4THESLNYTSG6GQUFNEVIQG7A6ZYVDACR6WA3ZF52TKU5NA")
	return ledger.Transaction{
		Type:        ledger.TxTypeAssetTransfer,
		Sender:      sender,
		Fee:         1000,
		FirstValid:  51183672,
		LastValid:   51183872,
		GenesisId:   testnetGenesisId,
		GenesisHash: testnetGenesisHash(),
		AssetTransfer: &ledger.AssetTransferFields{
			AssetId:  107686045,
			Receiver: sender,
		},
	}
}
