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

// Package testdata provides shared encoded transactions for benchmarks and tests.
package testdata

import (
	"encoding/hex"
	"fmt"
)

// Payment of 101000 microalgos on testnet
const SimplePaymentHex = "89a3616d74ce00018a88a3666565cd03e8a26676ce030500d4a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030504bca3726376c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a3736e64c4208a18089959a73cecffee5bc673be89fe0323c662c321417b8ac884c24a002c19a474797065a3706179"

// Payment setting every optional field
const FullPaymentHex = "8da3616d74ce00018a88a5636c6f7365c4208a18089959a73cecffee5bc673be89fe0323c662c321417b8ac884c24a002c19a3666565cd03e8a26676ce030500d4a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030504bca26c78c4200707070707070707070707070707070707070707070707070707070707070707a46e6f7465c40568656c6c6fa3726376c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a572656b6579c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a3736e64c4208a18089959a73cecffee5bc673be89fe0323c662c321417b8ac884c24a002c19a474797065a3706179"

// Asset opt-in on testnet, the sender transfers zero units to itself
const OptInAssetTransferHex = "89a461726376c4204876af1e60bb86ee4ce492db89c8de34285692a881be0f671518051f581bc97ba3666565cd03e8a26676ce030d0038a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030d0100a3736e64c4204876af1e60bb86ee4ce492db89c8de34285692a881be0f671518051f581bc97ba474797065a56178666572a478616964ce066b289d"

// Clawback of 5 units with a close-to address
const ClawbackAssetTransferHex = "8ca461616d7405a661636c6f7365c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a461726376c420adcfda3fc95d3423230fa173ccf5d35a44b603a4b8f783cd9568c9d7fd0bcef5a461736e64c4208a18089959a73cecffee5bc673be89fe0323c662c321417b8ac884c24a002c19a3666565cd03e8a26676ce030d0038a367656eac746573746e65742d76312e30a26768c4204863b518a4b3c84ec810f22d4f1081cb0f71f059a7ac20dec62f7f70e5093a22a26c76ce030d0100a3736e64c4204876af1e60bb86ee4ce492db89c8de34285692a881be0f671518051f581bc97ba474797065a56178666572a478616964ce066b289d"

var transactions = map[string]string{
	"simple-payment":          SimplePaymentHex,
	"full-payment":            FullPaymentHex,
	"opt-in-asset-transfer":   OptInAssetTransferHex,
	"clawback-asset-transfer": ClawbackAssetTransferHex,
}

// TransactionNames returns the names of the available transactions in a stable order
func TransactionNames() []string {
	return []string{
		"simple-payment",
		"full-payment",
		"opt-in-asset-transfer",
		"clawback-asset-transfer",
	}
}

// TransactionBytes returns the encoded transaction with the given name
func TransactionBytes(name string) ([]byte, error) {
	txHex, ok := transactions[name]
	if !ok {
		return nil, fmt.Errorf("unknown transaction: %s", name)
	}
	return hex.DecodeString(txHex)
}
