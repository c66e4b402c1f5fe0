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

package transact

import (
	"encoding/base64"
	"fmt"

	"github.com/blinklabs-io/gotransact/ledger"
	"github.com/blinklabs-io/gotransact/ledger/common"
)

// Minimum transaction fee in microalgos
const DefaultMinFee = 1000

// Network definitions
var (
	NetworkMainnet = Network{
		Name:        "mainnet",
		GenesisId:   "mainnet-v1.0",
		GenesisHash: mustDecodeGenesisHash("wGHE2Pwdvd7S12BL5FaOP20EGYesN73ktiC1qzkkit8="),
	}
	NetworkTestnet = Network{
		Name:        "testnet",
		GenesisId:   "testnet-v1.0",
		GenesisHash: mustDecodeGenesisHash("SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI="),
	}
	NetworkBetanet = Network{
		Name:        "betanet",
		GenesisId:   "betanet-v1.0",
		GenesisHash: mustDecodeGenesisHash("mFgazF+2uRS1tMiL9dsj01hJGySEmPN28B/TjjvpVW0="),
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkBetanet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByGenesisId returns a predefined network by genesis ID
func NetworkByGenesisId(genesisId string) Network {
	for _, network := range networks {
		if network.GenesisId == genesisId {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByGenesisHash returns a predefined network by genesis hash
func NetworkByGenesisHash(genesisHash common.Digest) Network {
	for _, network := range networks {
		if network.GenesisHash == genesisHash {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents an Algorand network
type Network struct {
	Name        string
	GenesisId   string
	GenesisHash common.Digest
}

func (n Network) String() string {
	return n.Name
}

// ApplyTo returns a copy of the transaction bound to this network
func (n Network) ApplyTo(tx ledger.Transaction) (ledger.Transaction, error) {
	if n.GenesisHash.IsZero() {
		return ledger.Transaction{}, fmt.Errorf("unknown network: %s", n.Name)
	}
	ret, err := tx.Clone()
	if err != nil {
		return ledger.Transaction{}, err
	}
	ret.GenesisId = n.GenesisId
	ret.GenesisHash = n.GenesisHash
	return ret, nil
}

// SuggestedParams returns params for this network with the default minimum fee
// and no per-byte fee
func (n Network) SuggestedParams(
	firstValid uint64,
	lastValid uint64,
) ledger.SuggestedParams {
	return ledger.SuggestedParams{
		MinFee:      DefaultMinFee,
		FirstValid:  firstValid,
		LastValid:   lastValid,
		GenesisId:   n.GenesisId,
		GenesisHash: n.GenesisHash,
	}
}

func mustDecodeGenesisHash(b64Hash string) common.Digest {
	decoded, err := base64.StdEncoding.DecodeString(b64Hash)
	if err != nil || len(decoded) != common.DigestSize {
		panic(fmt.Sprintf("invalid genesis hash: %s", b64Hash))
	}
	return common.NewDigest(decoded)
}
