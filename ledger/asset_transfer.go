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
	"github.com/blinklabs-io/gotransact/msgpack"
)

const (
	keyAssetId       = "xaid"
	keyAssetAmount   = "aamt"
	keyAssetReceiver = "arcv"
	keyAssetSender   = "asnd"
	keyAssetCloseTo  = "aclose"
)

// AssetTransferFields moves units of an asset. A transfer of zero units to
// the sender itself opts the sender in to the asset. AssetSender is only set
// for clawback transfers.
type AssetTransferFields struct {
	AssetId     uint64         `json:"assetId"`
	Amount      uint64         `json:"amount,omitempty"`
	Receiver    common.Address `json:"receiver"`
	AssetSender common.Address `json:"assetSender"`
	CloseTo     common.Address `json:"closeTo"`
}

func (a *AssetTransferFields) encode(m *msgpack.Map) {
	m.Uint(keyAssetId, a.AssetId).
		Uint(keyAssetAmount, a.Amount).
		Fixed(keyAssetReceiver, a.Receiver[:]).
		Fixed(keyAssetSender, a.AssetSender[:]).
		Fixed(keyAssetCloseTo, a.CloseTo[:])
}

var assetTransferFieldDecoders = map[string]fieldDecoder{
	keyAssetId: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.assetTransfer.AssetId, err = d.Uint()
		return err
	},
	keyAssetAmount: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.assetTransfer.Amount, err = d.Uint()
		return err
	},
	keyAssetReceiver: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.assetTransfer.Receiver)
	},
	keyAssetSender: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.assetTransfer.AssetSender)
	},
	keyAssetCloseTo: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.assetTransfer.CloseTo)
	},
}
