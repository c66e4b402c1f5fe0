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
	keyPaymentReceiver         = "rcv"
	keyPaymentAmount           = "amt"
	keyPaymentCloseRemainderTo = "close"
)

// PaymentFields moves microalgos from the sender to the receiver
type PaymentFields struct {
	Receiver         common.Address `json:"receiver"`
	Amount           uint64         `json:"amount,omitempty"`
	CloseRemainderTo common.Address `json:"closeRemainderTo"`
}

func (p *PaymentFields) encode(m *msgpack.Map) {
	m.Fixed(keyPaymentReceiver, p.Receiver[:]).
		Uint(keyPaymentAmount, p.Amount).
		Fixed(keyPaymentCloseRemainderTo, p.CloseRemainderTo[:])
}

var paymentFieldDecoders = map[string]fieldDecoder{
	keyPaymentReceiver: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.payment.Receiver)
	},
	keyPaymentAmount: func(s *decodeState, d *msgpack.Decoder) (err error) {
		s.payment.Amount, err = d.Uint()
		return err
	},
	keyPaymentCloseRemainderTo: func(s *decodeState, d *msgpack.Decoder) error {
		return decodeAddress(d, &s.payment.CloseRemainderTo)
	},
}
