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
	"bytes"
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/gotransact/ledger/common"
)

// VerifySignature checks the signature against the transaction sender's key
func VerifySignature(stx SignedTransaction) error {
	return VerifySignatureWithSigner(stx, stx.Transaction.Sender)
}

// VerifySignatureWithSigner checks the signature against the provided key,
// for accounts that have been rekeyed
func VerifySignatureWithSigner(
	stx SignedTransaction,
	signer common.Address,
) error {
	if err := checkSigningKey(signer.PublicKey()); err != nil {
		return common.EnvelopeError{Err: err}
	}
	payload, err := SigningPayload(stx.Transaction)
	if err != nil {
		return common.EnvelopeError{Err: err}
	}
	if !ed25519.Verify(
		ed25519.PublicKey(signer.PublicKey()),
		payload,
		stx.Signature.Bytes(),
	) {
		return common.EnvelopeError{
			Err: fmt.Errorf(
				"%w: signer %s",
				common.ErrSignatureMismatch,
				signer.String(),
			),
		}
	}
	return nil
}

// checkSigningKey rejects keys that are not valid curve points or have small order
func checkSigningKey(publicKey []byte) error {
	Y, err := (&edwards25519.Point{}).SetBytes(publicKey)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidSigningKey, err)
	}
	if !bytes.Equal(Y.Bytes(), publicKey) {
		return fmt.Errorf("%w: non-canonical encoding", common.ErrInvalidSigningKey)
	}
	isSmallOrder := (&edwards25519.Point{}).MultByCofactor(Y).
		Equal(edwards25519.NewIdentityPoint()) ==
		1
	if isSmallOrder {
		return fmt.Errorf("%w: small order point", common.ErrInvalidSigningKey)
	}
	return nil
}
