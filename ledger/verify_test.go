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
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/blinklabs-io/gotransact/ledger"
	"github.com/blinklabs-io/gotransact/ledger/common"
	"github.com/stretchr/testify/require"
)

func testSigningKey(t *testing.T, seedByte byte) (ed25519.PrivateKey, common.Address) {
	t.Helper()
	key := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seedByte}, ed25519.SeedSize))
	addr, err := common.NewAddressFromPublicKey(key.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return key, addr
}

func signTransaction(
	t *testing.T,
	key ed25519.PrivateKey,
	tx ledger.Transaction,
) ledger.SignedTransaction {
	t.Helper()
	payload, err := ledger.SigningPayload(tx)
	require.NoError(t, err)
	sig, err := common.NewSignature(ed25519.Sign(key, payload))
	require.NoError(t, err)
	return ledger.SignedTransaction{Transaction: tx, Signature: sig}
}

func TestVerifySignature(t *testing.T) {
	key, addr := testSigningKey(t, 0x2a)
	tx := simplePayment()
	tx.Sender = addr
	stx := signTransaction(t, key, tx)
	require.NoError(t, ledger.VerifySignature(stx))

	// Through the envelope helpers
	raw, err := ledger.Encode(tx)
	require.NoError(t, err)
	signedTx, err := ledger.AttachSignature(raw, stx.Signature.Bytes())
	require.NoError(t, err)
	decoded, err := ledger.DecodeSignedTransaction(signedTx)
	require.NoError(t, err)
	require.NoError(t, ledger.VerifySignature(decoded))
}

func TestVerifySignatureTampered(t *testing.T) {
	key, addr := testSigningKey(t, 0x2a)
	tx := simplePayment()
	tx.Sender = addr
	stx := signTransaction(t, key, tx)
	stx.Transaction.Fee++
	err := ledger.VerifySignature(stx)
	require.ErrorIs(t, err, common.ErrEnvelope)
	require.ErrorIs(t, err, common.ErrSignatureMismatch)
}

func TestVerifySignatureRekeyed(t *testing.T) {
	_, addr := testSigningKey(t, 0x01)
	authKey, authAddr := testSigningKey(t, 0x02)
	tx := optInAssetTransfer()
	tx.Sender = addr
	tx.AssetTransfer.Receiver = addr
	stx := signTransaction(t, authKey, tx)
	require.ErrorIs(t, ledger.VerifySignature(stx), common.ErrSignatureMismatch)
	require.NoError(t, ledger.VerifySignatureWithSigner(stx, authAddr))
}

func TestVerifySignatureInvalidKey(t *testing.T) {
	testDefs := []struct {
		name   string
		signer common.Address
	}{
		{
			name:   "zero key",
			signer: common.Address{},
		},
		{
			name: "non-canonical point",
			signer: common.Address(
				append(bytes.Repeat([]byte{0xff}, 31), 0x7f),
			),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			stx := ledger.SignedTransaction{Transaction: simplePayment()}
			err := ledger.VerifySignatureWithSigner(stx, testDef.signer)
			require.ErrorIs(t, err, common.ErrEnvelope)
			require.ErrorIs(t, err, common.ErrInvalidSigningKey)
		})
	}
}
