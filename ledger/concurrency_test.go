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
	"sync"
	"testing"

	"github.com/blinklabs-io/gotransact/internal/test"
	"github.com/blinklabs-io/gotransact/ledger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// Every operation is a pure function of its inputs and must be safe to call
// from many goroutines at once
func TestConcurrentOperations(t *testing.T) {
	defer goleak.VerifyNone(t)
	const workers = 32
	expectedGroup := test.DecodeBase64String(
		"yk9SB8Xt1Td14oNK3VVW10CF1Ac66vii3jWhHY1lhTE=",
	)
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := ledger.Encode(simplePayment())
			if err != nil {
				errs <- err
				return
			}
			if _, err := ledger.Decode(data); err != nil {
				errs <- err
				return
			}
			if _, err := ledger.AttachSignature(data, make([]byte, 64)); err != nil {
				errs <- err
				return
			}
			groupId, err := ledger.ComputeGroupId(
				[]ledger.Transaction{simplePayment(), optInAssetTransfer()},
			)
			if err != nil {
				errs <- err
				return
			}
			if !assert.Equal(t, expectedGroup, groupId.Bytes()) {
				return
			}
			id, err := simplePayment().Id()
			if err != nil {
				errs <- err
				return
			}
			assert.Equal(t, "TZM3P4ZL4DLIEZ3WOEP67MQ6JITTO4D3NJN3RCA5YDBC3V4LA5LA", id)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %s", err)
	}
}
