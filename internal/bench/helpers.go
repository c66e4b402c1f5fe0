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

// Package bench provides benchmarks and allocation baselines for the
// transaction codec.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/gotransact/internal/testdata"
	"github.com/blinklabs-io/gotransact/ledger"
)

// TxFixture contains a pre-loaded transaction for benchmarking.
type TxFixture struct {
	Name    string
	Encoded []byte
	Tx      ledger.Transaction
}

// LoadTxFixture loads the named transaction from testdata.
func LoadTxFixture(name string) (*TxFixture, error) {
	data, err := testdata.TransactionBytes(name)
	if err != nil {
		return nil, err
	}
	tx, err := ledger.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s transaction: %w", name, err)
	}
	return &TxFixture{
		Name:    name,
		Encoded: data,
		Tx:      tx,
	}, nil
}

// MustLoadTxFixture loads a test transaction and panics on error.
// Use this in benchmark setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s transaction fixture: %v", name, err))
	}
	return fixture
}

// LoadTxFixtures loads every transaction from testdata.
func LoadTxFixtures() ([]*TxFixture, error) {
	names := testdata.TransactionNames()
	ret := make([]*TxFixture, 0, len(names))
	for _, name := range names {
		fixture, err := LoadTxFixture(name)
		if err != nil {
			return nil, err
		}
		ret = append(ret, fixture)
	}
	return ret, nil
}

// UngroupedTransactions returns count ungrouped transactions, cycling
// through the fixtures and varying the first valid round so ids differ.
func UngroupedTransactions(count int) ([]ledger.Transaction, error) {
	fixtures, err := LoadTxFixtures()
	if err != nil {
		return nil, err
	}
	ret := make([]ledger.Transaction, 0, count)
	for i := range count {
		tx, err := fixtures[i%len(fixtures)].Tx.Clone()
		if err != nil {
			return nil, err
		}
		tx.FirstValid += uint64(i)
		tx.LastValid += uint64(i)
		ret = append(ret, tx)
	}
	return ret, nil
}
