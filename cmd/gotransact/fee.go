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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gotransact/cmd/common"
	"github.com/blinklabs-io/gotransact/ledger"
)

type feeFlags struct {
	flagset    *flag.FlagSet
	txFile     string
	feePerByte uint64
	minFee     uint64
	flatFee    bool
	fee        uint64
}

func newFeeFlags() *feeFlags {
	f := &feeFlags{
		flagset: flag.NewFlagSet("fee", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.txFile,
		"tx-file",
		"",
		"path to the JSON transaction file",
	)
	f.flagset.Uint64Var(
		&f.feePerByte,
		"fee-per-byte",
		0,
		"fee in microalgos per byte of the signed transaction",
	)
	f.flagset.Uint64Var(
		&f.minFee,
		"min-fee",
		1000,
		"minimum fee in microalgos",
	)
	f.flagset.BoolVar(
		&f.flatFee,
		"flat-fee",
		false,
		"use the value of -fee instead of a size based fee",
	)
	f.flagset.Uint64Var(
		&f.fee,
		"fee",
		0,
		"flat fee in microalgos, used with -flat-fee",
	)
	return f
}

func runFee(f *common.GlobalFlags) {
	feeFlags := newFeeFlags()
	err := feeFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	tx := loadTransaction(f, feeFlags.txFile)
	params := ledger.SuggestedParams{
		FlatFee:     feeFlags.flatFee,
		Fee:         feeFlags.fee,
		MinFee:      feeFlags.minFee,
		FirstValid:  tx.FirstValid,
		LastValid:   tx.LastValid,
		GenesisId:   tx.GenesisId,
		GenesisHash: tx.GenesisHash,
	}
	if !feeFlags.flatFee {
		params.Fee = feeFlags.feePerByte
	}
	ret, err := params.Apply(tx)
	if err != nil {
		fmt.Printf("ERROR: failed to assign fee: %s\n", err)
		os.Exit(1)
	}
	size, err := ledger.EstimateSize(ret)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	f.Logger.Info("assigned fee", "fee", ret.Fee, "signed_size", size)
	if err := common.PrintJSON(ret); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}
