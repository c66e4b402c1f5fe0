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

type groupFlags struct {
	flagset *flag.FlagSet
	txFile  string
	encode  bool
}

func newGroupFlags() *groupFlags {
	f := &groupFlags{
		flagset: flag.NewFlagSet("group", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.txFile,
		"tx-file",
		"",
		"path to a JSON file containing an array of transactions",
	)
	f.flagset.BoolVar(
		&f.encode,
		"encode",
		false,
		"print the encoded grouped transactions instead of JSON",
	)
	return f
}

func runGroup(f *common.GlobalFlags) {
	groupFlags := newGroupFlags()
	err := groupFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var txs []ledger.Transaction
	if err := common.ReadJSONFile(groupFlags.txFile, &txs); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for i, tx := range txs {
		txs[i] = applyNetwork(f, tx)
	}
	grouped, err := ledger.GroupTransactions(txs)
	if err != nil {
		fmt.Printf("ERROR: failed to group transactions: %s\n", err)
		os.Exit(1)
	}
	f.Logger.Info(
		"grouped transactions",
		"count", len(grouped),
		"group", common.EncodeBytes(f.Format, grouped[0].Group.Bytes()),
	)
	if !groupFlags.encode {
		if err := common.PrintJSON(grouped); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return
	}
	encoded, err := ledger.EncodeTransactions(grouped)
	if err != nil {
		fmt.Printf("ERROR: failed to encode transactions: %s\n", err)
		os.Exit(1)
	}
	for _, data := range encoded {
		fmt.Println(common.EncodeBytes(f.Format, data))
	}
}
