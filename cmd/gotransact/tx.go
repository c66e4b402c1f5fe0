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

type encodeFlags struct {
	flagset *flag.FlagSet
	txFile  string
	prefix  bool
}

func newEncodeFlags(name string) *encodeFlags {
	f := &encodeFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.txFile,
		"tx-file",
		"",
		"path to the JSON transaction file",
	)
	f.flagset.BoolVar(
		&f.prefix,
		"prefix",
		false,
		"include the TX domain separator, as signed by the sender",
	)
	return f
}

type decodeFlags struct {
	flagset *flag.FlagSet
	input   string
	file    string
}

func newDecodeFlags(name string) *decodeFlags {
	f := &decodeFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.input,
		"in",
		"",
		"encoded transaction, in the format selected with -format",
	)
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to a file containing the raw encoded transaction",
	)
	return f
}

// loadTransaction reads a JSON transaction and binds it to the network
// selected with -network, if any
func loadTransaction(f *common.GlobalFlags, path string) ledger.Transaction {
	var tx ledger.Transaction
	if err := common.ReadJSONFile(path, &tx); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return applyNetwork(f, tx)
}

func applyNetwork(f *common.GlobalFlags, tx ledger.Transaction) ledger.Transaction {
	network, ok := f.SelectedNetwork()
	if !ok {
		return tx
	}
	ret, err := network.ApplyTo(tx)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	f.Logger.Debug(
		"bound transaction to network",
		"network", network.String(),
		"genesis_id", network.GenesisId,
	)
	return ret
}

func runEncode(f *common.GlobalFlags) {
	encodeFlags := newEncodeFlags("encode")
	err := encodeFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	tx := loadTransaction(f, encodeFlags.txFile)
	var data []byte
	if encodeFlags.prefix {
		data, err = ledger.EncodeWithPrefix(tx)
	} else {
		data, err = ledger.Encode(tx)
	}
	if err != nil {
		fmt.Printf("ERROR: failed to encode transaction: %s\n", err)
		os.Exit(1)
	}
	f.Logger.Debug("encoded transaction", "type", tx.Type.String(), "size", len(data))
	fmt.Println(common.EncodeBytes(f.Format, data))
}

func readEncoded(f *common.GlobalFlags, name string) []byte {
	decodeFlags := newDecodeFlags(name)
	err := decodeFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	data, err := common.ReadBinary(f.Format, decodeFlags.input, decodeFlags.file)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return data
}

func runDecode(f *common.GlobalFlags) {
	data := readEncoded(f, "decode")
	tx, err := ledger.Decode(data)
	if err != nil {
		fmt.Printf("ERROR: failed to decode transaction: %s\n", err)
		os.Exit(1)
	}
	if err := tx.Validate(); err != nil {
		f.Logger.Warn("transaction failed validation", "error", err)
	}
	if err := common.PrintJSON(tx); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func runType(f *common.GlobalFlags) {
	data := readEncoded(f, "type")
	txType, err := ledger.PeekType(data)
	if err != nil {
		fmt.Printf("ERROR: failed to determine transaction type: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("type: %s (supported = %t)\n", txType, txType.Supported())
}

func runId(f *common.GlobalFlags) {
	idFlags := newEncodeFlags("id")
	err := idFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	tx := loadTransaction(f, idFlags.txFile)
	rawId, err := tx.RawId()
	if err != nil {
		fmt.Printf("ERROR: failed to compute transaction id: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("id: %s\n", rawId.String())
	fmt.Printf("raw-id: %s\n", common.EncodeBytes(f.Format, rawId.Bytes()))
}
