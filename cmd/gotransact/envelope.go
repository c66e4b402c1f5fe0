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

type attachFlags struct {
	flagset *flag.FlagSet
	tx      string
	txFile  string
	sig     string
	verify  bool
}

func newAttachFlags() *attachFlags {
	f := &attachFlags{
		flagset: flag.NewFlagSet("attach", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.tx,
		"tx",
		"",
		"encoded transaction, in the format selected with -format",
	)
	f.flagset.StringVar(
		&f.txFile,
		"tx-file",
		"",
		"path to a file containing the raw encoded transaction",
	)
	f.flagset.StringVar(
		&f.sig,
		"sig",
		"",
		"64 byte signature, in the format selected with -format",
	)
	f.flagset.BoolVar(
		&f.verify,
		"verify",
		false,
		"check the signature against the sender before attaching it",
	)
	return f
}

func runAttach(f *common.GlobalFlags) {
	attachFlags := newAttachFlags()
	err := attachFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	txData, err := common.ReadBinary(f.Format, attachFlags.tx, attachFlags.txFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	sig, err := common.DecodeBytes(f.Format, attachFlags.sig)
	if err != nil {
		fmt.Printf("ERROR: failed to decode signature: %s\n", err)
		os.Exit(1)
	}
	signedTx, err := ledger.AttachSignature(txData, sig)
	if err != nil {
		fmt.Printf("ERROR: failed to attach signature: %s\n", err)
		os.Exit(1)
	}
	if attachFlags.verify {
		stx, err := ledger.DecodeSignedTransaction(signedTx)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		if err := ledger.VerifySignature(stx); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		f.Logger.Debug("signature verified", "sender", stx.Transaction.Sender.String())
	}
	fmt.Println(common.EncodeBytes(f.Format, signedTx))
}

func runSplit(f *common.GlobalFlags) {
	data := readEncoded(f, "split")
	txData, sig, err := ledger.SplitEnvelope(data)
	if err != nil {
		fmt.Printf("ERROR: failed to split signed transaction: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("txn: %s\n", common.EncodeBytes(f.Format, txData))
	fmt.Printf("sig: %s\n", common.EncodeBytes(f.Format, sig))
}
