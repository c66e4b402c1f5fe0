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
	ledgercommon "github.com/blinklabs-io/gotransact/ledger/common"
)

type addressFlags struct {
	flagset   *flag.FlagSet
	publicKey string
	address   string
}

func newAddressFlags() *addressFlags {
	f := &addressFlags{
		flagset: flag.NewFlagSet("address", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.publicKey,
		"pubkey",
		"",
		"32 byte public key to convert to an address, in the format selected with -format",
	)
	f.flagset.StringVar(
		&f.address,
		"address",
		"",
		"address to check and convert to a public key",
	)
	return f
}

func runAddress(f *common.GlobalFlags) {
	addressFlags := newAddressFlags()
	err := addressFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var addr ledgercommon.Address
	switch {
	case addressFlags.publicKey != "":
		pk, err := common.DecodeBytes(f.Format, addressFlags.publicKey)
		if err != nil {
			fmt.Printf("ERROR: failed to decode public key: %s\n", err)
			os.Exit(1)
		}
		addr, err = ledgercommon.NewAddressFromPublicKey(pk)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	case addressFlags.address != "":
		addr, err = ledgercommon.NewAddress(addressFlags.address)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("You must specify one of -pubkey or -address\n")
		os.Exit(1)
	}
	fmt.Printf("address: %s\n", addr.String())
	fmt.Printf("public-key: %s\n", common.EncodeBytes(f.Format, addr.PublicKey()))
	fmt.Printf("checksum: %s\n", common.EncodeBytes(f.Format, addr.Checksum()))
}
