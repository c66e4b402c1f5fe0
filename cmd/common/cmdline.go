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

package common

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	transact "github.com/blinklabs-io/gotransact"
)

const (
	FormatHex    = "hex"
	FormatBase64 = "base64"
)

type GlobalFlags struct {
	Flagset  *flag.FlagSet
	Network  string
	LogLevel string
	Format   string
	Logger   *slog.Logger
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"",
		"bind transactions to a named network (mainnet, testnet, betanet)",
	)
	f.Flagset.StringVar(
		&f.LogLevel,
		"log-level",
		"info",
		"log level (debug, info, warn, error)",
	)
	f.Flagset.StringVar(
		&f.Format,
		"format",
		FormatHex,
		"encoding for binary input and output (hex or base64)",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		fmt.Printf("Invalid log level specified: %s\n", f.LogLevel)
		os.Exit(1)
	}
	f.Logger = slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
	if f.Format != FormatHex && f.Format != FormatBase64 {
		fmt.Printf("Invalid format specified: %s\n", f.Format)
		os.Exit(1)
	}
	if f.Network != "" {
		if transact.NetworkByName(f.Network) == transact.NetworkInvalid {
			fmt.Printf("Invalid network specified: %s\n", f.Network)
			os.Exit(1)
		}
	}
}

// SelectedNetwork returns the network chosen with -network, if any
func (f *GlobalFlags) SelectedNetwork() (transact.Network, bool) {
	if f.Network == "" {
		return transact.NetworkInvalid, false
	}
	return transact.NetworkByName(f.Network), true
}
