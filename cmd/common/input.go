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
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// EncodeBytes renders binary data in the selected format
func EncodeBytes(format string, data []byte) string {
	if format == FormatBase64 {
		return base64.StdEncoding.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}

// DecodeBytes parses binary data rendered in the selected format
func DecodeBytes(format string, value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if format == FormatBase64 {
		return base64.StdEncoding.DecodeString(value)
	}
	return hex.DecodeString(value)
}

// ReadBinary returns the bytes given inline on the command line or, failing
// that, the raw contents of a file
func ReadBinary(format string, value string, path string) ([]byte, error) {
	switch {
	case value != "":
		ret, err := DecodeBytes(format, value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s input: %w", format, err)
		}
		return ret, nil
	case path != "":
		ret, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return ret, nil
	}
	return nil, errors.New("no input specified")
}

// ReadJSONFile decodes the JSON document at path into dest
func ReadJSONFile(path string, dest any) error {
	if path == "" {
		return errors.New("no input file specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	return nil
}

// PrintJSON writes v to stdout as indented JSON
func PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
