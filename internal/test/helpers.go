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

package test

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeBase64String decodes standard base64, panicking on invalid input
func DecodeBase64String(b64Data string) []byte {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64Data))
	if err != nil {
		panic(fmt.Sprintf("error decoding base64: %s", err))
	}
	return decoded
}

// EncodeHexString is the inverse of DecodeHexString
func EncodeHexString(data []byte) string {
	return hex.EncodeToString(data)
}

// EncodeBase64String is the inverse of DecodeBase64String
func EncodeBase64String(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
