// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
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

package ndef

import "strings"

// uriRecordType is the well-known TYPE field value for the URI RTD.
const uriRecordType = "U"

// uriPrefixes is the NFC Forum URI RTD Table 3 prefix-compression table.
// Codes 0x00-0x23 are defined here; anything at or beyond len(uriPrefixes)
// is not a valid prefix code.
var uriPrefixes = []string{
	"",                           // 0x00
	"http://www.",                // 0x01
	"https://www.",               // 0x02
	"http://",                    // 0x03
	"https://",                   // 0x04
	"tel:",                       // 0x05
	"mailto:",                    // 0x06
	"ftp://anonymous:anonymous@", // 0x07
	"ftp://ftp.",                 // 0x08
	"ftps://",                    // 0x09
	"sftp://",                    // 0x0A
	"smb://",                     // 0x0B
	"nfs://",                     // 0x0C
	"ftp://",                     // 0x0D
	"dav://",                     // 0x0E
	"news:",                      // 0x0F
	"telnet://",                  // 0x10
	"imap:",                      // 0x11
	"rtsp://",                    // 0x12
	"urn:",                       // 0x13
	"pop:",                       // 0x14
	"sip:",                       // 0x15
	"sips:",                      // 0x16
	"tftp:",                      // 0x17
	"btspp://",                   // 0x18
	"btl2cap://",                 // 0x19
	"btgoep://",                  // 0x1A
	"tcpobex://",                 // 0x1B
	"irdaobex://",                // 0x1C
	"file://",                    // 0x1D
	"urn:epc:id:",                // 0x1E
	"urn:epc:tag:",               // 0x1F
	"urn:epc:pat:",               // 0x20
	"urn:epc:raw:",               // 0x21
	"urn:epc:",                   // 0x22
	"urn:nfc:",                   // 0x23
}

// decodeURIPayload decodes a URI record's payload ([prefix code][suffix])
// into its full URI per the NFC Forum URI RTD specification's identifier
// code table. Codes beyond the table (reserved for future use) decode with
// an empty prefix rather than failing; an empty payload is a decode
// failure since the prefix code byte is mandatory.
func decodeURIPayload(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", ErrURIPayloadTooShort
	}

	code := int(payload[0])
	prefix := ""
	if code < len(uriPrefixes) {
		prefix = uriPrefixes[code]
	}

	return prefix + string(payload[1:]), nil
}

// encodeURIPayload builds a URI record payload, choosing the longest
// matching prefix from uriPrefixes to minimize the encoded suffix.
func encodeURIPayload(uri string) []byte {
	bestCode := 0
	bestLen := 0

	for i := len(uriPrefixes) - 1; i >= 1; i-- {
		prefix := uriPrefixes[i]
		if len(prefix) > bestLen && strings.HasPrefix(uri, prefix) {
			bestCode = i
			bestLen = len(prefix)
		}
	}

	suffix := uri[bestLen:]
	payload := make([]byte, 1+len(suffix))
	payload[0] = byte(bestCode)
	copy(payload[1:], suffix)
	return payload
}
