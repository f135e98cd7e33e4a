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

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// textRecordType is the well-known TYPE field value for the Text RTD.
const textRecordType = "T"

const (
	textUTF16Flag    = 0x80
	textReservedFlag = 0x40
	textLangLenMask  = 0x3F
)

// decodedText holds a Text record's decoded fields.
type decodedText struct {
	lang  string
	text  string
	utf16 bool
}

// decodeTextPayload decodes a Text record payload:
// [status byte][lang, L bytes ASCII][text, remaining bytes].
func decodeTextPayload(payload []byte) (*decodedText, error) {
	if len(payload) < 1 {
		return nil, ErrTextPayloadTooShort
	}

	status := payload[0]
	if status&textReservedFlag != 0 {
		return nil, ErrTextReservedBitSet
	}

	utf16 := status&textUTF16Flag != 0
	langLen := int(status & textLangLenMask)

	if 1+langLen > len(payload) {
		return nil, ErrTextPayloadTruncated
	}

	lang := string(payload[1 : 1+langLen])
	if _, err := language.Parse(lang); err != nil {
		log := currentLogger()
		log.Debug().Str("lang", lang).Msg("ndef: text record language tag is not valid BCP-47, keeping it verbatim")
	}

	textBytes := payload[1+langLen:]
	text, err := decodeTextBytes(textBytes, utf16)
	if err != nil {
		return nil, err
	}

	return &decodedText{lang: lang, text: text, utf16: utf16}, nil
}

// decodeTextBytes decodes the text portion of a Text record payload.
// UTF-16 text with an explicit byte-order mark is decoded per that BOM;
// absent a BOM the NFC Forum Text RTD specification's status byte already
// told us the encoding is UTF-16BE, so that's the default.
func decodeTextBytes(b []byte, utf16 bool) (string, error) {
	if !utf16 {
		return string(b), nil
	}

	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// encodeTextPayload builds a Text record payload (always UTF-8, no BOM;
// matching NewTextRecord's original single-purpose encoder). It returns
// ErrTextLanguageTooLong rather than truncating lang when it doesn't fit
// the 6-bit language-length field.
func encodeTextPayload(lang, text string) ([]byte, error) {
	if len(lang) > textLangLenMask {
		return nil, ErrTextLanguageTooLong
	}
	payload := make([]byte, 1+len(lang)+len(text))
	payload[0] = byte(len(lang))
	copy(payload[1:], lang)
	copy(payload[1+len(lang):], text)
	return payload, nil
}
