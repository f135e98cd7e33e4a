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

import "encoding/binary"

// BuildWellKnown synthesizes a single-record NDEF message: TNF=WellKnown,
// both MB and ME set, short-record form unless the payload exceeds 255
// bytes. rtd is the RTD the caller intends this record to carry; it is
// compared against (and normally agrees with) whatever the TYPE bytes
// independently dispatch to -- the record's actual RTD always comes from
// that dispatch, the same path ParseMessage uses, so that
// ParseMessage(BuildWellKnown(...).RawBytes()) is observably identical to
// the record BuildWellKnown returns.
func BuildWellKnown(rtd RTD, typ, payload []byte) *Record {
	if len(payload) >= maxPayloadLength {
		return nil
	}
	buf := assembleWellKnownRecord(typ, payload)

	desc, _, err := parseHeader(buf)
	if err != nil {
		return nil
	}

	rec := buildRecord(desc)
	if rec.RTD != rtd {
		log := currentLogger()
		log.Debug().
			Str("type", string(typ)).
			Int("requestedRTD", int(rtd)).
			Int("dispatchedRTD", int(rec.RTD)).
			Msg("ndef: requested RTD does not match the RTD the TYPE field dispatches to")
	}
	return rec
}

// assembleWellKnownRecord lays out a well-known record's wire bytes per the
// NFC Forum NDEF specification's record layout: header, TYPE_LENGTH,
// PAYLOAD_LENGTH (1 or 4 bytes), TYPE, PAYLOAD. No IL bit is ever set --
// synthesized records never carry an ID.
func assembleWellKnownRecord(typ, payload []byte) []byte {
	short := len(payload) <= shortRecordMaxPayload

	hdr := byte(hdrMB | hdrME | byte(TNFWellKnown))
	if short {
		hdr |= hdrSR
	}

	buf := make([]byte, 0, 6+len(typ)+len(payload))
	buf = append(buf, hdr, byte(len(typ)))

	if short {
		buf = append(buf, byte(len(payload)))
	} else {
		var lenBytes [4]byte
		//nolint:gosec // len(payload) is non-negative and below 2^31; BuildWellKnown rejects anything larger before assembling
		binary.BigEndian.PutUint32(lenBytes[:], uint32(len(payload)))
		buf = append(buf, lenBytes[:]...)
	}

	buf = append(buf, typ...)
	buf = append(buf, payload...)
	return buf
}

// NewURIRecord builds a well-known URI record, choosing the shortest
// encoding for uri via the NFC Forum prefix-compression table.
func NewURIRecord(uri string) *Record {
	return BuildWellKnown(RTDURI, []byte(uriRecordType), encodeURIPayload(uri))
}

// NewTextRecord builds a well-known Text record. An empty lang defaults to
// "en". It returns ErrTextLanguageTooLong if lang does not fit the 6-bit
// language-length field the Text RTD status byte carries.
func NewTextRecord(text, lang string) (*Record, error) {
	if lang == "" {
		lang = "en"
	}
	payload, err := encodeTextPayload(lang, text)
	if err != nil {
		return nil, err
	}
	return BuildWellKnown(RTDText, []byte(textRecordType), payload), nil
}
