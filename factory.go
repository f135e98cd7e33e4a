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

// buildRecord turns a header descriptor into an owned Record, dispatching
// on TNF/TYPE to decode a recognized well-known variant. It never fails:
// an unrecognized type, or a well-known type whose payload doesn't decode,
// just yields a Generic record.
func buildRecord(desc *headerDescriptor) *Record {
	tnf := TNF(desc.header & tnfMask)
	if tnf == tnfReserved {
		tnf = TNFUnknown
	}

	var flags Flags
	if desc.header&hdrMB != 0 {
		flags |= FlagFirst
	}
	if desc.header&hdrME != 0 {
		flags |= FlagLast
	}

	raw := append([]byte(nil), desc.rec...)
	rec := newRecord(raw, tnf, flags, desc.typeOffset, desc.typeLength, desc.idLength, desc.payloadLength)

	if tnf != TNFWellKnown {
		rec.variant = genericVariant{}
		return rec
	}

	switch rec.Type.String() {
	case uriRecordType:
		if uri, err := decodeURIPayload(rec.Payload.Bytes()); err == nil {
			rec.variant = uriVariant{uri: uri}
			rec.RTD = RTDURI
			return rec
		}
	case textRecordType:
		if tr, err := decodeTextPayload(rec.Payload.Bytes()); err == nil {
			rec.variant = textVariant{lang: tr.lang, text: tr.text, utf16: tr.utf16}
			rec.RTD = RTDText
			return rec
		}
	default:
		if rtd, ok := lookupWellKnownRTD(rec.Type.String()); ok {
			rec.RTD = rtd
			rec.variant = genericVariant{}
			return rec
		}
	}

	rec.variant = genericVariant{}
	rec.RTD = RTDUnknown
	return rec
}

// newEmptyRecord builds the special-case empty NDEF record: TNF=Empty,
// no type/id/payload, no flags.
func newEmptyRecord() *Record {
	rec := newRecord([]byte{}, TNFEmpty, 0, 0, 0, 0, 0)
	rec.variant = genericVariant{}
	return rec
}
