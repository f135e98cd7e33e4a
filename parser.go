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

// headerDescriptor carries the offsets a single parsed record's header
// described, before a Record is built from it. It never outlives the
// parse loop that produced it.
type headerDescriptor struct {
	rec           []byte // the record's full wire bytes, still aliasing the input
	header        byte
	typeOffset    int
	typeLength    int
	idLength      int
	payloadLength int
}

// parseHeader consumes one record's header from the front of block and
// returns its descriptor plus the number of bytes it occupies. It returns
// ErrMalformedRecord when block doesn't even hold the length fields the
// header bits declare, ErrPayloadTooLarge past the 2^31 sanity cutoff, and
// ErrTruncatedRecord when the header parses cleanly but the declared total
// overruns block -- the same "cut the garbage" bounds check
// nfc_ndef_rec_parse performs, including the exact 2^31 cutoff.
func parseHeader(block []byte) (*headerDescriptor, int, error) {
	if len(block) < 3 {
		return nil, 0, ErrMalformedRecord
	}

	hdr := block[0]
	typeLength := int(block[1])
	offset := 2
	total := 1 + 1 + typeLength

	var payloadLength int
	if hdr&hdrSR != 0 {
		if offset >= len(block) {
			return nil, 0, ErrMalformedRecord
		}
		payloadLength = int(block[offset])
		offset++
		total += 1 + payloadLength
	} else {
		if offset+4 > len(block) {
			return nil, 0, ErrMalformedRecord
		}
		payloadLength = int(binary.BigEndian.Uint32(block[offset : offset+4]))
		offset += 4
		total += 4 + payloadLength
	}

	var idLength int
	if hdr&hdrIL != 0 {
		if offset >= len(block) {
			return nil, 0, ErrMalformedRecord
		}
		idLength = int(block[offset])
		offset++
		total += 1 + idLength
	}

	if payloadLength >= maxPayloadLength {
		return nil, 0, ErrPayloadTooLarge
	}
	if total > len(block) {
		return nil, 0, ErrTruncatedRecord
	}

	return &headerDescriptor{
		rec:           block[:total],
		header:        hdr,
		typeOffset:    offset,
		typeLength:    typeLength,
		idLength:      idLength,
		payloadLength: payloadLength,
	}, total, nil
}

// ParseMessage parses one NDEF message from data and returns the head of
// the resulting record chain, or nil.
//
// A zero-length input returns a single empty record (TNF=Empty). Anything
// else is parsed record-by-record until the input is exhausted or a record
// fails to parse; whatever was built before the failure is still returned.
// Chunked records (CF=1) are dropped -- logged, not included in the chain
// -- and parsing continues with the next record.
func ParseMessage(data []byte) *Record {
	if len(data) == 0 {
		return newEmptyRecord()
	}

	var head, tail *Record
	cursor := data
	for len(cursor) > 0 {
		desc, consumed, err := parseHeader(cursor)
		if err != nil {
			log := currentLogger()
			log.Debug().Err(err).Int("remaining", len(cursor)).Msg("ndef: stopping, garbage or truncated record")
			break
		}
		cursor = cursor[consumed:]

		if desc.header&hdrCF != 0 {
			log := currentLogger()
			log.Debug().Msg("ndef: chunked records are not supported, dropping")
			continue
		}

		rec := buildRecord(desc)
		if head == nil {
			head = rec
			tail = rec
		} else {
			tail.Next = rec
			tail = rec
		}
	}
	return head
}

// UnmarshalRecord parses exactly one record from the front of data and
// returns it along with the number of bytes consumed, or a diagnostic
// error explaining why it could not -- the entry point for a caller who
// asked for a specific record and deserves to know why it failed, as
// opposed to ParseMessage's "stop the chain and return what we have"
// leniency.
//
// Unlike ParseMessage/buildRecord, which clamp a reserved TNF (0x07) to
// Unknown and silently drop a chunked record, UnmarshalRecord rejects both
// outright: ErrReservedBitSet and ErrChunkedRecord respectively.
func UnmarshalRecord(data []byte) (*Record, int, error) {
	desc, consumed, err := parseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	if desc.header&hdrCF != 0 {
		return nil, 0, ErrChunkedRecord
	}
	if TNF(desc.header&tnfMask) == tnfReserved {
		return nil, 0, ErrReservedBitSet
	}

	return buildRecord(desc), consumed, nil
}
