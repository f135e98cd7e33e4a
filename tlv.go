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

// TLVNDEFMessage is the TLV type that wraps an NDEF message inside a
// container format (NFC Forum Type 2 Tag and similar).
const TLVNDEFMessage byte = 0x03

const (
	tlvTypeNull       byte = 0x00
	tlvTypeTerminator byte = 0xFE
	tlvLongLengthMark byte = 0xFF
)

// TLVReader walks a Type-Length-Value byte stream, yielding each
// (type, value) entry in order. NULL TLVs (0x00) are skipped transparently;
// a Terminator TLV (0xFE), stream exhaustion, or any malformed/truncated
// entry ends extraction.
type TLVReader struct {
	data []byte
}

// NewTLVReader creates a reader positioned at the start of data.
func NewTLVReader(data []byte) *TLVReader {
	return &TLVReader{data: data}
}

// Next returns the next (type, value) entry, or ok=false once the stream
// is exhausted, a terminator is reached, or the entry doesn't fit in the
// remaining bytes. It degrades every UnmarshalTLV failure to "stop
// extraction" rather than surfacing why -- a caller who wants the reason
// calls UnmarshalTLV directly on the remaining bytes instead.
func (r *TLVReader) Next() (tlvType byte, value ByteView, ok bool) {
	for len(r.data) > 0 {
		t, v, consumed, err := UnmarshalTLV(r.data)
		if err != nil {
			r.data = nil
			return 0, ByteView{}, false
		}
		if t == tlvTypeTerminator {
			r.data = nil
			return 0, ByteView{}, false
		}
		r.data = r.data[consumed:]
		if t == tlvTypeNull {
			continue
		}
		return t, v, true
	}
	return 0, ByteView{}, false
}

// UnmarshalTLV parses exactly one TLV entry from the front of data and
// returns its type, value, and the number of bytes consumed, or a
// diagnostic error describing why it could not be parsed -- the same
// "caller deserves to know why" contract UnmarshalRecord offers for a
// single NDEF record. NULL (0x00) and Terminator (0xFE) entries decode
// successfully with an empty value; it is the caller's job (TLVReader.Next
// does this) to treat those as "skip" and "stop" respectively.
func UnmarshalTLV(data []byte) (tlvType byte, value ByteView, consumed int, err error) {
	if len(data) == 0 {
		return 0, ByteView{}, 0, ErrTLVTruncated
	}

	t := data[0]
	if t == tlvTypeNull || t == tlvTypeTerminator {
		return t, ByteView{}, 1, nil
	}

	if len(data) < 2 {
		return 0, ByteView{}, 0, ErrTLVBadLength
	}
	lengthByte := data[1]

	var length, headerSize int
	if lengthByte != tlvLongLengthMark {
		length = int(lengthByte)
		headerSize = 2
	} else {
		if len(data) < 4 {
			return 0, ByteView{}, 0, ErrTLVBadLength
		}
		length = int(binary.BigEndian.Uint16(data[2:4]))
		headerSize = 4
	}

	if headerSize+length > len(data) {
		return 0, ByteView{}, 0, ErrTLVValueExceed
	}

	return t, byteViewOf(data[headerSize : headerSize+length]), headerSize + length, nil
}

// ParseTLV walks a TLV stream and parses the NDEF message inside every
// TLV_NDEF_MESSAGE (0x03) block it finds, concatenating the resulting
// chains in TLV order, and returns the combined head (or nil).
func ParseTLV(data []byte) *Record {
	reader := NewTLVReader(data)
	var head, tail *Record

	for {
		t, value, ok := reader.Next()
		if !ok {
			break
		}
		if t != TLVNDEFMessage {
			continue
		}

		chain := ParseMessage(value.Bytes())
		if chain == nil {
			continue
		}
		if head == nil {
			head = chain
		} else {
			tail.Next = chain
		}
		tail = chain
		for tail.Next != nil {
			tail = tail.Next
		}
	}
	return head
}
