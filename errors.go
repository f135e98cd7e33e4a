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

import "errors"

// Record-level parse errors. None of these ever escape ParseMessage or
// ParseTLV: a truncated or malformed record just ends the chain-building
// loop, and a variant-decode failure just degrades a record to Generic.
// The record, TLV and language-length errors are returned by the
// lower-level, single-unit entry points (UnmarshalRecord, UnmarshalTLV,
// NewTextRecord) where a caller asked for a specific record or TLV entry
// and deserves to know why it failed. The URI and Text payload decode
// errors are only returned by the unexported decoders; no exported
// function returns them.
var (
	ErrTruncatedRecord = errors.New("ndef: truncated record")
	ErrMalformedRecord = errors.New("ndef: malformed record header")
	ErrPayloadTooLarge = errors.New("ndef: payload length is 2^31 or more")
	ErrChunkedRecord   = errors.New("ndef: chunked records are not supported")
	ErrReservedBitSet  = errors.New("ndef: reserved header bit set")

	ErrURIPayloadTooShort = errors.New("ndef: URI payload too short")

	ErrTextPayloadTooShort  = errors.New("ndef: text payload too short")
	ErrTextReservedBitSet   = errors.New("ndef: text status byte reserved bit set")
	ErrTextLanguageTooLong  = errors.New("ndef: text language code too long")
	ErrTextPayloadTruncated = errors.New("ndef: text payload truncated before end of language code")

	ErrTLVTruncated   = errors.New("ndef: TLV stream truncated")
	ErrTLVBadLength   = errors.New("ndef: TLV length field incomplete")
	ErrTLVValueExceed = errors.New("ndef: TLV value length exceeds remaining stream")
)
