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

import "testing"

// FuzzParseMessage feeds arbitrary bytes through ParseMessage. The only
// property under test is bounds safety: ParseMessage must never panic, and
// every view it returns must stay within the record's own raw buffer --
// walkChain below re-derives that check so a corpus entry that ever
// violates it fails loudly instead of passing by accident.
func FuzzParseMessage(f *testing.F) {
	seeds := [][]byte{
		nil,
		{0xD1, 0x01, 0x00, 0x78},
		{0xD1, 0x01, 0x08, 0x55, 0x01, 0x6E, 0x66, 0x63, 0x2E, 0x63, 0x6F, 0x6D},
		{0xD1, 0x01, 0x08, 0x54, 0x02, 0x65, 0x6E, 0x48, 0x65, 0x6C, 0x6C, 0x6F},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x00, 0x80, 0x00, 0x00, 0x00},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1024 {
			t.Skip()
		}
		head := ParseMessage(data)
		walkChain(t, head)
	})
}

// FuzzParseTLV mirrors FuzzParseMessage for the TLV container entry point.
func FuzzParseTLV(f *testing.F) {
	seeds := [][]byte{
		nil,
		{0x03, 0x04, 0xD1, 0x01, 0x00, 0x78},
		{0x00, 0x00, 0xFE},
		{0x03, 0xFF, 0x01, 0x00},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1024 {
			t.Skip()
		}
		head := ParseTLV(data)
		walkChain(t, head)
	})
}

func walkChain(t *testing.T, head *Record) {
	t.Helper()
	for rec := head; rec != nil; rec = rec.Next {
		raw := rec.RawBytes()
		requireWithinRaw(t, raw, rec.Type)
		requireWithinRaw(t, raw, rec.ID)
		requireWithinRaw(t, raw, rec.Payload)
	}
}

func requireWithinRaw(t *testing.T, raw []byte, v ByteView) {
	t.Helper()
	if v.IsEmpty() {
		return
	}
	rawStart := addrOf(raw)
	viewStart := addrOf(v.Bytes())
	if viewStart < rawStart || viewStart+uintptr(v.Len()) > rawStart+uintptr(len(raw)) {
		t.Fatalf("view escapes raw buffer: raw=[%#x,%#x) view=[%#x,%#x)",
			rawStart, rawStart+uintptr(len(raw)), viewStart, viewStart+uintptr(v.Len()))
	}
}
