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

// ByteView is a non-owning reference into a byte slice held elsewhere. It is
// the zero-copy primitive every record's Type/ID/Payload views are built
// from: they all point into the record's own Raw buffer rather than
// allocating a fresh copy.
//
// The zero value is a valid, empty view.
type ByteView struct {
	bytes []byte
}

// byteViewOf wraps data without copying it. The caller must not mutate data
// afterward; every ByteView in this package is carved out of an owned,
// immutable buffer (Record.Raw).
func byteViewOf(data []byte) ByteView {
	return ByteView{bytes: data}
}

// Bytes returns the viewed slice. The returned slice aliases the owning
// buffer and must not be mutated by the caller.
func (v ByteView) Bytes() []byte {
	return v.bytes
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.bytes)
}

// IsEmpty reports whether the view has zero length.
func (v ByteView) IsEmpty() bool {
	return len(v.bytes) == 0
}

// String returns the view's bytes reinterpreted as a string, useful for
// ASCII/UTF-8 fields such as the TYPE field.
func (v ByteView) String() string {
	return string(v.bytes)
}
