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

// Package ndef implements the NFC Data Exchange Format wire protocol: it
// parses raw NDEF byte streams into a chain of typed records, recognizes
// URI and Text well-known records, synthesizes well-known records back
// into wire form, and can extract NDEF messages embedded in a TLV
// container.
//
// The main entry points are ParseMessage, ParseTLV, and BuildWellKnown.
// UnmarshalRecord and UnmarshalTLV parse a single record or TLV entry and
// report why it failed; NewTLVReader walks a TLV stream entry by entry;
// NewURIRecord and NewTextRecord build on BuildWellKnown; SetLogger and
// SetLogLevel configure diagnostics. The rest are accessors on Record plus
// its Ref/Unref reference counting.
package ndef
