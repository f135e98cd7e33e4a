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

import "github.com/tehnick/ndefcore/internal/syncutil"

// variant distinguishes the decoded payload a Record carries, if any.
// It mirrors the class-inheritance split in the original C library (a
// common NfcNdefRec base with NfcNdefRecU/NfcNdefRecT subclasses) as a
// Go tagged union instead of virtual dispatch.
type variant interface {
	rtdTag() RTD
}

type uriVariant struct {
	uri string
}

func (uriVariant) rtdTag() RTD { return RTDURI }

type textVariant struct {
	lang  string
	text  string
	utf16 bool
}

func (textVariant) rtdTag() RTD { return RTDText }

type genericVariant struct{}

func (genericVariant) rtdTag() RTD { return RTDUnknown }

// Record is a single parsed or synthesized NDEF record. Its common fields
// (TNF, RTD, Flags, Raw, Type, ID, Payload, Next) are populated the same
// way regardless of variant; Type/ID/Payload are zero-copy views into Raw.
//
// Records are immutable after construction. Next links form a singly
// linked, unidirectional chain in wire order.
type Record struct {
	Next    *Record
	raw     []byte
	variant variant
	TNF     TNF
	RTD     RTD
	Flags   Flags
	Type    ByteView
	ID      ByteView
	Payload ByteView

	refs refCount
}

// refCount gives a Record handle-with-reference-counting semantics over an
// otherwise immutable value. Go's GC reclaims memory regardless, but
// Ref/Unref preserve the observable contract: the Nth Unref that brings the
// count to zero also releases the record's successor, cascading down the
// chain exactly like nfc_ndef_rec_finalize's g_object_unref(self->next).
type refCount struct {
	mu    syncutil.Mutex
	count int
}

// RawBytes returns the record's own copy of its wire bytes.
func (r *Record) RawBytes() []byte {
	return r.raw
}

// Marshal returns a fresh copy of the record's wire bytes. It cannot fail:
// a Record only ever exists in already-valid form, built by buildRecord or
// BuildWellKnown, so unlike UnmarshalRecord it carries no error return.
func (r *Record) Marshal() ([]byte, error) {
	return append([]byte(nil), r.raw...), nil
}

// URI returns the decoded URI and true if this is a URI-variant record.
func (r *Record) URI() (string, bool) {
	v, ok := r.variant.(uriVariant)
	return v.uri, ok
}

// TextFields returns the decoded language, text, and UTF-16 flag, and true
// if this is a Text-variant record.
func (r *Record) TextFields() (lang, text string, utf16, ok bool) {
	v, matched := r.variant.(textVariant)
	if !matched {
		return "", "", false, false
	}
	return v.lang, v.text, v.utf16, true
}

// IsGeneric reports whether the record carries no decoded variant payload.
func (r *Record) IsGeneric() bool {
	_, ok := r.variant.(genericVariant)
	return ok
}

// newRecord builds the common part of a record. raw must already be the
// record's own owned copy of its wire bytes; typeOff/typeLen/idLen/
// payloadLen describe where, within raw, the Type/ID/Payload views begin.
func newRecord(raw []byte, tnf TNF, flags Flags, typeOff, typeLen, idLen, payloadLen int) *Record {
	r := &Record{
		raw:   raw,
		TNF:   tnf,
		Flags: flags,
		RTD:   RTDUnknown,
	}
	r.Type = byteViewOf(raw[typeOff : typeOff+typeLen])
	idOff := typeOff + typeLen
	if idLen > 0 {
		r.ID = byteViewOf(raw[idOff : idOff+idLen])
	}
	payloadOff := idOff + idLen
	r.Payload = byteViewOf(raw[payloadOff : payloadOff+payloadLen])
	r.refs.count = 1
	return r
}

// Ref increments the record's reference count and returns the record, the
// same "ref returns self" convenience nfc_ndef_rec_ref offers.
func (r *Record) Ref() *Record {
	if r == nil {
		return nil
	}
	r.refs.mu.Lock()
	r.refs.count++
	r.refs.mu.Unlock()
	return r
}

// Unref decrements the reference count. When it reaches zero the record is
// considered released and Unref cascades into r.Next, mirroring the
// recursive g_object_unref chain teardown in the original finalize path.
// Calling Unref on a nil record, or more times than Ref was called, is a
// no-op past the point the count would go negative.
func (r *Record) Unref() {
	if r == nil {
		return
	}
	r.refs.mu.Lock()
	if r.refs.count <= 0 {
		r.refs.mu.Unlock()
		return
	}
	r.refs.count--
	last := r.refs.count == 0
	r.refs.mu.Unlock()
	if last {
		r.Next.Unref()
	}
}
