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

// Command ndefdump parses a hex-encoded NDEF message (or TLV-wrapped
// message) and prints the resulting record chain. It has no hardware
// dependency -- bytes come from a flag or stdin, never from a tag.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tehnick/ndefcore"
)

func main() {
	var (
		hexInput = flag.String("hex", "", "hex-encoded NDEF bytes (reads stdin if empty)")
		tlv      = flag.Bool("tlv", false, "treat input as a TLV container and extract NDEF message(s) from it")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ndef.SetLogLevel(zerolog.DebugLevel)
	}

	data, err := readInput(*hexInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ndefdump: %v\n", err)
		os.Exit(1)
	}

	var head *ndef.Record
	if *tlv {
		head = ndef.ParseTLV(data)
	} else {
		head = ndef.ParseMessage(data)
	}

	if head == nil {
		fmt.Println("no records")
		return
	}

	for rec, i := head, 0; rec != nil; rec, i = rec.Next, i+1 {
		printRecord(i, rec)
	}
}

func readInput(hexFlag string) ([]byte, error) {
	raw := hexFlag
	if raw == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var sb strings.Builder
		for scanner.Scan() {
			sb.WriteString(scanner.Text())
		}
		if err := scanner.Err(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		raw = sb.String()
	}

	raw = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, raw)

	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	return data, nil
}

func printRecord(idx int, rec *ndef.Record) {
	fmt.Printf("record %d: tnf=%d rtd=%d flags=%#02x type=%q id=%q payload=%d bytes\n",
		idx, rec.TNF, rec.RTD, rec.Flags, rec.Type.String(), rec.ID.String(), rec.Payload.Len())

	if uri, ok := rec.URI(); ok {
		fmt.Printf("  uri: %s\n", uri)
	}
	if lang, text, utf16, ok := rec.TextFields(); ok {
		fmt.Printf("  lang=%s utf16=%v text=%q\n", lang, utf16, text)
	}
}
