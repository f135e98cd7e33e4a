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

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/tehnick/ndefcore/internal/syncutil"
)

// logger is the package-wide logging sink. It defaults to a disabled
// zerolog.Logger so importing this package produces no output unless the
// host application opts in, a "silent until asked" posture expressed with
// github.com/rs/zerolog rather than bespoke Debugf/Debugln helpers.
//
// loggerMu guards it: reads (one per parse-time log call) go through
// currentLogger and take the read lock, SetLogger/SetLogLevel take the
// write lock, the same read-heavy/write-rare split syncutil.RWMutex exists
// for.
var (
	loggerMu syncutil.RWMutex
	logger   = zerolog.New(os.Stderr).Level(zerolog.Disabled).With().Str("pkg", "ndef").Logger()
)

// currentLogger returns the active logger. Every log call in this package
// goes through it instead of touching the package var directly.
func currentLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package-wide logger, letting a host application
// route ndef's diagnostics (dropped chunked records, rejected malformed
// frames) into its own structured log.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// SetLogLevel is a convenience for enabling the default stderr logger at a
// given level without constructing a zerolog.Logger by hand.
func SetLogLevel(level zerolog.Level) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = logger.Level(level)
}
