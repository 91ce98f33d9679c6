// Copyright (c) 2025 ZenMesh, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the zerolog based logging support used across zenmesh.
//
// Every package creates its own logger via NewPackageLogger. Process-wide logger
// setup is performed once via Init - it is an idempotent hook intended to be
// called by the embedding application, not by library code.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger fields
const (
	PACKAGE = "pkg"
	FUNC    = "func"
	EVENT   = "event"
	ID      = "id"
	PEER    = "peer"
	WHATAMI = "whatami"
)

// EnvLogLevel is consulted by Init when no explicit level is supplied.
const EnvLogLevel = "ZENMESH_LOG"

// NewPackageLogger returns a new logger with pkg={pkg}
func NewPackageLogger(pkg string) zerolog.Logger {
	return log.With().Str(PACKAGE, pkg).Logger()
}

var initOnce sync.Once

// Init configures the process-wide log level. It is safe to call multiple
// times - only the first call has any effect. If level is blank, the
// ZENMESH_LOG env var is used. Unknown levels fall back to info.
func Init(level string) {
	initOnce.Do(func() {
		if level == "" {
			level = os.Getenv(EnvLogLevel)
		}
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)
	})
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
