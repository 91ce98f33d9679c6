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

package mesh

import (
	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
)

var logger = logging.NewPackageLogger("mesh")

// events
const (
	EVENT_SESSION_OPENED = "session_opened"
	EVENT_SCOUT_DONE     = "scout_done"
)

// Session is an opaque handle for an established runtime session. At this
// layer it is forwarded, not interpreted - its messaging behavior is defined
// by the runtime.
type Session interface {
	// ID is a unique identifier assigned to the session for tracking purposes
	ID() string

	// WhatAmI is the role the local process joined the mesh as
	WhatAmI() WhatAmI

	// Close releases the session. Closing an already closed session is a no-op.
	Close() error

	// Closed tests if the session has been closed
	Closed() bool
}

// Open establishes a session against the registered runtime. The call blocks
// until the runtime completes establishment - no additional timeout is
// imposed here. On failure the runtime's error is translated; no half open
// session escapes to the caller.
func Open(cfg *config.Config) (Session, error) {
	rt, zerr := runtime()
	if zerr != nil {
		return nil, zerr
	}
	if cfg == nil {
		cfg = config.Default()
	}
	session, err := rt.Open(cfg.Clone())
	if err != nil {
		return nil, Translate(err)
	}
	logger.Info().Str(logging.EVENT, EVENT_SESSION_OPENED).Str(logging.ID, session.ID()).Msg("")
	return session, nil
}
