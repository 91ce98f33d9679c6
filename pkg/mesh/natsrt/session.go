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

package natsrt

import (
	"sync"

	"github.com/nats-io/go-nats"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

// session wraps a NATS connection as the opaque mesh session handle.
type session struct {
	id      string
	whatami mesh.WhatAmI
	nc      *nats.Conn

	closeOnce sync.Once
}

var _ mesh.Session = (*session)(nil)

func (a *session) ID() string {
	return a.id
}

func (a *session) WhatAmI() mesh.WhatAmI {
	return a.whatami
}

func (a *session) Close() error {
	a.closeOnce.Do(func() {
		a.nc.Close()
		sessionsClosedCounter().Inc()
		logger.Info().Str(logging.EVENT, EVENT_SESSION_CLOSED).Str(SESSION_ID, a.id).Msg("")
	})
	return nil
}

func (a *session) Closed() bool {
	return a.nc.IsClosed()
}
