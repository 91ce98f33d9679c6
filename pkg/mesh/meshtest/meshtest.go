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

// Package meshtest provides a scripted in-memory mesh.Runtime for tests.
// It lets tests control exactly which announcements the discovery stream
// produces, when, and whether the stream ever ends.
package meshtest

import (
	"sync"
	"time"

	"github.com/nats-io/nuid"
	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
	"gopkg.in/tomb.v2"
)

// SendFunc delivers one Hello to the scout stream. It reports false once the
// stream has been stopped.
type SendFunc func(mesh.Hello) bool

// EmitFunc drives a simulated discovery stream. It runs on its own goroutine;
// when it returns, the runtime ends the stream (the channel is closed). It
// must return promptly once dying is closed.
type EmitFunc func(send SendFunc, dying <-chan struct{})

// Runtime is a scripted mesh runtime.
type Runtime struct {
	// OpenErr, when set, fails every Open call
	OpenErr error
	// ScoutErr, when set, fails every Scout call
	ScoutErr error
	// Emit drives the discovery stream. A nil Emit produces a stream that
	// never announces and never ends on its own.
	Emit EmitFunc

	mutex    sync.Mutex
	sessions []*Session
}

var _ mesh.Runtime = (*Runtime)(nil)

func (a *Runtime) Open(cfg *config.Config) (mesh.Session, error) {
	if a.OpenErr != nil {
		return nil, a.OpenErr
	}
	whatami := mesh.Peer
	if mode, ok := cfg.GetString("mode"); ok {
		if parsed, err := mesh.ParseWhatAmI(mode); err == nil && parsed != 0 {
			whatami = parsed
		}
	}
	session := &Session{id: nuid.Next(), whatami: whatami}
	a.mutex.Lock()
	a.sessions = append(a.sessions, session)
	a.mutex.Unlock()
	return session, nil
}

func (a *Runtime) Scout(what mesh.WhatAmI, cfg *config.Config) (<-chan mesh.Hello, mesh.StopFunc, error) {
	if a.ScoutErr != nil {
		return nil, nil, a.ScoutErr
	}
	out := make(chan mesh.Hello)
	var t tomb.Tomb
	t.Go(func() error {
		defer close(out)
		if a.Emit == nil {
			<-t.Dying()
			return nil
		}
		send := func(hello mesh.Hello) bool {
			if !hello.WhatAmI.Matches(what) {
				// filtered out, the stream stays live
				return true
			}
			select {
			case out <- hello:
				return true
			case <-t.Dying():
				return false
			}
		}
		a.Emit(send, t.Dying())
		return nil
	})
	stop := func() {
		t.Kill(nil)
		t.Wait()
	}
	return out, stop, nil
}

// Sessions returns every session opened so far.
func (a *Runtime) Sessions() []*Session {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return append([]*Session(nil), a.sessions...)
}

// Session is the simulated runtime's opaque session handle.
type Session struct {
	id      string
	whatami mesh.WhatAmI

	mutex  sync.Mutex
	closed bool
}

func (a *Session) ID() string {
	return a.id
}

func (a *Session) WhatAmI() mesh.WhatAmI {
	return a.whatami
}

func (a *Session) Close() error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.closed = true
	return nil
}

func (a *Session) Closed() bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.closed
}

// EmitEvery announces hello every interval and never ends the stream on its
// own - the common live network case.
func EmitEvery(interval time.Duration, hello mesh.Hello) EmitFunc {
	return func(send SendFunc, dying <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !send(hello) {
					return
				}
			case <-dying:
				return
			}
		}
	}
}

// Announcement schedules one Hello at an offset from stream start.
type Announcement struct {
	At    time.Duration
	Hello mesh.Hello
}

// EmitScript announces each Hello at its offset, then ends the stream - the
// runtime shutdown case.
func EmitScript(script ...Announcement) EmitFunc {
	return func(send SendFunc, dying <-chan struct{}) {
		start := time.Now()
		for _, announcement := range script {
			if wait := announcement.At - time.Since(start); wait > 0 {
				select {
				case <-time.After(wait):
				case <-dying:
					return
				}
			}
			if !send(announcement.Hello) {
				return
			}
		}
	}
}
