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
	"strings"
	"time"

	"github.com/nats-io/go-nats"
	"github.com/nats-io/nuid"
	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
	"gopkg.in/tomb.v2"
)

// DefaultConnectTimeout bounds how long connection establishment may take
func DefaultConnectTimeout(options *nats.Options) error {
	options.Timeout = 5 * time.Second
	return nil
}

// DefaultReconnectWait sets the pause between reconnect attempts
func DefaultReconnectWait(options *nats.Options) error {
	options.ReconnectWait = 2 * time.Second
	return nil
}

// RuntimeSettings are used to create new Runtime instances.
type RuntimeSettings struct {
	// Options are applied to every NATS connection the runtime opens, after
	// the defaults (DefaultConnectTimeout, DefaultReconnectWait)
	Options []nats.Option
}

// NewRuntime creates a mesh.Runtime backed by NATS. A nil settings is
// equivalent to &RuntimeSettings{}.
func NewRuntime(settings *RuntimeSettings) mesh.Runtime {
	if settings == nil {
		settings = &RuntimeSettings{}
	}
	options := []nats.Option{DefaultConnectTimeout, DefaultReconnectWait}
	options = append(options, settings.Options...)
	return &runtime{options: options}
}

type runtime struct {
	options []nats.Option
}

var _ mesh.Runtime = (*runtime)(nil)

// serverURLs resolves the NATS server list from the connect endpoints.
func serverURLs(cfg *config.Config) string {
	if endpoints, ok := cfg.GetStrings("connect.endpoints"); ok && len(endpoints) > 0 {
		return strings.Join(endpoints, ",")
	}
	return nats.DefaultURL
}

// sessionRole resolves the role the local process joins as.
func sessionRole(cfg *config.Config) mesh.WhatAmI {
	if mode, ok := cfg.GetString("mode"); ok {
		if whatami, err := mesh.ParseWhatAmI(mode); err == nil {
			return whatami
		}
	}
	return mesh.Peer
}

// scoutInterval resolves the delay between scout query publications.
func scoutInterval(cfg *config.Config) time.Duration {
	if delay, ok := cfg.GetNumber("scouting.delay"); ok && delay > 0 {
		return time.Duration(delay) * time.Millisecond
	}
	return 200 * time.Millisecond
}

func (a *runtime) connect(cfg *config.Config) (*nats.Conn, error) {
	return nats.Connect(serverURLs(cfg), a.options...)
}

func (a *runtime) Open(cfg *config.Config) (mesh.Session, error) {
	nc, err := a.connect(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{id: nuid.Next(), whatami: sessionRole(cfg), nc: nc}
	sessionsOpenedCounter().Inc()
	logger.Info().Str(logging.EVENT, EVENT_SESSION_OPENED).
		Str(SESSION_ID, s.id).
		Str(logging.WHATAMI, s.whatami.String()).
		Msg(nc.ConnectedUrl())
	return s, nil
}

func (a *runtime) Scout(what mesh.WhatAmI, cfg *config.Config) (<-chan mesh.Hello, mesh.StopFunc, error) {
	nc, err := a.connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	inbox := nats.NewInbox()
	replies := make(chan *nats.Msg, 64)
	sub, err := nc.ChanSubscribe(inbox, replies)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	query, err := json.Marshal(scoutMsg{WhatAmI: what.String(), Version: ProtocolVersion})
	if err != nil {
		sub.Unsubscribe()
		nc.Close()
		return nil, nil, err
	}

	publish := func() error {
		scoutQueriesCounter().Inc()
		return nc.PublishRequest(ScoutSubject, inbox, query)
	}
	if err := publish(); err != nil {
		sub.Unsubscribe()
		nc.Close()
		return nil, nil, err
	}
	logger.Debug().Str(logging.EVENT, EVENT_SCOUT_STARTED).
		Str(logging.WHATAMI, what.String()).
		Str(SUBJECT, inbox).
		Msg("")

	out := make(chan mesh.Hello)
	var t tomb.Tomb
	t.Go(func() error {
		defer close(out)
		// the query is re-published periodically so announcers that join
		// mid-scout still get a chance to reply
		ticker := time.NewTicker(scoutInterval(cfg))
		defer ticker.Stop()
		for {
			select {
			case msg := <-replies:
				hello, err := decodeHello(msg.Data)
				if err != nil {
					logger.Debug().Str(logging.EVENT, EVENT_HELLO_DROPPED).Err(err).Msg("")
					continue
				}
				if !hello.WhatAmI.Matches(what) {
					continue
				}
				hellosReceivedCounter().Inc()
				select {
				case out <- hello:
				case <-t.Dying():
					return nil
				}
			case <-ticker.C:
				if err := publish(); err != nil {
					return err
				}
			case <-t.Dying():
				return nil
			}
		}
	})

	stop := func() {
		t.Kill(nil)
		// a non-nil death reason means the stream died on its own, e.g. a
		// re-publish failed after the connection was lost mid-scout
		if err := t.Wait(); err != nil {
			logger.Warn().Str(logging.EVENT, EVENT_SCOUT_FAILED).Str(SUBJECT, inbox).Err(err).Msg("")
		}
		sub.Unsubscribe()
		nc.Close()
		logger.Debug().Str(logging.EVENT, EVENT_SCOUT_STOPPED).Str(SUBJECT, inbox).Msg("")
	}
	return out, stop, nil
}
