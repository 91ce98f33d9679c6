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
	"github.com/nats-io/nuid"
	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

// AnnouncerSettings are used to start a new Announcer.
type AnnouncerSettings struct {
	// PeerID is the identity announced in replies. Defaults to a new nuid.
	PeerID string
	// WhatAmI is the role announced in replies. Defaults to Peer.
	WhatAmI mesh.WhatAmI
	// Locators are the reachable endpoints announced in replies.
	Locators []string
	// Config supplies the connect endpoints. Defaults to config.Default().
	Config *config.Config
	// Options are applied to the announcer's NATS connection
	Options []nats.Option
}

// Announcer makes the local process discoverable: it listens for scout
// queries and replies with a Hello whenever the queried role matches its own.
type Announcer struct {
	peerID  string
	whatami mesh.WhatAmI

	nc  *nats.Conn
	sub *nats.Subscription

	closeOnce sync.Once
}

// StartAnnouncer connects and begins answering scout queries.
func StartAnnouncer(settings *AnnouncerSettings) (*Announcer, error) {
	if settings == nil {
		settings = &AnnouncerSettings{}
	}
	peerID := settings.PeerID
	if peerID == "" {
		peerID = nuid.Next()
	}
	whatami := settings.WhatAmI
	if whatami == 0 {
		whatami = mesh.Peer
	}
	cfg := settings.Config
	if cfg == nil {
		cfg = config.Default()
	}

	options := []nats.Option{DefaultConnectTimeout, DefaultReconnectWait}
	options = append(options, settings.Options...)
	nc, err := nats.Connect(serverURLs(cfg), options...)
	if err != nil {
		return nil, err
	}

	reply, err := json.Marshal(helloMsg{
		PeerID:   peerID,
		WhatAmI:  whatami.String(),
		Locators: settings.Locators,
		Version:  ProtocolVersion,
	})
	if err != nil {
		nc.Close()
		return nil, err
	}

	sub, err := nc.Subscribe(ScoutSubject, func(m *nats.Msg) {
		if m.Reply == "" {
			return
		}
		var query scoutMsg
		if err := json.Unmarshal(m.Data, &query); err != nil {
			return
		}
		queried, err := mesh.ParseWhatAmI(query.WhatAmI)
		if err != nil || !whatami.Matches(queried) {
			return
		}
		if err := nc.Publish(m.Reply, reply); err == nil {
			hellosAnnouncedCounter().Inc()
		}
	})
	if err != nil {
		nc.Close()
		return nil, err
	}

	logger.Info().Str(logging.EVENT, EVENT_ANNOUNCER_STARTED).
		Str(PEER_ID, peerID).
		Str(logging.WHATAMI, whatami.String()).
		Msg("")
	return &Announcer{peerID: peerID, whatami: whatami, nc: nc, sub: sub}, nil
}

// PeerID returns the identity announced in replies.
func (a *Announcer) PeerID() string {
	return a.peerID
}

// WhatAmI returns the role announced in replies.
func (a *Announcer) WhatAmI() mesh.WhatAmI {
	return a.whatami
}

// Close stops answering scout queries. It is idempotent.
func (a *Announcer) Close() error {
	a.closeOnce.Do(func() {
		a.sub.Unsubscribe()
		a.nc.Close()
	})
	return nil
}
