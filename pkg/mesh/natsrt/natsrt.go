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

// Package natsrt implements mesh.Runtime on top of NATS.
//
// Discovery is request/reply over a well known subject: a scout publishes a
// query with a reply inbox, and every announcer whose role matches the query
// replies with a Hello. Announcements from peers speaking an incompatible
// protocol version are dropped.
package natsrt

import (
	"github.com/Masterminds/semver"
	jsoniter "github.com/json-iterator/go"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

var logger = logging.NewPackageLogger("natsrt")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ScoutSubject is the well known subject scout queries are published on and
// announcers listen on.
const ScoutSubject = "zenmesh.scout"

// ProtocolVersion is the discovery protocol version announced by this build.
const ProtocolVersion = "0.5.0"

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		logger.Panic().Err(err).Msg("invalid protocol constraint")
	}
	return constraint
}

var compatibleVersions = mustConstraint(">= 0.5.0, < 0.6.0")

// events
const (
	EVENT_SESSION_OPENED    = "session_opened"
	EVENT_SESSION_CLOSED    = "session_closed"
	EVENT_SCOUT_STARTED     = "scout_started"
	EVENT_SCOUT_STOPPED     = "scout_stopped"
	EVENT_SCOUT_FAILED      = "scout_failed"
	EVENT_HELLO_DROPPED     = "hello_dropped"
	EVENT_ANNOUNCER_STARTED = "announcer_started"
)

// logger fields
const (
	SESSION_ID = "session_id"
	PEER_ID    = "peer_id"
	VERSION    = "version"
	SUBJECT    = "subject"
)

// scoutMsg is the wire form of a scout query.
type scoutMsg struct {
	WhatAmI string `json:"whatami"`
	Version string `json:"version"`
}

// helloMsg is the wire form of a discovery announcement.
type helloMsg struct {
	PeerID   string   `json:"peer_id"`
	WhatAmI  string   `json:"whatami"`
	Locators []string `json:"locators"`
	Version  string   `json:"version"`
}

// decodeHello parses and version-gates one announcement. Announcements that
// are malformed, carry an unknown role, or speak an incompatible protocol
// version are rejected.
func decodeHello(data []byte) (mesh.Hello, error) {
	var msg helloMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return mesh.Hello{}, err
	}
	whatami, err := mesh.ParseWhatAmI(msg.WhatAmI)
	if err != nil {
		return mesh.Hello{}, err
	}
	version, err := semver.NewVersion(msg.Version)
	if err != nil {
		return mesh.Hello{}, mesh.NewError(mesh.ParseError, "hello carries no parseable protocol version : "+msg.Version)
	}
	if !compatibleVersions.Check(version) {
		return mesh.Hello{}, mesh.NewError(mesh.ValidationError, "incompatible protocol version : "+msg.Version)
	}
	return mesh.Hello{PeerID: msg.PeerID, WhatAmI: whatami, Locators: msg.Locators}, nil
}
