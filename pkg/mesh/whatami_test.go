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

package mesh_test

import (
	"testing"

	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

func TestWhatAmIString(t *testing.T) {
	cases := map[mesh.WhatAmI]string{
		mesh.Router:                          "router",
		mesh.Peer:                            "peer",
		mesh.Client:                          "client",
		mesh.Router | mesh.Peer:              "router|peer",
		mesh.Router | mesh.Peer | mesh.Client: "router|peer|client",
		0:                                    "",
	}
	for whatami, expected := range cases {
		if whatami.String() != expected {
			t.Errorf("String() = %q, expected %q", whatami.String(), expected)
		}
	}
}

func TestParseWhatAmI(t *testing.T) {
	cases := map[string]mesh.WhatAmI{
		"router":             mesh.Router,
		"peer":               mesh.Peer,
		"client":             mesh.Client,
		"router|peer":        mesh.Router | mesh.Peer,
		"peer|router|client": mesh.Router | mesh.Peer | mesh.Client,
	}
	for text, expected := range cases {
		parsed, err := mesh.ParseWhatAmI(text)
		if err != nil {
			t.Errorf("ParseWhatAmI(%q) failed : %v", text, err)
			continue
		}
		if parsed != expected {
			t.Errorf("ParseWhatAmI(%q) = %v, expected %v", text, parsed, expected)
		}
	}

	if _, err := mesh.ParseWhatAmI("gateway"); err == nil {
		t.Error("unknown role should not parse")
	}
	if _, err := mesh.ParseWhatAmI(""); err == nil {
		t.Error("empty role should not parse")
	}
}

func TestWhatAmIMatches(t *testing.T) {
	if !mesh.Peer.Matches(mesh.Router | mesh.Peer) {
		t.Error("peer should match a router|peer filter")
	}
	if mesh.Client.Matches(mesh.Router | mesh.Peer) {
		t.Error("client should not match a router|peer filter")
	}
	if mesh.Router.Matches(0) {
		t.Error("nothing matches an empty filter")
	}
}
