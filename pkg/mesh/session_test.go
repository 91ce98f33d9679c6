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
	"errors"
	"testing"

	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
	"github.com/zenmesh/zenmesh.go/pkg/mesh/meshtest"
)

func TestOpen(t *testing.T) {
	rt := &meshtest.Runtime{}
	useRuntime(t, rt)

	session, err := mesh.Open(config.Client("nats://localhost:4222"))
	if err != nil {
		t.Fatalf("Open failed : %v", err)
	}
	if session.ID() == "" {
		t.Error("session should have an id")
	}
	if session.WhatAmI() != mesh.Client {
		t.Errorf("session role should come from the config mode : %v", session.WhatAmI())
	}
	if session.Closed() {
		t.Error("session should not be closed")
	}
	if err := session.Close(); err != nil {
		t.Errorf("Close failed : %v", err)
	}
	if !session.Closed() {
		t.Error("session should be closed")
	}
}

func TestOpen_RuntimeError(t *testing.T) {
	useRuntime(t, &meshtest.Runtime{OpenErr: errors.New("connection refused")})

	_, err := mesh.Open(config.Default())
	var boundary *mesh.Error
	if !errors.As(err, &boundary) {
		t.Fatalf("expected a boundary error : %v", err)
	}
	if boundary.Kind != mesh.Other {
		t.Errorf("runtime open failures map to Other : %v", boundary.Kind)
	}
	if boundary.Message != "connection refused" {
		t.Errorf("original diagnostic was not preserved verbatim : %q", boundary.Message)
	}
}

func TestOpen_NilConfigUsesDefault(t *testing.T) {
	rt := &meshtest.Runtime{}
	useRuntime(t, rt)

	session, err := mesh.Open(nil)
	if err != nil {
		t.Fatalf("Open failed : %v", err)
	}
	if session.WhatAmI() != mesh.Peer {
		t.Errorf("default config should open a peer session : %v", session.WhatAmI())
	}
}

func TestOpen_NoRuntime(t *testing.T) {
	useRuntime(t, nil)

	_, err := mesh.Open(config.Default())
	if !errors.Is(err, mesh.ErrNoRuntime) {
		t.Errorf("expected ErrNoRuntime : %v", err)
	}
}
