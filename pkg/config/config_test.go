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

package config_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zenmesh/zenmesh.go/pkg/config"
)

func TestInsert(t *testing.T) {
	c := config.New()

	if !c.Insert("mode", `"client"`) {
		t.Error("mode should have been inserted")
	}
	if mode, _ := c.GetString("mode"); mode != "client" {
		t.Errorf("mode was not stored : %v", mode)
	}

	if !c.Insert("connect.endpoints", `["nats://localhost:4222"]`) {
		t.Error("connect.endpoints should have been inserted")
	}
	if endpoints, _ := c.GetStrings("connect.endpoints"); len(endpoints) != 1 {
		t.Errorf("connect.endpoints was not stored : %v", endpoints)
	}

	// the convenience path collapses failures into the returned flag
	if c.Insert("mode", `"gateway"`) {
		t.Error("schema-invalid mode value should have been rejected")
	}
	if c.Insert("mode", `{not json5`) {
		t.Error("malformed value should have been rejected")
	}
	if c.Insert("not.a.real.key", `1`) {
		t.Error("unknown key should have been rejected")
	}

	// failed inserts must not clobber the previous value
	if mode, _ := c.GetString("mode"); mode != "client" {
		t.Errorf("mode was clobbered by a failed insert : %v", mode)
	}
}

func TestFromJSON5_RoundTrip(t *testing.T) {
	text := `{
		// session mode
		mode: "peer",
		id: "node-7",
		connect: { endpoints: ["nats://localhost:4222", "nats://localhost:5222"] },
		listen: { endpoints: [] },
		scouting: {
			delay: 250,
			multicast: { enabled: true, address: "224.0.0.224:7446" },
		},
		timestamping: { enabled: false },
	}`

	c, err := config.FromJSON5(text)
	if err != nil {
		t.Fatalf("FromJSON5 failed : %v", err)
	}

	reparsed, err := config.FromJSON5(c.JSON())
	if err != nil {
		t.Fatalf("round-trip parse failed : %v : %v", err, c.JSON())
	}
	if !c.Equal(reparsed) {
		t.Errorf("round-trip is not equal :\n%v\n%v", c.JSON(), reparsed.JSON())
	}
	if !reflect.DeepEqual(c.Keys(), reparsed.Keys()) {
		t.Errorf("round-trip key sets differ : %v : %v", c.Keys(), reparsed.Keys())
	}
}

func TestFromJSON5_UnknownKey(t *testing.T) {
	_, err := config.FromJSON5(`{"not.a.real.key": 1}`)
	var invalidKey *config.InvalidKeyError
	if !errors.As(err, &invalidKey) {
		t.Fatalf("expected InvalidKeyError : %v", err)
	}
	if invalidKey.Key != "not.a.real.key" {
		t.Errorf("offending key was not reported : %v", invalidKey.Key)
	}
}

func TestFromJSON5_Malformed(t *testing.T) {
	_, err := config.FromJSON5(`{mode: `)
	var syntax *config.SyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("expected SyntaxError : %v", err)
	}
}

func TestFromJSON5_InvalidValue(t *testing.T) {
	_, err := config.FromJSON5(`{mode: "gateway"}`)
	var invalidValue *config.InvalidValueError
	if !errors.As(err, &invalidValue) {
		t.Fatalf("expected InvalidValueError : %v", err)
	}
	if invalidValue.Key != "mode" {
		t.Errorf("offending key was not reported : %v", invalidValue.Key)
	}
}

func TestKeys_SchemaOrder(t *testing.T) {
	c := config.New()
	// inserted in reverse of schema order
	c.Insert("timestamping.enabled", `true`)
	c.Insert("scouting.delay", `100`)
	c.Insert("listen.endpoints", `["nats://0.0.0.0:4222"]`)
	c.Insert("mode", `"router"`)

	expected := []string{"mode", "listen.endpoints", "scouting.delay", "timestamping.enabled"}
	if !reflect.DeepEqual(c.Keys(), expected) {
		t.Errorf("keys are not in schema order : %v", c.Keys())
	}
	// enumeration must be stable for a given store
	if !reflect.DeepEqual(c.Keys(), c.Keys()) {
		t.Error("key enumeration is not stable")
	}
}

func TestClone_Independence(t *testing.T) {
	c := config.Default()
	c.Insert("connect.endpoints", `["nats://localhost:4222"]`)

	clone := c.Clone()
	if !c.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.Insert("mode", `"router"`)
	if mode, _ := c.GetString("mode"); mode != config.ModePeer {
		t.Errorf("mutating the clone changed the original : %v", mode)
	}
}

func TestDefaultAndClient(t *testing.T) {
	c := config.Default()
	if mode, _ := c.GetString("mode"); mode != config.ModePeer {
		t.Errorf("default mode should be peer : %v", mode)
	}

	client := config.Client("nats://localhost:4222")
	if mode, _ := client.GetString("mode"); mode != config.ModeClient {
		t.Errorf("client mode was not set : %v", mode)
	}
	endpoints, _ := client.GetStrings("connect.endpoints")
	if len(endpoints) != 1 || endpoints[0] != "nats://localhost:4222" {
		t.Errorf("client endpoints were not set : %v", endpoints)
	}
}
