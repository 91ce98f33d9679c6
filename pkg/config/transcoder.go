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

package config

import "strings"

// transcoderTable maps legacy flat key names into the validated key namespace.
var transcoderTable = map[string]string{
	"id":                  "id",
	"mode":                "mode",
	"peer":                "connect.endpoints",
	"connect":             "connect.endpoints",
	"listener":            "listen.endpoints",
	"listen":              "listen.endpoints",
	"multicast_scouting":  "scouting.multicast.enabled",
	"multicast_address":   "scouting.multicast.address",
	"multicast_interface": "scouting.multicast.interface",
	"scouting_delay":      "scouting.delay",
	"add_timestamp":       "timestamping.enabled",
	"local_routing":       "routing.local",
}

// Transcode maps an external flat key into the validated key namespace.
// Unrecognized keys report ok=false.
func Transcode(key string) (path string, ok bool) {
	path, ok = transcoderTable[strings.ToLower(strings.TrimSpace(key))]
	return
}

// FromProps builds a Config from an untyped flat mapping. This is the
// best-effort convenience path: unrecognized keys and uncoercible values are
// silently dropped. Callers that need strict validation must use FromJSON5
// or FromFile.
func FromProps(props map[string]string) *Config {
	c := New()
	for key, value := range props {
		path, ok := Transcode(key)
		if !ok {
			if _, known := schemaIndex[key]; !known {
				continue
			}
			path = key
		}
		// best-effort : a value the schema rejects is dropped, not an error
		_ = c.setCoerced(path, value)
	}
	return c
}
