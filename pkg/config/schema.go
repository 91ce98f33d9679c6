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

import "fmt"

// session modes
const (
	ModeRouter = "router"
	ModePeer   = "peer"
	ModeClient = "client"
)

// ValueKind enumerates the value types the configuration schema supports.
type ValueKind int

const (
	StringKind ValueKind = iota
	BoolKind
	NumberKind
	StringsKind
)

type schemaEntry struct {
	path     string
	kind     ValueKind
	validate func(path string, value interface{}) error
}

// schema is the closed set of recognized configuration keys.
// Keys() enumerates present keys in this order.
var schema = []schemaEntry{
	{path: "id", kind: StringKind},
	{path: "mode", kind: StringKind, validate: validateMode},
	{path: "connect.endpoints", kind: StringsKind},
	{path: "listen.endpoints", kind: StringsKind},
	{path: "scouting.delay", kind: NumberKind, validate: validateNonNegative},
	{path: "scouting.multicast.enabled", kind: BoolKind},
	{path: "scouting.multicast.address", kind: StringKind},
	{path: "scouting.multicast.interface", kind: StringKind},
	{path: "timestamping.enabled", kind: BoolKind},
	{path: "routing.local", kind: BoolKind},
}

var schemaIndex = func() map[string]schemaEntry {
	index := make(map[string]schemaEntry, len(schema))
	for _, entry := range schema {
		index[entry.path] = entry
	}
	return index
}()

func validateMode(path string, value interface{}) error {
	switch value {
	case ModeRouter, ModePeer, ModeClient:
		return nil
	}
	return &InvalidValueError{Key: path, Value: value, Reason: `must be one of "router", "peer", "client"`}
}

func validateNonNegative(path string, value interface{}) error {
	if value.(float64) < 0 {
		return &InvalidValueError{Key: path, Value: value, Reason: "must not be negative"}
	}
	return nil
}

// normalize coerces a decoded JSON value to the entry's kind.
func (e schemaEntry) normalize(value interface{}) (interface{}, error) {
	switch e.kind {
	case StringKind:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case BoolKind:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case NumberKind:
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case StringsKind:
		switch list := value.(type) {
		case string:
			return []string{list}, nil
		case []string:
			items := make([]string, len(list))
			copy(items, list)
			return items, nil
		case []interface{}:
			items := make([]string, len(list))
			for i, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, &InvalidValueError{Key: e.path, Value: value, Reason: fmt.Sprintf("element %d is not a string", i)}
				}
				items[i] = s
			}
			return items, nil
		}
	}
	return nil, &InvalidValueError{Key: e.path, Value: value, Reason: fmt.Sprintf("expected a %v value", e.kind)}
}

func (a ValueKind) String() string {
	switch a {
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringsKind:
		return "string list"
	default:
		return "unknown"
	}
}
