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

import (
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config is an ordered mapping from validated configuration keys to values.
// Keys belong to the closed schema declared in schema.go. A Config is not
// safe for concurrent mutation - callers own it until it is handed to the
// mesh facade, which only ever operates on a Clone.
type Config struct {
	values map[string]interface{}
}

// New returns an empty store.
func New() *Config {
	return &Config{values: map[string]interface{}{}}
}

// Default returns a peer mode config with multicast scouting enabled.
func Default() *Config {
	c := New()
	c.values["mode"] = ModePeer
	c.values["scouting.delay"] = float64(200)
	c.values["scouting.multicast.enabled"] = true
	return c
}

// Client returns a client mode config that connects to the given endpoints.
func Client(endpoints ...string) *Config {
	c := New()
	c.values["mode"] = ModeClient
	if len(endpoints) > 0 {
		c.values["connect.endpoints"] = append([]string(nil), endpoints...)
	}
	return c
}

// Insert parses value as JSON5 and stores it under key after validating it
// against the key's schema. Parse and validation failures are collapsed into
// the returned flag - use FromJSON5 or FromFile when diagnostics are needed.
func (a *Config) Insert(key string, value string) bool {
	var decoded interface{}
	if err := json5.Unmarshal([]byte(value), &decoded); err != nil {
		return false
	}
	return a.set(key, decoded) == nil
}

// Keys returns the present keys in schema order. The order is stable for a
// given store regardless of insertion order.
func (a *Config) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for _, entry := range schema {
		if _, ok := a.values[entry.path]; ok {
			keys = append(keys, entry.path)
		}
	}
	return keys
}

// GetString returns the string value stored under path.
func (a *Config) GetString(path string) (string, bool) {
	s, ok := a.values[path].(string)
	return s, ok
}

// GetBool returns the bool value stored under path.
func (a *Config) GetBool(path string) (bool, bool) {
	b, ok := a.values[path].(bool)
	return b, ok
}

// GetNumber returns the numeric value stored under path.
func (a *Config) GetNumber(path string) (float64, bool) {
	n, ok := a.values[path].(float64)
	return n, ok
}

// GetStrings returns the string list stored under path.
func (a *Config) GetStrings(path string) ([]string, bool) {
	list, ok := a.values[path].([]string)
	if !ok {
		return nil, false
	}
	items := make([]string, len(list))
	copy(items, list)
	return items, true
}

// JSON serializes the full validated content as a nested JSON document.
// FromJSON5(c.JSON()) round-trips to an equal store.
func (a *Config) JSON() string {
	root := map[string]interface{}{}
	for _, path := range a.Keys() {
		parts := strings.Split(path, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = a.values[path]
	}
	out, _ := json.Marshal(root)
	return string(out)
}

// Clone returns an independent copy of the store.
func (a *Config) Clone() *Config {
	c := New()
	for path, value := range a.values {
		if list, ok := value.([]string); ok {
			copied := make([]string, len(list))
			copy(copied, list)
			value = copied
		}
		c.values[path] = value
	}
	return c
}

// Equal reports whether both stores hold the same keys and values.
func (a *Config) Equal(b *Config) bool {
	return reflect.DeepEqual(a.values, b.values)
}

// set validates value against the schema and stores it.
func (a *Config) set(path string, value interface{}) error {
	entry, ok := schemaIndex[path]
	if !ok {
		return &InvalidKeyError{Key: path}
	}
	normalized, err := entry.normalize(value)
	if err != nil {
		return err
	}
	if entry.validate != nil {
		if err := entry.validate(path, normalized); err != nil {
			return err
		}
	}
	a.values[path] = normalized
	return nil
}

// setCoerced converts a raw string value per the key's schema and stores it.
// String lists are comma separated.
func (a *Config) setCoerced(path string, raw string) error {
	entry, ok := schemaIndex[path]
	if !ok {
		return &InvalidKeyError{Key: path}
	}
	var value interface{}
	switch entry.kind {
	case StringKind:
		value = raw
	case BoolKind:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return &InvalidValueError{Key: path, Value: raw, Reason: "not a bool"}
		}
		value = b
	case NumberKind:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return &InvalidValueError{Key: path, Value: raw, Reason: "not a number"}
		}
		value = n
	case StringsKind:
		// an empty raw value is a valid empty list, so the slice must be
		// non-nil for JSON() to serialize it as []
		items := []string{}
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		value = items
	}
	return a.set(path, value)
}

// FromJSON5 parses text as a JSON5 document (comments and unquoted keys are
// tolerated) and validates the whole result against the schema.
func FromJSON5(text string) (*Config, error) {
	var doc interface{}
	if err := json5.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	root, ok := doc.(map[string]interface{})
	if !ok {
		return nil, &InvalidValueError{Key: "", Value: doc, Reason: "configuration document must be an object"}
	}
	c := New()
	if err := c.merge("", root); err != nil {
		return nil, err
	}
	return c, nil
}

// merge flattens nested objects into dotted key paths and validates each leaf.
func (a *Config) merge(prefix string, node map[string]interface{}) error {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]interface{}); ok {
			if _, isLeaf := schemaIndex[path]; !isLeaf {
				if err := a.merge(path, child); err != nil {
					return err
				}
				continue
			}
		}
		if err := a.set(path, value); err != nil {
			return err
		}
	}
	return nil
}
