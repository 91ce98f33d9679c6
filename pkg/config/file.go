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
	"os"

	"github.com/magiconair/properties"
)

// FromFile loads a configuration file. Two formats are accepted, decided by
// content shape: a JSON5 document (first non-blank byte is '{'), or a
// line-oriented key=value properties file with '#' comment lines.
//
// Failures are classified: *ReadError when the file cannot be read,
// *SyntaxError when the content is malformed, *InvalidKeyError /
// *InvalidValueError when the content is well formed but rejected by the
// schema. The file path is strict - properties keys go through the
// transcoder, but a key that neither transcodes nor belongs to the schema
// fails validation.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if looksLikeJSON(data) {
		return FromJSON5(string(data))
	}
	return fromProperties(data)
}

func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func fromProperties(data []byte) (*Config, error) {
	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	c := New()
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		path, ok := Transcode(key)
		if !ok {
			if _, known := schemaIndex[key]; !known {
				return nil, &InvalidKeyError{Key: key}
			}
			path = key
		}
		if err := c.setCoerced(path, value); err != nil {
			return nil, err
		}
	}
	return c, nil
}
