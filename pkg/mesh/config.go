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

package mesh

import "github.com/zenmesh/zenmesh.go/pkg/config"

// ConfigFromJSON5 parses a JSON5 configuration document, strictly validating
// it against the runtime schema. Failures are reported as *Error with kind
// ParseError (malformed text) or ValidationError (schema-invalid content).
func ConfigFromJSON5(text string) (*config.Config, error) {
	c, err := config.FromJSON5(text)
	if err != nil {
		return nil, Translate(err)
	}
	return c, nil
}

// ConfigFromFile loads a configuration file - a JSON5 document or a
// line-oriented key=value properties file. Failures are classified as
// IoError (unreadable), ParseError (malformed content), or ValidationError
// (schema-invalid content).
func ConfigFromFile(path string) (*config.Config, error) {
	c, err := config.FromFile(path)
	if err != nil {
		return nil, Translate(err)
	}
	return c, nil
}

// ConfigFromProps builds a configuration from an untyped flat mapping.
// This is the best-effort path: unrecognized keys are silently dropped and
// the call never fails.
func ConfigFromProps(props map[string]string) *config.Config {
	return config.FromProps(props)
}
