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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		err  error
		kind mesh.ErrorKind
	}{
		{&config.ReadError{Path: "/etc/zenmesh.json5", Err: os.ErrNotExist}, mesh.IoError},
		{&config.SyntaxError{Err: errors.New("unexpected EOF")}, mesh.ParseError},
		{&config.InvalidKeyError{Key: "bogus"}, mesh.ValidationError},
		{&config.InvalidValueError{Key: "mode", Value: "gateway", Reason: "unknown mode"}, mesh.ValidationError},
		{&os.PathError{Op: "open", Path: "/etc/zenmesh.json5", Err: os.ErrPermission}, mesh.IoError},
		{errors.New("runtime exploded"), mesh.Other},
	}
	for _, tc := range cases {
		translated := mesh.Translate(tc.err)
		if translated.Kind != tc.kind {
			t.Errorf("Translate(%T) = %v, expected %v", tc.err, translated.Kind, tc.kind)
		}
		if translated.Message != tc.err.Error() {
			t.Errorf("diagnostic was reformatted : %q != %q", translated.Message, tc.err.Error())
		}
	}

	// wrapped internal errors are still classified
	wrapped := fmt.Errorf("loading config : %w", &config.InvalidKeyError{Key: "bogus"})
	if translated := mesh.Translate(wrapped); translated.Kind != mesh.ValidationError {
		t.Errorf("wrapped errors should be classified : %v", translated.Kind)
	}

	// a boundary error passes through untouched
	boundary := mesh.NewError(mesh.ParseError, "kept")
	if mesh.Translate(boundary) != boundary {
		t.Error("an already translated error should pass through")
	}

	if mesh.Translate(nil) != nil {
		t.Error("nil should translate to nil")
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[mesh.ErrorKind]string{
		mesh.IoError:         "IoError",
		mesh.ParseError:      "ParseError",
		mesh.ValidationError: "ValidationError",
		mesh.Other:           "Other",
	}
	for kind, expected := range cases {
		if kind.String() != expected {
			t.Errorf("%v.String() = %v", expected, kind.String())
		}
	}
}

func TestConfigBoundaryConstructors(t *testing.T) {
	if _, err := mesh.ConfigFromJSON5(`{mode: "peer"}`); err != nil {
		t.Errorf("valid JSON5 should parse : %v", err)
	}

	_, err := mesh.ConfigFromJSON5(`{"not.a.real.key": 1}`)
	var boundary *mesh.Error
	if !errors.As(err, &boundary) || boundary.Kind != mesh.ValidationError {
		t.Errorf("unknown key should be a ValidationError : %v", err)
	}

	_, err = mesh.ConfigFromJSON5(`{mode:`)
	if !errors.As(err, &boundary) || boundary.Kind != mesh.ParseError {
		t.Errorf("malformed text should be a ParseError : %v", err)
	}

	_, err = mesh.ConfigFromFile(filepath.Join(t.TempDir(), "missing.json5"))
	if !errors.As(err, &boundary) || boundary.Kind != mesh.IoError {
		t.Errorf("unreadable file should be an IoError : %v", err)
	}

	cfg := mesh.ConfigFromProps(map[string]string{"mode": "client", "bogus": "dropped"})
	if mode, _ := cfg.GetString("mode"); mode != "client" {
		t.Errorf("props constructor should keep recognized keys : %v", mode)
	}
	if keys := cfg.Keys(); len(keys) != 1 {
		t.Errorf("props constructor should drop unrecognized keys : %v", keys)
	}
}
