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

package logging_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
)

func TestNewPackageLogger(t *testing.T) {
	logger := logging.NewPackageLogger("config")

	var buf bytes.Buffer
	logger = logger.Output(io.Writer(&buf))
	logger.Info().Str(logging.EVENT, "test_event").Msg("")
	t.Log(buf.String())

	logEvent := map[string]interface{}{}
	if err := json.Unmarshal(buf.Bytes(), &logEvent); err != nil {
		t.Fatalf("log event is not valid JSON : %v", err)
	}
	if logEvent[logging.PACKAGE] != "config" {
		t.Errorf("Package was not logged correctly : %v", buf.String())
	}
	if logEvent[logging.EVENT] != "test_event" {
		t.Errorf("Event was not logged correctly : %v", buf.String())
	}
}

func TestInit(t *testing.T) {
	logging.Init("debug")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level was not set : %v", zerolog.GlobalLevel())
	}

	// only the first Init call has any effect
	logging.Init("error")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Init should be idempotent : %v", zerolog.GlobalLevel())
	}
}
