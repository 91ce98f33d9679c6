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

import (
	"fmt"
	"time"

	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"gopkg.in/tomb.v2"
)

// Scout performs time bounded peer discovery: it races draining the runtime
// discovery stream against the timeout and returns whatever announcements
// arrived first, in arrival order.
//
// If the timeout fires first the drain is cancelled mid-flight; if the
// stream ends first (runtime shutdown) the call returns immediately without
// waiting out the remaining timeout. A zero timeout still starts the stream
// and returns whatever was immediately available. A negative timeout is a
// caller contract violation.
func Scout(what WhatAmI, cfg *config.Config, timeout time.Duration) ([]Hello, error) {
	if timeout < 0 {
		return nil, NewError(ValidationError, fmt.Sprintf("scout timeout must not be negative : %v", timeout))
	}
	rt, zerr := runtime()
	if zerr != nil {
		return nil, zerr
	}
	if cfg == nil {
		cfg = config.Default()
	}

	stream, stop, err := rt.Scout(what, cfg.Clone())
	if err != nil {
		return nil, Translate(err)
	}

	// hellos is appended to only by the drain goroutine and read only after
	// both racing activities have settled
	var hellos []Hello
	var drain tomb.Tomb
	drain.Go(func() error {
		for {
			select {
			case hello, ok := <-stream:
				if !ok {
					return nil
				}
				hellos = append(hellos, hello)
			case <-drain.Dying():
				return nil
			}
		}
	})

	select {
	case <-time.After(timeout):
	case <-drain.Dead():
	}

	// cancellation is explicit and awaited: kill the drain, stop the runtime
	// stream, and only then read the results
	drain.Kill(nil)
	stop()
	drain.Wait()

	logger.Debug().Str(logging.EVENT, EVENT_SCOUT_DONE).
		Str(logging.WHATAMI, what.String()).
		Int("hellos", len(hellos)).
		Msg("")
	return hellos, nil
}
