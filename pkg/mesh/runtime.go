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
	"sync"

	"github.com/zenmesh/zenmesh.go/pkg/config"
)

// StopFunc stops a runtime discovery stream and releases every resource tied
// to it. It blocks until the stream has fully settled.
type StopFunc func()

// Runtime is the embedded mesh engine this facade fronts. It owns transport,
// routing, and delivery.
type Runtime interface {
	// Open blocks until the runtime establishes a session. The bound is the
	// runtime's own internal timeouts.
	Open(cfg *config.Config) (Session, error)

	// Scout starts a discovery stream. Hello announcements matching what are
	// delivered on the returned channel until stop is called or the runtime
	// ends the stream, after which the channel is closed.
	Scout(what WhatAmI, cfg *config.Config) (<-chan Hello, StopFunc, error)
}

// ErrNoRuntime is returned by Open and Scout when no runtime is registered.
var ErrNoRuntime = NewError(Other, "no mesh runtime is registered")

var (
	runtimeMutex  sync.RWMutex
	activeRuntime Runtime
)

// UseRuntime registers the process-wide runtime used by Open and Scout and
// returns the previously registered one.
func UseRuntime(rt Runtime) Runtime {
	runtimeMutex.Lock()
	defer runtimeMutex.Unlock()
	prev := activeRuntime
	activeRuntime = rt
	return prev
}

func runtime() (Runtime, *Error) {
	runtimeMutex.RLock()
	defer runtimeMutex.RUnlock()
	if activeRuntime == nil {
		return nil, ErrNoRuntime
	}
	return activeRuntime, nil
}
