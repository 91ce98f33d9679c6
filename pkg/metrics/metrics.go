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

// Package metrics centralizes the prometheus metrics registry for zenmesh.
// All zenmesh metrics are registered with Registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	mutex sync.Mutex

	// Registry is the global registry
	Registry = NewRegistry(true)

	countersMap = map[string]prometheus.Counter{}
)

// NewRegistry creates a new registry.
// If collectProcessMetrics = true, then the prometheus Go and process collectors are registered.
func NewRegistry(collectProcessMetrics bool) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	if collectProcessMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return registry
}

// ResetRegistry resets the prometheus Registry and clears all cached metrics.
// It is meant for tests.
func ResetRegistry() {
	mutex.Lock()
	defer mutex.Unlock()
	Registry = NewRegistry(true)
	countersMap = map[string]prometheus.Counter{}
}

// GetOrMustRegisterCounter first checks if a counter with the same fully
// qualified name is already registered. If it is, the cached counter is
// returned. Otherwise the counter is registered with Registry and cached.
func GetOrMustRegisterCounter(opts prometheus.CounterOpts) prometheus.Counter {
	mutex.Lock()
	defer mutex.Unlock()
	name := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	if counter := countersMap[name]; counter != nil {
		return counter
	}
	counter := prometheus.NewCounter(opts)
	Registry.MustRegister(counter)
	countersMap[name] = counter
	return counter
}

// CounterNames returns the fully qualified names of all registered counters
func CounterNames() []string {
	mutex.Lock()
	defer mutex.Unlock()
	names := make([]string, len(countersMap))
	i := 0
	for name := range countersMap {
		names[i] = name
		i++
	}
	return names
}
