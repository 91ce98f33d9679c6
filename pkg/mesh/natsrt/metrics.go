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

package natsrt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zenmesh/zenmesh.go/pkg/metrics"
)

const (
	// MetricsNamespace is the prometheus namespace for all runtime metrics
	MetricsNamespace = "zenmesh"
	// MetricsSubsystem is the prometheus subsystem for all runtime metrics
	MetricsSubsystem = "runtime"
)

// The counters are looked up lazily so that tests which reset the global
// registry keep working.

func sessionsOpenedCounter() prometheus.Counter {
	return metrics.GetOrMustRegisterCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "sessions_opened",
		Help:      "Number of mesh sessions opened",
	})
}

func sessionsClosedCounter() prometheus.Counter {
	return metrics.GetOrMustRegisterCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "sessions_closed",
		Help:      "Number of mesh sessions closed",
	})
}

func scoutQueriesCounter() prometheus.Counter {
	return metrics.GetOrMustRegisterCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "scout_queries",
		Help:      "Number of scout queries published",
	})
}

func hellosReceivedCounter() prometheus.Counter {
	return metrics.GetOrMustRegisterCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "hellos_received",
		Help:      "Number of hello announcements received by scouts",
	})
}

func hellosAnnouncedCounter() prometheus.Counter {
	return metrics.GetOrMustRegisterCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "hellos_announced",
		Help:      "Number of hello announcements published by the announcer",
	})
}
