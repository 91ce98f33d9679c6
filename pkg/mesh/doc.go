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

// Package mesh is the boundary facade over an embedded pub/sub mesh runtime.
//
// The facade exposes three capabilities to the embedding application:
//
//  1. building and validating a runtime configuration (ConfigFromJSON5,
//     ConfigFromFile, ConfigFromProps),
//  2. opening a long lived session against the runtime (Open),
//  3. time bounded peer discovery before a session exists (Scout).
//
// Transport, routing, subscription matching, and reliability belong to the
// Runtime implementation - see the natsrt package for the NATS backed one.
// Every fallible boundary operation returns *Error, the flattening of the
// internal error taxonomy.
package mesh
