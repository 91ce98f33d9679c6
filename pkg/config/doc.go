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

// Package config implements the mesh runtime configuration store.
//
// A Config is an ordered mapping from a closed set of dotted key paths to
// typed values. There are two families of constructors with deliberately
// different strictness:
//
//  1. Strict: FromJSON5 and FromFile parse a whole document and reject any
//     key outside the recognized schema.
//  2. Best-effort: FromProps transcodes an untyped flat mapping and silently
//     drops unrecognized keys.
//
// Strict constructors return the typed errors declared in errors.go. The
// mesh package translates them into its boundary error type.
package config
