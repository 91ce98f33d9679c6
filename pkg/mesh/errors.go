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
	"errors"
	"io/fs"

	"github.com/zenmesh/zenmesh.go/pkg/config"
)

// ErrorKind classifies boundary errors so callers can branch on the failure
// class without inspecting message text.
type ErrorKind int

const (
	// IoError - the configuration source or runtime stream was unreadable
	IoError ErrorKind = iota
	// ParseError - malformed structured text
	ParseError
	// ValidationError - well formed but rejected by the schema or a caller contract
	ValidationError
	// Other - unclassified runtime failure
	Other
)

func (a ErrorKind) String() string {
	switch a {
	case IoError:
		return "IoError"
	case ParseError:
		return "ParseError"
	case ValidationError:
		return "ValidationError"
	default:
		return "Other"
	}
}

// Error is the single error type surfaced at the facade boundary. Message
// carries the original diagnostic verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError constructs a boundary error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Translate maps any internal failure into a boundary *Error. The mapping is
// total: every failure the config package and the runtime can produce has a
// defined kind, and Other is the only catch-all.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}
	var boundary *Error
	if errors.As(err, &boundary) {
		return boundary
	}
	var readErr *config.ReadError
	if errors.As(err, &readErr) {
		return NewError(IoError, err.Error())
	}
	var syntaxErr *config.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewError(ParseError, err.Error())
	}
	var keyErr *config.InvalidKeyError
	if errors.As(err, &keyErr) {
		return NewError(ValidationError, err.Error())
	}
	var valueErr *config.InvalidValueError
	if errors.As(err, &valueErr) {
		return NewError(ValidationError, err.Error())
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return NewError(IoError, err.Error())
	}
	return NewError(Other, err.Error())
}
