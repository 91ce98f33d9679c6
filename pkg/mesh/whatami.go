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
	"strings"
)

// WhatAmI is a bitmask over the mesh process roles. It declares both what a
// scout call wants to find and what a remote peer announces itself as.
type WhatAmI uint8

const (
	Router WhatAmI = 1 << iota
	Peer
	Client
)

// Matches reports whether the two masks share at least one role.
func (a WhatAmI) Matches(b WhatAmI) bool {
	return a&b != 0
}

func (a WhatAmI) String() string {
	var roles []string
	if a&Router != 0 {
		roles = append(roles, "router")
	}
	if a&Peer != 0 {
		roles = append(roles, "peer")
	}
	if a&Client != 0 {
		roles = append(roles, "client")
	}
	return strings.Join(roles, "|")
}

// ParseWhatAmI parses a "|" separated role list, e.g. "router|peer".
func ParseWhatAmI(s string) (WhatAmI, error) {
	var whatami WhatAmI
	for _, role := range strings.Split(s, "|") {
		switch strings.ToLower(strings.TrimSpace(role)) {
		case "router":
			whatami |= Router
		case "peer":
			whatami |= Peer
		case "client":
			whatami |= Client
		default:
			return 0, NewError(ValidationError, fmt.Sprintf("unknown whatami role : %q", role))
		}
	}
	if whatami == 0 {
		return 0, NewError(ValidationError, "whatami must name at least one role")
	}
	return whatami, nil
}
