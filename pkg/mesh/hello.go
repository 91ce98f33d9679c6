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

import "fmt"

// Hello is one discovery announcement from a remote peer. It is created by
// the runtime discovery stream and never mutated afterwards.
type Hello struct {
	// PeerID is the announced peer identity
	PeerID string
	// WhatAmI is the role the peer declares itself as
	WhatAmI WhatAmI
	// Locators are the reachable endpoints the peer advertises
	Locators []string
}

func (h Hello) String() string {
	return fmt.Sprintf("Hello{ peer: %s, whatami: %s, locators: %v }", h.PeerID, h.WhatAmI, h.Locators)
}
