// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package acl

import (
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var _ splitter.Authorizer = (*Table)(nil)

// Table is a static table of granted capabilities
type Table struct {
	mu     sync.RWMutex
	grants map[string]map[splitter.Capability]struct{}
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{grants: make(map[string]map[splitter.Capability]struct{})}
}

// FromConfig builds a table from capability names keyed by address
func FromConfig(grants map[string][]string) (*Table, error) {
	t := NewTable()
	for addrStr, caps := range grants {
		addr, err := address.FromString(addrStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid grantee %s", addrStr)
		}
		for _, c := range caps {
			capability, err := ParseCapability(c)
			if err != nil {
				return nil, err
			}
			t.Grant(addr, capability)
		}
	}
	return t, nil
}

// ParseCapability parses a capability name
func ParseCapability(s string) (splitter.Capability, error) {
	switch c := splitter.Capability(s); c {
	case splitter.CapabilityFeeManager, splitter.CapabilityPoolRegistrar, splitter.CapabilitySchedulerManager:
		return c, nil
	}
	return "", errors.Errorf("unknown capability %s", s)
}

// Grant grants the capability
func (t *Table) Grant(addr address.Address, c splitter.Capability) {
	t.mu.Lock()
	defer t.mu.Unlock()
	caps, ok := t.grants[addr.String()]
	if !ok {
		caps = make(map[splitter.Capability]struct{})
		t.grants[addr.String()] = caps
	}
	caps[c] = struct{}{}
}

// Revoke revokes the capability
func (t *Table) Revoke(addr address.Address, c splitter.Capability) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.grants[addr.String()], c)
}

// IsAuthorized implements splitter.Authorizer
func (t *Table) IsAuthorized(caller address.Address, c splitter.Capability) bool {
	if caller == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.grants[caller.String()][c]
	return ok
}
