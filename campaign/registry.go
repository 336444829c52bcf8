// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package campaign

import (
	"context"
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var (
	// ErrNotFound is returned for an unknown campaign id
	ErrNotFound = errors.New("campaign not found")
	// ErrInvalidStatus is returned for a status name that does not parse
	ErrInvalidStatus = errors.New("invalid campaign status")
)

var _ splitter.CampaignRegistry = (*Registry)(nil)

// Registry is an in-memory campaign registry
type Registry struct {
	mu        sync.RWMutex
	campaigns map[uint64]splitter.Campaign
}

// NewRegistry creates a registry holding the campaigns
func NewRegistry(campaigns ...splitter.Campaign) *Registry {
	r := &Registry{campaigns: make(map[uint64]splitter.Campaign, len(campaigns))}
	for _, c := range campaigns {
		r.campaigns[c.ID] = c
	}
	return r
}

// Campaign returns a copy of the campaign
func (r *Registry) Campaign(_ context.Context, id uint64) (*splitter.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "campaign %d", id)
	}
	return &c, nil
}

// Put adds or replaces a campaign
func (r *Registry) Put(c splitter.Campaign) error {
	if c.Payout == nil {
		return errors.Errorf("campaign %d has no payout address", c.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = c
	return nil
}

// SetStatus changes the status of a campaign
func (r *Registry) SetStatus(id uint64, status splitter.CampaignStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "campaign %d", id)
	}
	c.Status = status
	r.campaigns[id] = c
	return nil
}

// ParseStatus parses a status name as printed by CampaignStatus.String
func ParseStatus(s string) (splitter.CampaignStatus, error) {
	for _, st := range []splitter.CampaignStatus{
		splitter.CampaignPending,
		splitter.CampaignActive,
		splitter.CampaignPaused,
		splitter.CampaignClosed,
	} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, errors.Wrap(ErrInvalidStatus, s)
}

// New builds a campaign from its textual form
func New(id uint64, status, payout string) (splitter.Campaign, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return splitter.Campaign{}, err
	}
	addr, err := address.FromString(payout)
	if err != nil {
		return splitter.Campaign{}, errors.Wrapf(err, "invalid payout address of campaign %d", id)
	}
	return splitter.Campaign{ID: id, Status: st, Payout: addr}, nil
}
