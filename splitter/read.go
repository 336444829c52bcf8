// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// PoolRegistration is the permanent binding of a pool
type PoolRegistration struct {
	Asset      address.Address
	CampaignID uint64
}

// FeeRate returns the protocol fee rate in basis points
func (e *Engine) FeeRate(_ context.Context) (uint64, error) {
	a, err := loadAdmin(e.reader())
	if err != nil {
		return 0, err
	}
	return a.FeeRateBps, nil
}

// IsScheduler returns whether the address may trigger distributions
func (e *Engine) IsScheduler(_ context.Context, addr address.Address) (bool, error) {
	if isZeroAddress(addr) {
		return false, nil
	}
	a, err := loadAdmin(e.reader())
	if err != nil {
		return false, err
	}
	return a.hasScheduler(addr), nil
}

// Schedulers returns the scheduler allow-list
func (e *Engine) Schedulers(_ context.Context) ([]address.Address, error) {
	a, err := loadAdmin(e.reader())
	if err != nil {
		return nil, err
	}
	addrs := make([]address.Address, 0, len(a.Schedulers))
	for _, s := range a.Schedulers {
		addr, err := address.FromString(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scheduler %s", s)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// Pool returns the registration of a pool
func (e *Engine) Pool(_ context.Context, poolAddr address.Address) (*PoolRegistration, error) {
	p, err := loadPool(e.reader(), poolAddr)
	if err != nil {
		return nil, err
	}
	asset, err := p.asset()
	if err != nil {
		return nil, err
	}
	return &PoolRegistration{Asset: asset, CampaignID: p.CampaignID}, nil
}

// Preference returns the allocation choice of a user in a pool. found is false if the user never set one, in which
// case the 100% tier applies.
func (e *Engine) Preference(_ context.Context, user, poolAddr address.Address) (*Preference, bool, error) {
	pref, err := loadPreference(e.reader(), user, poolAddr)
	if err != nil {
		return nil, false, err
	}
	if pref == nil {
		return &Preference{Tier: Tier100, Beneficiary: user}, false, nil
	}
	beneficiary, err := address.FromString(pref.Beneficiary)
	if err != nil {
		return nil, false, errors.Wrapf(err, "invalid beneficiary %s", pref.Beneficiary)
	}
	return &Preference{Tier: pref.Tier, Beneficiary: beneficiary}, true, nil
}

// Account returns the stored accounting of a user in a pool, as of the last settlement
func (e *Engine) Account(_ context.Context, user, poolAddr address.Address) (*Account, error) {
	a, err := loadAccount(e.reader(), user, poolAddr)
	if err != nil {
		return nil, err
	}
	return &Account{
		Shares:     a.Shares,
		RewardDebt: a.RewardDebt,
		Pending:    a.Pending,
		Tier:       a.Tier,
	}, nil
}

// PendingPersonal returns what the user could claim now: the settled pending balance plus the accrual not settled
// yet. Nothing is written.
func (e *Engine) PendingPersonal(_ context.Context, user, poolAddr address.Address) (*big.Int, error) {
	sr := e.reader()
	p, err := loadPool(sr, poolAddr)
	if err != nil {
		return nil, err
	}
	a, err := loadAccount(sr, user, poolAddr)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(a.Pending, unsettled(p, a)), nil
}

// Snapshot returns the aggregate state of a pool
func (e *Engine) Snapshot(_ context.Context, poolAddr address.Address) (*PoolSnapshot, error) {
	p, err := loadPool(e.reader(), poolAddr)
	if err != nil {
		return nil, err
	}
	asset, err := p.asset()
	if err != nil {
		return nil, err
	}
	snap := PoolSnapshot{
		Pool:          poolAddr,
		Asset:         asset,
		CampaignID:    p.CampaignID,
		TotalShares:   p.TotalShares,
		BucketShares:  make(map[Tier]*big.Int, len(partialTiers)),
		AccPerShare:   make(map[Tier]*big.Int, len(partialTiers)),
		TotalFees:     p.TotalFees,
		TotalCampaign: p.TotalCampaign,
		TotalPersonal: p.TotalPersonal,
		TotalClaimed:  p.TotalClaimed,
		Distributions: p.Distributions,
	}
	for _, t := range partialTiers {
		snap.BucketShares[t] = p.bucket(t)
		snap.AccPerShare[t] = p.accPerShare(t)
	}
	return &snap, nil
}
