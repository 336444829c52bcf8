// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/state"
)

// SetAllocation sets the caller's allocation tier and beneficiary in a pool. The beneficiary is required below the
// 100% tier, and defaults to the caller at the 100% tier.
func (e *Engine) SetAllocation(ctx context.Context, poolAddr address.Address, tier Tier, beneficiary address.Address) error {
	user, err := callerOf(ctx)
	if err != nil {
		return err
	}
	return e.run(ctx, "setAllocation", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if !tier.Valid() {
			return nil, nil, errors.Wrapf(ErrInvalidTier, "tier %d", uint8(tier))
		}
		if isZeroAddress(user) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "user")
		}
		if isZeroAddress(poolAddr) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "pool")
		}
		if isZeroAddress(beneficiary) {
			if tier != Tier100 {
				return nil, nil, errors.Wrapf(ErrMissingBeneficiary, "tier %s", tier)
			}
			beneficiary = user
		}
		p, err := loadPool(ws, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		a, err := loadAccount(ws, user, poolAddr)
		if err != nil {
			return nil, nil, err
		}

		settle(p, a)
		if err := p.subShares(a.Tier, a.Shares); err != nil {
			return nil, nil, err
		}
		a.Tier = tier
		p.addShares(a.Tier, a.Shares)
		rebase(p, a)

		pref := preference{Tier: tier, Beneficiary: beneficiary.String()}
		if err := ws.PutState(_ledgerNS, preferenceKey(user, poolAddr), &pref); err != nil {
			return nil, nil, err
		}
		if err := ws.PutState(_ledgerNS, accountKey(user, poolAddr), a); err != nil {
			return nil, nil, err
		}
		if err := ws.PutState(_ledgerNS, poolKey(poolAddr), p); err != nil {
			return nil, nil, err
		}
		e.logger.Debug("Allocation updated.",
			zap.String("pool", poolAddr.String()),
			zap.String("user", user.String()),
			zap.Stringer("tier", tier),
			zap.String("beneficiary", pref.Beneficiary))
		return nil, nil, nil
	})
}
