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
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/state"
)

// Claim pays the caller's settled personal yield in a pool to their beneficiary, or to the caller if they never set
// an allocation
func (e *Engine) Claim(ctx context.Context, poolAddr address.Address) (*ClaimRecord, error) {
	user, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	var rec *ClaimRecord
	err = e.run(ctx, "claim", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if isZeroAddress(user) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "user")
		}
		if isZeroAddress(poolAddr) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "pool")
		}
		p, err := loadPool(ws, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		asset, err := p.asset()
		if err != nil {
			return nil, nil, err
		}
		a, err := loadAccount(ws, user, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		settle(p, a)
		if a.Pending.Sign() == 0 {
			return nil, nil, ErrNothingToClaim
		}
		to := user
		pref, err := loadPreference(ws, user, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		if pref != nil && pref.Beneficiary != "" {
			if to, err = address.FromString(pref.Beneficiary); err != nil {
				return nil, nil, errors.Wrapf(err, "invalid beneficiary %s", pref.Beneficiary)
			}
		}

		amount := a.Pending
		a.Pending = big.NewInt(0)
		p.TotalClaimed.Add(p.TotalClaimed, amount)
		if err := ws.PutState(_ledgerNS, accountKey(user, poolAddr), a); err != nil {
			return nil, nil, err
		}
		if err := ws.PutState(_ledgerNS, poolKey(poolAddr), p); err != nil {
			return nil, nil, err
		}
		rec = &ClaimRecord{
			Pool:        poolAddr,
			Asset:       asset,
			User:        user,
			Beneficiary: to,
			Amount:      amount,
			Timestamp:   e.clock.Now(),
		}
		return asset, []payout{{to: to, amount: amount, kind: "personal"}}, nil
	})
	if err != nil {
		return nil, err
	}

	observeAmount(poolAddr.String(), "claimed", rec.Amount)
	e.logger.Info("Personal yield claimed.",
		zap.String("pool", poolAddr.String()),
		zap.String("user", user.String()),
		zap.String("beneficiary", rec.Beneficiary.String()),
		zap.String("amount", rec.Amount.String()))
	e.emit(ctx, rec)
	return rec, nil
}
