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

// UpdateShares records the new share balance of a user. Only the pool may call it, right after the balance changed,
// and newShares must equal the balance the pool reports.
func (e *Engine) UpdateShares(ctx context.Context, user, poolAddr address.Address, newShares *big.Int) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	return e.run(ctx, "updateShares", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if newShares == nil || newShares.Sign() < 0 {
			return nil, nil, errors.Wrapf(ErrInvalidAmount, "shares %v", newShares)
		}
		if isZeroAddress(user) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "user")
		}
		if isZeroAddress(poolAddr) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "pool")
		}
		if !sameAddress(caller, poolAddr) {
			return nil, nil, errors.Wrapf(ErrNotPool, "caller %s", addrString(caller))
		}
		p, err := loadPool(ws, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		reported, err := e.shares.ShareBalance(ctx, poolAddr, user)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to get share balance of %s", user.String())
		}
		if reported == nil || reported.Cmp(newShares) != 0 {
			return nil, nil, errors.Wrapf(ErrSharesMismatch, "pool reports %v, got %s", reported, newShares)
		}
		a, err := loadAccount(ws, user, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		pref, err := loadPreference(ws, user, poolAddr)
		if err != nil {
			return nil, nil, err
		}

		settle(p, a)
		if err := p.subShares(a.Tier, a.Shares); err != nil {
			return nil, nil, err
		}
		a.Shares = new(big.Int).Set(newShares)
		a.Tier = Tier100
		if pref != nil {
			a.Tier = pref.Tier
		}
		p.addShares(a.Tier, a.Shares)
		rebase(p, a)

		if err := ws.PutState(_ledgerNS, accountKey(user, poolAddr), a); err != nil {
			return nil, nil, err
		}
		if err := ws.PutState(_ledgerNS, poolKey(poolAddr), p); err != nil {
			return nil, nil, err
		}
		e.logger.Debug("Shares updated.",
			zap.String("pool", poolAddr.String()),
			zap.String("user", user.String()),
			zap.String("shares", newShares.String()),
			zap.Stringer("tier", a.Tier))
		return nil, nil, nil
	})
}
