// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"math/big"
)

// accrued is the entitlement of shares at an accumulator value, in accumulator scale
func accrued(shares, accPerShare *big.Int) *big.Int {
	return new(big.Int).Mul(shares, accPerShare)
}

// settle flushes the entitlement accrued since the account's last settlement into its pending balance. It must run
// before any change to the account's shares or tier.
//
// The reward debt is kept in accumulator scale and only advances by what was credited, so the fraction lost to
// truncation carries over to the next settlement instead of being credited twice.
func settle(p *pool, a *account) {
	if a.Shares.Sign() == 0 {
		a.RewardDebt = big.NewInt(0)
		return
	}
	credit := unsettled(p, a)
	if credit.Sign() == 0 {
		return
	}
	a.Pending.Add(a.Pending, credit)
	a.RewardDebt.Add(a.RewardDebt, credit.Mul(credit, _precision))
}

// rebase resets the reward debt to the current accumulator of the account's tier
func rebase(p *pool, a *account) {
	a.RewardDebt = accrued(a.Shares, p.accPerShare(a.Tier))
}

// unsettled is what settle would add to the pending balance right now
func unsettled(p *pool, a *account) *big.Int {
	if a.Shares.Sign() == 0 {
		return big.NewInt(0)
	}
	delta := accrued(a.Shares, p.accPerShare(a.Tier))
	delta.Sub(delta, a.RewardDebt)
	if delta.Sign() <= 0 {
		return big.NewInt(0)
	}
	return delta.Quo(delta, _precision)
}
