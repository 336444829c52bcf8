// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

func TestSplitFee(t *testing.T) {
	r := require.New(t)
	for _, v := range []struct {
		yield, bps, fee, net int64
	}{
		{1000, 1000, 100, 900},
		{1001, 1000, 101, 900},
		{1, 1, 1, 0},
		{9999, 0, 0, 9999},
		{10000, 2000, 2000, 8000},
	} {
		fee, net := splitFee(big.NewInt(v.yield), uint64(v.bps))
		r.Equal(v.fee, fee.Int64(), "yield %d bps %d", v.yield, v.bps)
		r.Equal(v.net, net.Int64(), "yield %d bps %d", v.yield, v.bps)
	}
}

func TestAccrue(t *testing.T) {
	r := require.New(t)

	p := newPool(identityset.Address(1), 1)
	// no shares, everything goes to the campaign
	r.Zero(accrue(p, big.NewInt(900)).Sign())

	p.addShares(Tier50, big.NewInt(200))
	p.addShares(Tier100, big.NewInt(200))
	r.Equal(int64(225), accrue(p, big.NewInt(900)).Int64())
	r.Equal("1125000000000000000", p.Acc50.String())
	r.Zero(p.Acc75.Sign())

	p.addShares(Tier75, big.NewInt(400))
	// 900*200*50/80000 = 112, 900*400*25/80000 = 112
	r.Equal(int64(224), accrue(p, big.NewInt(900)).Int64())
	r.Equal("1685000000000000000", p.Acc50.String())
	r.Equal("280000000000000000", p.Acc75.String())

	// zero distributable leaves the accumulators untouched
	r.Zero(accrue(p, big.NewInt(0)).Sign())
	r.Equal("1685000000000000000", p.Acc50.String())
}

func TestSettle(t *testing.T) {
	r := require.New(t)

	p := newPool(identityset.Address(1), 1)
	p.addShares(Tier50, big.NewInt(3))
	a := newAccount()
	a.Shares = big.NewInt(3)
	a.Tier = Tier50
	rebase(p, a)

	// 5 is credited to the bucket, the account gets 4 after truncation
	accrue(p, big.NewInt(10))
	r.Equal(int64(4), unsettled(p, a).Int64())
	settle(p, a)
	r.Equal(int64(4), a.Pending.Int64())
	r.Zero(unsettled(p, a).Sign())

	// settling again without a distribution in between changes nothing
	settle(p, a)
	r.Equal(int64(4), a.Pending.Int64())

	// the truncated fraction carries over: 10 more credit 5, in total 9 of the 10 set aside
	accrue(p, big.NewInt(10))
	settle(p, a)
	r.Equal(int64(9), a.Pending.Int64())
	r.Zero(unsettled(p, a).Sign())

	// a 100% tier account never accrues
	b := newAccount()
	b.Shares = big.NewInt(1000)
	accrue(p, big.NewInt(1000))
	settle(p, b)
	r.Zero(b.Pending.Sign())
	r.Zero(b.RewardDebt.Sign())

	// zero shares reset the debt
	a.Shares = big.NewInt(0)
	settle(p, a)
	r.Zero(a.RewardDebt.Sign())
	r.Equal(int64(9), a.Pending.Int64())
}

func TestPoolShares(t *testing.T) {
	r := require.New(t)

	p := newPool(identityset.Address(1), 1)
	p.addShares(Tier75, big.NewInt(10))
	p.addShares(Tier100, big.NewInt(5))
	r.Equal(int64(15), p.TotalShares.Int64())
	r.Equal(int64(10), p.Shares75.Int64())
	r.Nil(p.bucket(Tier100))

	r.ErrorIs(p.subShares(Tier75, big.NewInt(11)), ErrInvalidState)
	r.NoError(p.subShares(Tier75, big.NewInt(10)))
	r.Equal(int64(5), p.TotalShares.Int64())
	r.Zero(p.Shares75.Sign())
	r.ErrorIs(p.subShares(Tier100, big.NewInt(6)), ErrInvalidState)
}

func TestStateSerialization(t *testing.T) {
	r := require.New(t)

	p := newPool(identityset.Address(1), 7)
	p.addShares(Tier50, big.NewInt(42))
	data, err := p.Serialize()
	r.NoError(err)
	p2 := pool{}
	r.NoError(p2.Deserialize(data))
	r.Equal(uint64(7), p2.CampaignID)
	r.Equal(int64(42), p2.Shares50.Int64())
	// zero amounts come back as zero, not nil
	r.NotNil(p2.Acc75)
	r.Zero(p2.TotalClaimed.Sign())

	a := account{}
	data, err = newAccount().Serialize()
	r.NoError(err)
	r.NoError(a.Deserialize(data))
	r.Equal(Tier100, a.Tier)
	r.NotNil(a.Pending)
}

func TestTier(t *testing.T) {
	r := require.New(t)
	r.True(Tier50.Valid())
	r.True(Tier75.Valid())
	r.True(Tier100.Valid())
	r.False(Tier(60).Valid())
	r.False(Tier(0).Valid())
	r.Equal(int64(50), Tier50.PersonalFraction())
	r.Equal(int64(25), Tier75.PersonalFraction())
	r.Zero(Tier100.PersonalFraction())
	r.Equal("75%", Tier75.String())
}
