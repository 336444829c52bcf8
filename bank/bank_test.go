// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package bank

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/state"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

func TestBank(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	b := NewBank(db.NewMemKVStore())
	asset, alfa, bravo := identityset.Address(1), identityset.Address(5), identityset.Address(6)

	bal, err := b.Balance(ctx, asset, alfa)
	r.NoError(err)
	r.Zero(bal.Sign())

	r.NoError(b.Mint(ctx, asset, alfa, big.NewInt(100)))
	r.NoError(b.Transfer(ctx, asset, alfa, bravo, big.NewInt(30)))
	r.ErrorIs(b.Transfer(ctx, asset, alfa, bravo, big.NewInt(71)), state.ErrNotEnoughBalance)
	r.Error(b.Transfer(ctx, asset, alfa, bravo, big.NewInt(-1)))
	r.NoError(b.Burn(ctx, asset, bravo, big.NewInt(10)))

	bal, err = b.Balance(ctx, asset, alfa)
	r.NoError(err)
	r.Equal(int64(70), bal.Int64())
	bal, err = b.Balance(ctx, asset, bravo)
	r.NoError(err)
	r.Equal(int64(20), bal.Int64())
	// assets are kept apart
	bal, err = b.Balance(ctx, identityset.Address(2), alfa)
	r.NoError(err)
	r.Zero(bal.Sign())
}

func TestSnapshotRevert(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	b := NewBank(db.NewMemKVStore())
	asset, alfa, bravo, charlie := identityset.Address(1), identityset.Address(5), identityset.Address(6),
		identityset.Address(7)
	r.NoError(b.Mint(ctx, asset, alfa, big.NewInt(100)))

	c := NewCustodian(b, alfa)
	snap := c.Snapshot()
	r.NoError(c.Transfer(ctx, asset, bravo, big.NewInt(40)))
	r.NoError(c.Transfer(ctx, asset, charlie, big.NewInt(10)))
	// a failed transfer leaves no journal entry behind
	r.Error(c.Transfer(ctx, asset, charlie, big.NewInt(1000)))
	r.NoError(c.Revert(snap))

	for _, v := range []struct {
		owner  int
		amount int64
	}{
		{5, 100}, {6, 0}, {7, 0},
	} {
		bal, err := b.Balance(ctx, asset, identityset.Address(v.owner))
		r.NoError(err)
		r.Equal(v.amount, bal.Int64())
	}

	// only the latest snapshot can be reverted to
	old := c.Snapshot()
	latest := c.Snapshot()
	r.ErrorIs(c.Revert(old), ErrInvalidSnapshot)
	r.NoError(c.Revert(latest))
}

func TestJournalLimit(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	b := NewBank(db.NewMemKVStore())
	asset, alfa := identityset.Address(1), identityset.Address(5)

	snap := b.Snapshot()
	for i := 0; i <= _maxJournal; i++ {
		r.NoError(b.Mint(ctx, asset, alfa, big.NewInt(1)))
	}
	r.ErrorIs(b.Revert(snap), ErrInvalidSnapshot)
}
