// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package ledgerservice

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/config"
	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

var (
	_pool     = identityset.Address(0)
	_asset    = identityset.Address(1)
	_treasury = identityset.Address(2)
	_payout   = identityset.Address(3)
	_admin    = identityset.Address(4)
	_custody  = identityset.Address(5)
	_alice    = identityset.Address(6)
	_bob      = identityset.Address(7)
)

func testConfig() config.Config {
	cfg := config.Default
	cfg.DB.DBType = db.DBMemory
	cfg.Events.Backend = config.EventsNone
	cfg.Ledger.Treasury = _treasury.String()
	cfg.Ledger.Custody = _custody.String()
	cfg.Ledger.Grants = map[string][]string{
		_admin.String(): {"fee-manager", "pool-registrar", "scheduler-manager"},
	}
	cfg.Campaigns = []config.Campaign{{ID: 1, Status: "active", Payout: _payout.String()}}
	return cfg
}

func TestLedgerService(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	kv := db.NewMemKVStore()

	ls, err := New(testConfig(), WithKVStore(kv))
	require.NoError(err)
	require.NoError(ls.Start(ctx))
	defer func() {
		require.NoError(ls.Stop(ctx))
	}()
	require.Empty(ls.ProbeAddr())
	require.Nil(ls.Scheduler())

	fee, err := ls.Engine().FeeRate(ctx)
	require.NoError(err)
	require.EqualValues(1000, fee)

	adminCtx := splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: _admin})
	require.NoError(ls.Engine().RegisterPool(adminCtx, _pool, _asset, 1))

	require.NoError(ls.Bank().Mint(ctx, _asset, _alice, big.NewInt(200)))
	require.NoError(ls.Bank().Mint(ctx, _asset, _bob, big.NewInt(200)))
	_, err = ls.Pools().Deposit(ctx, _pool, _alice, big.NewInt(200))
	require.NoError(err)
	_, err = ls.Pools().Deposit(ctx, _pool, _bob, big.NewInt(200))
	require.NoError(err)
	aliceCtx := splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: _alice})
	require.NoError(ls.Engine().SetAllocation(aliceCtx, _pool, splitter.Tier50, _alice))

	require.NoError(ls.Pools().AccrueYield(ctx, _pool, big.NewInt(1000)))
	rec, err := ls.Pools().Harvest(ctx, _pool)
	require.NoError(err)
	require.Equal("100", rec.Fee.String())
	require.Equal("225", rec.PersonalAccounted.String())

	claim, err := ls.Engine().Claim(aliceCtx, _pool)
	require.NoError(err)
	require.Equal("225", claim.Amount.String())
	bal, err := ls.Bank().Balance(ctx, _asset, _payout)
	require.NoError(err)
	require.Equal("675", bal.String())
}

func TestRestart(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	kv := db.NewMemKVStore()

	cfg := testConfig()
	ls, err := New(cfg, WithKVStore(kv))
	require.NoError(err)
	require.NoError(ls.Start(ctx))
	adminCtx := splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: _admin})
	require.NoError(ls.Engine().SetFeeRate(adminCtx, 500))
	require.NoError(ls.Stop(ctx))

	// the stored fee rate survives, the configured one only applies on first start
	ls, err = New(cfg, WithKVStore(kv))
	require.NoError(err)
	require.NoError(ls.Start(ctx))
	fee, err := ls.Engine().FeeRate(ctx)
	require.NoError(err)
	require.EqualValues(500, fee)
	require.NoError(ls.Stop(ctx))
}

func TestNewErrors(t *testing.T) {
	require := require.New(t)

	_, err := New(testConfig(), WithKVStore(nil))
	require.Error(err)

	cfg := testConfig()
	cfg.Ledger.Treasury = ""
	_, err = New(cfg, WithKVStore(db.NewMemKVStore()))
	require.Error(err)

	cfg = testConfig()
	cfg.Campaigns = []config.Campaign{{ID: 1, Status: "unknown", Payout: _payout.String()}}
	_, err = New(cfg, WithKVStore(db.NewMemKVStore()))
	require.Error(err)

	cfg = testConfig()
	cfg.Ledger.Grants = map[string][]string{_admin.String(): {"root"}}
	_, err = New(cfg, WithKVStore(db.NewMemKVStore()))
	require.Error(err)
}
