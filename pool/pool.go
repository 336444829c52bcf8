// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package pool implements pooled positions issuing shares one-to-one against deposits. Every balance change is
// reported to the ledger, and harvested yield is handed over to the ledger for distribution.
package pool

import (
	"context"
	"math/big"
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/bank"
	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/state"
)

const _poolNS = "pool"

var (
	_sharesKeyPrefix = []byte("shares")
	_yieldKeyPrefix  = []byte("yield")

	// ErrNotEnoughShares is returned when withdrawing more than deposited
	ErrNotEnoughShares = errors.New("not enough shares")
	// ErrNoLedger is returned when the manager is used before a ledger is bound
	ErrNoLedger = errors.New("no ledger bound")
)

type (
	// Ledger is the part of the yield ledger the pools drive
	Ledger interface {
		Pool(ctx context.Context, pool address.Address) (*splitter.PoolRegistration, error)
		UpdateShares(ctx context.Context, user, pool address.Address, newShares *big.Int) error
		Distribute(ctx context.Context, pool, asset address.Address, totalYield *big.Int) (*splitter.DistributionRecord, error)
	}

	// Manager runs every pool on one bank and one ledger
	Manager struct {
		mu      sync.Mutex
		kv      db.KVStore
		bank    *bank.Bank
		custody address.Address
		ledger  Ledger
		logger  *zap.Logger
	}
)

var _ splitter.ShareReader = (*Manager)(nil)

// NewManager creates a pool manager. Harvested yield is moved to the custody address before distribution.
func NewManager(kv db.KVStore, b *bank.Bank, custody address.Address) *Manager {
	return &Manager{
		kv:      kv,
		bank:    b,
		custody: custody,
		logger:  log.Logger("pool"),
	}
}

// SetLedger binds the ledger. The ledger reads share balances from the manager, so it is bound after both exist.
func (m *Manager) SetLedger(l Ledger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledger = l
}

// ShareBalance implements splitter.ShareReader
func (m *Manager) ShareBalance(_ context.Context, pool, user address.Address) (*big.Int, error) {
	return loadAmount(state.NewWorkingSet(m.kv), sharesKey(pool, user))
}

// PendingYield returns the yield accrued by a pool and not harvested yet
func (m *Manager) PendingYield(_ context.Context, pool address.Address) (*big.Int, error) {
	return loadAmount(state.NewWorkingSet(m.kv), yieldKey(pool))
}

// Deposit moves amount of the pool asset from the user to the pool and issues as many shares
func (m *Manager) Deposit(ctx context.Context, pool, user address.Address, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errors.Errorf("invalid deposit amount %v", amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, err := m.asset(ctx, pool)
	if err != nil {
		return nil, err
	}
	if err := m.bank.Transfer(ctx, asset, user, pool, amount); err != nil {
		return nil, err
	}
	shares, err := m.changeShares(ctx, pool, user, amount)
	if err != nil {
		if rerr := m.bank.Transfer(ctx, asset, pool, user, amount); rerr != nil {
			m.logger.Error("Failed to refund deposit.", zap.Error(rerr))
		}
		return nil, err
	}
	return shares, nil
}

// Withdraw redeems amount of shares and pays the same amount of the pool asset back to the user
func (m *Manager) Withdraw(ctx context.Context, pool, user address.Address, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errors.Errorf("invalid withdraw amount %v", amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, err := m.asset(ctx, pool)
	if err != nil {
		return nil, err
	}
	shares, err := m.changeShares(ctx, pool, user, new(big.Int).Neg(amount))
	if err != nil {
		return nil, err
	}
	if err := m.bank.Transfer(ctx, asset, pool, user, amount); err != nil {
		m.logger.Error("Failed to pay withdrawal, shares are already redeemed.",
			zap.String("pool", pool.String()),
			zap.String("user", user.String()),
			zap.Error(err))
		return nil, err
	}
	return shares, nil
}

// AccrueYield credits yield earned by a pool's position. It is held by the pool until harvested.
func (m *Manager) AccrueYield(ctx context.Context, pool address.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Errorf("invalid yield amount %v", amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, err := m.asset(ctx, pool)
	if err != nil {
		return err
	}
	if err := m.bank.Mint(ctx, asset, pool, amount); err != nil {
		return err
	}
	ws := state.NewWorkingSet(m.kv)
	pending, err := loadAmount(ws, yieldKey(pool))
	if err != nil {
		return err
	}
	if err := putAmount(ws, yieldKey(pool), pending.Add(pending, amount)); err != nil {
		return err
	}
	return ws.Commit()
}

// Harvest hands the pending yield of a pool over to the ledger custody and distributes it. The distribution runs as
// the caller in ctx if there is one, as the pool itself otherwise. The pending yield is cleared before anything moves
// and is restored, with the funds returned to the pool, when the distribution fails.
func (m *Manager) Harvest(ctx context.Context, pool address.Address) (*splitter.DistributionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	asset, err := m.asset(ctx, pool)
	if err != nil {
		return nil, err
	}
	pending, err := loadAmount(state.NewWorkingSet(m.kv), yieldKey(pool))
	if err != nil {
		return nil, err
	}
	if pending.Sign() == 0 {
		return nil, splitter.ErrNothingToDistribute
	}
	if err := m.setPendingYield(pool, big.NewInt(0)); err != nil {
		return nil, errors.Wrap(err, "failed to clear pending yield")
	}
	if err := m.bank.Transfer(ctx, asset, pool, m.custody, pending); err != nil {
		m.restorePendingYield(pool, pending)
		return nil, err
	}
	if _, ok := splitter.GetCallerCtx(ctx); !ok {
		ctx = splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: pool})
	}
	rec, err := m.ledger.Distribute(ctx, pool, asset, pending)
	if err != nil {
		if rerr := m.bank.Transfer(ctx, asset, m.custody, pool, pending); rerr != nil {
			m.logger.Error("Failed to return undistributed yield.", zap.Error(rerr))
			return nil, err
		}
		m.restorePendingYield(pool, pending)
		return nil, err
	}
	return rec, nil
}

func (m *Manager) setPendingYield(pool address.Address, amount *big.Int) error {
	ws := state.NewWorkingSet(m.kv)
	if err := putAmount(ws, yieldKey(pool), amount); err != nil {
		return err
	}
	return ws.Commit()
}

func (m *Manager) restorePendingYield(pool address.Address, amount *big.Int) {
	if err := m.setPendingYield(pool, amount); err != nil {
		m.logger.Error("Failed to restore pending yield.",
			zap.String("pool", pool.String()),
			zap.String("amount", amount.String()),
			zap.Error(err))
	}
}

func (m *Manager) asset(ctx context.Context, pool address.Address) (address.Address, error) {
	if m.ledger == nil {
		return nil, ErrNoLedger
	}
	reg, err := m.ledger.Pool(ctx, pool)
	if err != nil {
		return nil, err
	}
	return reg.Asset, nil
}

// changeShares writes the new share balance and reports it to the ledger, restoring the old balance if the ledger
// rejects it
func (m *Manager) changeShares(ctx context.Context, pool, user address.Address, delta *big.Int) (*big.Int, error) {
	key := sharesKey(pool, user)
	ws := state.NewWorkingSet(m.kv)
	old, err := loadAmount(ws, key)
	if err != nil {
		return nil, err
	}
	shares := new(big.Int).Add(old, delta)
	if shares.Sign() < 0 {
		return nil, errors.Wrapf(ErrNotEnoughShares, "%s holds %s", user.String(), old)
	}
	if err := putAmount(ws, key, shares); err != nil {
		return nil, err
	}
	if err := ws.Commit(); err != nil {
		return nil, err
	}
	ctx = splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: pool})
	if err := m.ledger.UpdateShares(ctx, user, pool, shares); err != nil {
		if rerr := putAmount(ws, key, old); rerr == nil {
			if rerr = ws.Commit(); rerr != nil {
				m.logger.Error("Failed to restore shares.", zap.Error(rerr))
			}
		}
		return nil, err
	}
	return shares, nil
}

func sharesKey(pool, user address.Address) []byte {
	return state.Key(_sharesKeyPrefix, pool.Bytes(), user.Bytes())
}

func yieldKey(pool address.Address) []byte {
	return state.Key(_yieldKeyPrefix, pool.Bytes())
}

func loadAmount(sr state.StateReader, key []byte) (*big.Int, error) {
	acct := state.Account{}
	err := sr.State(_poolNS, key, &acct)
	switch errors.Cause(err) {
	case nil:
		return acct.Balance, nil
	case state.ErrStateNotExist:
		return big.NewInt(0), nil
	default:
		return nil, err
	}
}

func putAmount(sm state.StateManager, key []byte, amount *big.Int) error {
	return sm.PutState(_poolNS, key, &state.Account{Balance: amount})
}
