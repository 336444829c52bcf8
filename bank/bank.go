// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package bank keeps multi-asset balances on a KVStore. It stands in for the fungible-asset transfer collaborator of
// the ledger.
package bank

import (
	"context"
	"math/big"
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/state"
)

const (
	_bankNS = "bank"
	// journal entries kept before the snapshot is dropped
	_maxJournal = 1024
)

var (
	_balanceKeyPrefix = []byte("balance")

	// ErrInvalidSnapshot is returned when reverting to a snapshot that is not the latest one
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

type (
	// Bank is the balance book of all assets
	Bank struct {
		mu       sync.Mutex
		kv       db.KVStore
		gen      int
		tracking bool
		journal  []change
	}

	// change is the balance a key had before a write, nil if it did not exist
	change struct {
		key  []byte
		prev *state.Account
	}
)

// NewBank creates a bank on the store
func NewBank(kv db.KVStore) *Bank {
	return &Bank{kv: kv}
}

// Balance returns the balance of owner in asset
func (b *Bank) Balance(_ context.Context, asset, owner address.Address) (*big.Int, error) {
	acct, _, err := loadAccount(state.NewWorkingSet(b.kv), asset, owner)
	if err != nil {
		return nil, err
	}
	return acct.Balance, nil
}

// Mint credits new units of asset to an owner
func (b *Bank) Mint(_ context.Context, asset, to address.Address, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}
	return b.apply(func(ws *state.WorkingSet) error {
		return b.credit(ws, asset, to, amount)
	})
}

// Burn destroys units of asset held by an owner
func (b *Bank) Burn(_ context.Context, asset, from address.Address, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}
	return b.apply(func(ws *state.WorkingSet) error {
		return b.debit(ws, asset, from, amount)
	})
}

// Transfer moves units of asset between owners
func (b *Bank) Transfer(_ context.Context, asset, from, to address.Address, amount *big.Int) error {
	if err := validAmount(amount); err != nil {
		return err
	}
	if err := b.apply(func(ws *state.WorkingSet) error {
		if err := b.debit(ws, asset, from, amount); err != nil {
			return err
		}
		return b.credit(ws, asset, to, amount)
	}); err != nil {
		return err
	}
	log.L().Debug("Transferred.",
		zap.String("asset", asset.String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("amount", amount.String()))
	return nil
}

// Snapshot starts journaling balance changes and returns the snapshot id. Only the latest snapshot can be reverted
// to.
func (b *Bank) Snapshot() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.tracking = true
	b.journal = b.journal[:0]
	return b.gen
}

// Revert undoes every balance change made since the snapshot
func (b *Bank) Revert(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if id != b.gen || !b.tracking {
		return errors.Wrapf(ErrInvalidSnapshot, "snapshot %d, latest %d", id, b.gen)
	}
	ws := state.NewWorkingSet(b.kv)
	for i := len(b.journal) - 1; i >= 0; i-- {
		c := b.journal[i]
		if c.prev == nil {
			if err := ws.DelState(_bankNS, c.key); err != nil {
				return err
			}
			continue
		}
		if err := ws.PutState(_bankNS, c.key, c.prev); err != nil {
			return err
		}
	}
	if err := ws.Commit(); err != nil {
		return err
	}
	b.journal = b.journal[:0]
	return nil
}

func (b *Bank) apply(fn func(*state.WorkingSet) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.journal)
	ws := state.NewWorkingSet(b.kv)
	err := fn(ws)
	if err == nil {
		err = ws.Commit()
	}
	if err != nil && len(b.journal) > n {
		b.journal = b.journal[:n]
	}
	return err
}

func (b *Bank) credit(ws *state.WorkingSet, asset, owner address.Address, amount *big.Int) error {
	acct, existed, err := loadAccount(ws, asset, owner)
	if err != nil {
		return err
	}
	b.record(balanceKey(asset, owner), acct, existed)
	if err := acct.AddBalance(amount); err != nil {
		return err
	}
	return ws.PutState(_bankNS, balanceKey(asset, owner), acct)
}

func (b *Bank) debit(ws *state.WorkingSet, asset, owner address.Address, amount *big.Int) error {
	acct, existed, err := loadAccount(ws, asset, owner)
	if err != nil {
		return err
	}
	b.record(balanceKey(asset, owner), acct, existed)
	if err := acct.SubBalance(amount); err != nil {
		return errors.Wrapf(err, "%s holds %s, needs %s", owner.String(), acct.Balance, amount)
	}
	return ws.PutState(_bankNS, balanceKey(asset, owner), acct)
}

func (b *Bank) record(key []byte, acct *state.Account, existed bool) {
	if !b.tracking {
		return
	}
	if len(b.journal) >= _maxJournal {
		b.tracking = false
		b.journal = b.journal[:0]
		return
	}
	c := change{key: key}
	if existed {
		c.prev = &state.Account{Balance: new(big.Int).Set(acct.Balance)}
	}
	b.journal = append(b.journal, c)
}

func loadAccount(sr state.StateReader, asset, owner address.Address) (*state.Account, bool, error) {
	acct := state.Account{}
	err := sr.State(_bankNS, balanceKey(asset, owner), &acct)
	switch errors.Cause(err) {
	case nil:
		return &acct, true, nil
	case state.ErrStateNotExist:
		return state.NewAccount(), false, nil
	default:
		return nil, false, err
	}
}

func balanceKey(asset, owner address.Address) []byte {
	return state.Key(_balanceKeyPrefix, asset.Bytes(), owner.Bytes())
}

func validAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Errorf("invalid amount %v", amount)
	}
	return nil
}
