// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package splitter splits the yield harvested by a pooled position between a campaign and the pool's depositors.
//
// Each depositor picks an allocation tier (50, 75 or 100 percent of their pro-rata yield goes to the campaign) and a
// beneficiary for the rest. Distribution cost does not depend on the number of depositors: every partial tier keeps a
// bucket share total and a scaled reward-per-share accumulator, and a depositor's entitlement is settled lazily from
// the accumulator delta before any change to their shares or tier.
package splitter

import (
	"context"
	"sync"
	"math/big"

	"github.com/facebookgo/clock"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/state"
)

type (
	// Option is the engine option
	Option func(*Engine)

	// Engine is the yield-distribution ledger. All mutating operations are serialized: concurrent callers wait their
	// turn, while a collaborator calling back into the engine with the ctx it was handed fails with ErrReentrant.
	Engine struct {
		kv        db.KVStore
		treasury  address.Address
		shares    ShareReader
		campaigns CampaignRegistry
		vault     Vault
		auth      Authorizer
		sink      EventSink
		clock     clock.Clock
		logger    *zap.Logger
		mu        sync.Mutex
	}

	payout struct {
		to     address.Address
		amount *big.Int
		kind   string
	}
)

// WithClock sets the clock stamping records
func WithClock(ck clock.Clock) Option {
	return func(e *Engine) {
		e.clock = ck
	}
}

// WithEventSink sets the sink receiving distribution and claim records
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates a ledger engine on top of the store
func NewEngine(
	kv db.KVStore,
	treasury address.Address,
	shares ShareReader,
	campaigns CampaignRegistry,
	vault Vault,
	auth Authorizer,
	opts ...Option,
) (*Engine, error) {
	if kv == nil || shares == nil || campaigns == nil || vault == nil || auth == nil {
		return nil, errors.New("missing engine collaborator")
	}
	if isZeroAddress(treasury) {
		return nil, errors.Wrap(ErrZeroAddress, "treasury")
	}
	e := &Engine{
		kv:        kv,
		treasury:  treasury,
		shares:    shares,
		campaigns: campaigns,
		vault:     vault,
		auth:      auth,
		clock:     clock.New(),
		logger:    log.Logger("yieldsplit"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Treasury returns the destination of protocol fees
func (e *Engine) Treasury() address.Address {
	return e.treasury
}

type inFlightCtxKey struct {
	e *Engine
}

// enter takes the operation lock and marks ctx as inside this engine
func (e *Engine) enter(ctx context.Context) (context.Context, error) {
	if ctx.Value(inFlightCtxKey{e}) != nil {
		return ctx, ErrReentrant
	}
	e.mu.Lock()
	return context.WithValue(ctx, inFlightCtxKey{e}, struct{}{}), nil
}

func (e *Engine) exit() {
	e.mu.Unlock()
}

// run executes a mutating operation against a fresh working set. State is committed only if fn and all payouts it
// returns succeed, otherwise nothing is written and transfers made through a Reverter vault are undone.
func (e *Engine) run(
	ctx context.Context,
	op string,
	fn func(context.Context, *state.WorkingSet) (address.Address, []payout, error),
) (err error) {
	ctx, err = e.enter(ctx)
	if err != nil {
		_operationMtc.WithLabelValues(op, resultLabel(err)).Inc()
		return err
	}
	defer e.exit()
	defer func() {
		_operationMtc.WithLabelValues(op, resultLabel(err)).Inc()
		if err != nil {
			e.logger.Warn("Operation rejected.", zap.String("op", op), zap.Error(err))
		}
	}()

	ws := state.NewWorkingSet(e.kv)
	asset, payouts, err := fn(ctx, ws)
	if err != nil {
		ws.Discard()
		return err
	}
	revert, err := e.pay(ctx, asset, payouts)
	if err != nil {
		ws.Discard()
		return err
	}
	if err = ws.Commit(); err != nil {
		if rerr := revert(); rerr != nil {
			e.logger.Error("Failed to revert payouts.", zap.String("op", op), zap.Error(rerr))
		}
		return err
	}
	return nil
}

// pay executes the payouts in order, skipping zero amounts. The vault is only snapshotted when something moves.
func (e *Engine) pay(ctx context.Context, asset address.Address, payouts []payout) (func() error, error) {
	if !hasTransfer(payouts) {
		return func() error { return nil }, nil
	}
	reverter, canRevert := e.vault.(Reverter)
	snapshot := 0
	if canRevert {
		snapshot = reverter.Snapshot()
	}
	revert := func() error {
		if !canRevert {
			return errors.New("vault cannot revert transfers")
		}
		return reverter.Revert(snapshot)
	}
	for i, p := range payouts {
		if p.amount.Sign() == 0 {
			continue
		}
		if err := e.vault.Transfer(ctx, asset, p.to, p.amount); err != nil {
			if i > 0 {
				if rerr := revert(); rerr != nil {
					e.logger.Error("Failed to revert partial payouts.", zap.Error(rerr))
				}
			}
			return nil, errors.Wrapf(err, "failed to transfer %s %s to %s", p.kind, p.amount, p.to.String())
		}
	}
	return revert, nil
}

func hasTransfer(payouts []payout) bool {
	for _, p := range payouts {
		if p.amount.Sign() != 0 {
			return true
		}
	}
	return false
}

func (e *Engine) emit(ctx context.Context, r Record) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Emit(ctx, r); err != nil {
		e.logger.Warn("Failed to emit record.", zap.String("type", string(r.Type())), zap.Error(err))
	}
}

func (e *Engine) assertCapability(caller address.Address, c Capability) error {
	if isZeroAddress(caller) || !e.auth.IsAuthorized(caller, c) {
		return errors.Wrapf(ErrMissingCapability, "%s lacks %s", addrString(caller), c)
	}
	return nil
}

func (e *Engine) reader() state.StateReader {
	return state.NewWorkingSet(e.kv)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidState):
		return "state"
	case errors.Is(err, ErrEmptyOperation):
		return "empty"
	case errors.Is(err, ErrReentrant):
		return "reentrant"
	}
	return "error"
}

func addrString(addr address.Address) string {
	if addr == nil {
		return "<nil>"
	}
	return addr.String()
}
