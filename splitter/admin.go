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

// Initialize writes the initial fee rate and scheduler allow-list. It can only run once, before any administrative
// change, and needs no caller.
func (e *Engine) Initialize(ctx context.Context, feeRateBps uint64, schedulers []address.Address) error {
	return e.run(ctx, "initialize", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if feeRateBps > MaxFeeRateBps {
			return nil, nil, errors.Wrapf(ErrFeeTooHigh, "%d > %d", feeRateBps, MaxFeeRateBps)
		}
		err := ws.State(_ledgerNS, _adminKey, &admin{})
		switch errors.Cause(err) {
		case nil:
			return nil, nil, ErrAlreadyInitialized
		case state.ErrStateNotExist:
		default:
			return nil, nil, err
		}
		a := admin{FeeRateBps: feeRateBps}
		for _, s := range schedulers {
			if isZeroAddress(s) {
				return nil, nil, errors.Wrap(ErrZeroAddress, "scheduler")
			}
			if !a.hasScheduler(s) {
				a.Schedulers = append(a.Schedulers, s.String())
			}
		}
		return nil, nil, ws.PutState(_ledgerNS, _adminKey, &a)
	})
}

// SetFeeRate sets the protocol fee rate in basis points. The caller needs CapabilityFeeManager.
func (e *Engine) SetFeeRate(ctx context.Context, feeRateBps uint64) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	return e.run(ctx, "setFeeRate", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if err := e.assertCapability(caller, CapabilityFeeManager); err != nil {
			return nil, nil, err
		}
		if feeRateBps > MaxFeeRateBps {
			return nil, nil, errors.Wrapf(ErrFeeTooHigh, "%d > %d", feeRateBps, MaxFeeRateBps)
		}
		a, err := loadAdmin(ws)
		if err != nil {
			return nil, nil, err
		}
		a.FeeRateBps = feeRateBps
		e.logger.Info("Fee rate updated.", zap.Uint64("bps", feeRateBps), zap.String("caller", caller.String()))
		return nil, nil, ws.PutState(_ledgerNS, _adminKey, a)
	})
}

// RegisterPool binds a pool to its asset and campaign. The binding is permanent. The caller needs
// CapabilityPoolRegistrar.
func (e *Engine) RegisterPool(ctx context.Context, poolAddr, asset address.Address, campaignID uint64) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	return e.run(ctx, "registerPool", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if err := e.assertCapability(caller, CapabilityPoolRegistrar); err != nil {
			return nil, nil, err
		}
		if isZeroAddress(poolAddr) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "pool")
		}
		if isZeroAddress(asset) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "asset")
		}
		_, err := loadPool(ws, poolAddr)
		switch {
		case err == nil:
			return nil, nil, errors.Wrapf(ErrPoolAlreadyRegistered, "pool %s", poolAddr.String())
		case !errors.Is(err, ErrPoolNotRegistered):
			return nil, nil, err
		}
		e.logger.Info("Pool registered.",
			zap.String("pool", poolAddr.String()),
			zap.String("asset", asset.String()),
			zap.Uint64("campaign", campaignID))
		return nil, nil, ws.PutState(_ledgerNS, poolKey(poolAddr), newPool(asset, campaignID))
	})
}

// AddScheduler allow-lists an external distribution trigger. The caller needs CapabilitySchedulerManager.
func (e *Engine) AddScheduler(ctx context.Context, scheduler address.Address) error {
	return e.updateSchedulers(ctx, "addScheduler", scheduler, true)
}

// RemoveScheduler removes a trigger from the allow-list. The caller needs CapabilitySchedulerManager.
func (e *Engine) RemoveScheduler(ctx context.Context, scheduler address.Address) error {
	return e.updateSchedulers(ctx, "removeScheduler", scheduler, false)
}

func (e *Engine) updateSchedulers(ctx context.Context, op string, scheduler address.Address, add bool) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	return e.run(ctx, op, func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if err := e.assertCapability(caller, CapabilitySchedulerManager); err != nil {
			return nil, nil, err
		}
		if isZeroAddress(scheduler) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "scheduler")
		}
		a, err := loadAdmin(ws)
		if err != nil {
			return nil, nil, err
		}
		s := scheduler.String()
		if add {
			if a.hasScheduler(scheduler) {
				return nil, nil, nil
			}
			a.Schedulers = append(a.Schedulers, s)
		} else {
			kept := a.Schedulers[:0]
			for _, sch := range a.Schedulers {
				if sch != s {
					kept = append(kept, sch)
				}
			}
			a.Schedulers = kept
		}
		e.logger.Info("Scheduler allow-list updated.", zap.String("scheduler", s), zap.Bool("added", add))
		return nil, nil, ws.PutState(_ledgerNS, _adminKey, a)
	})
}
