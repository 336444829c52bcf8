// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package scheduler

import (
	"context"
	"time"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/pkg/lifecycle"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/pkg/routine"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var _ lifecycle.StartStopper = (*Scheduler)(nil)

type (
	// Harvester harvests a pool and distributes the yield
	Harvester interface {
		Harvest(ctx context.Context, pool address.Address) (*splitter.DistributionRecord, error)
	}

	// Scheduler harvests a set of pools on a fixed cadence, acting as an allow-listed scheduler of the ledger
	Scheduler struct {
		id     address.Address
		pools  []address.Address
		h      Harvester
		task   *routine.RecurringTask
		logger *zap.Logger
	}
)

// New creates a scheduler
func New(
	id address.Address,
	h Harvester,
	pools []address.Address,
	interval time.Duration,
	opts ...routine.RecurringTaskOption,
) (*Scheduler, error) {
	if id == nil {
		return nil, errors.New("scheduler address is required")
	}
	if interval <= 0 {
		return nil, errors.Errorf("invalid interval %s", interval)
	}
	s := &Scheduler{
		id:     id,
		pools:  pools,
		h:      h,
		logger: log.Logger("scheduler"),
	}
	s.task = routine.NewRecurringTask(func() {
		s.RunOnce(context.Background())
	}, interval, opts...)
	return s, nil
}

// Start starts the recurring harvest
func (s *Scheduler) Start(ctx context.Context) error {
	return s.task.Start(ctx)
}

// Stop stops the recurring harvest
func (s *Scheduler) Stop(ctx context.Context) error {
	return s.task.Stop(ctx)
}

// RunOnce harvests every pool once, returning the number of distributions made
func (s *Scheduler) RunOnce(ctx context.Context) int {
	ctx = splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: s.id})
	n := 0
	for _, p := range s.pools {
		rec, err := s.h.Harvest(ctx, p)
		switch {
		case err == nil:
			n++
			s.logger.Debug("Pool harvested.", zap.String("pool", p.String()), zap.String("gross", rec.Gross.String()))
		case errors.Is(err, splitter.ErrEmptyOperation):
			s.logger.Debug("Nothing to harvest.", zap.String("pool", p.String()))
		default:
			s.logger.Warn("Failed to harvest pool.", zap.String("pool", p.String()), zap.Error(err))
		}
	}
	return n
}
