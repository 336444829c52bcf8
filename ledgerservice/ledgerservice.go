// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package ledgerservice

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/acl"
	"github.com/iotexproject/iotex-yieldsplit/bank"
	"github.com/iotexproject/iotex-yieldsplit/campaign"
	"github.com/iotexproject/iotex-yieldsplit/config"
	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/events"
	"github.com/iotexproject/iotex-yieldsplit/pkg/lifecycle"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/pkg/probe"
	"github.com/iotexproject/iotex-yieldsplit/pool"
	"github.com/iotexproject/iotex-yieldsplit/scheduler"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

// LedgerService wires the ledger engine to its collaborators
type LedgerService struct {
	cfg       config.Config
	kv        db.KVStore
	bank      *bank.Bank
	custodian *bank.Custodian
	campaigns *campaign.Registry
	acl       *acl.Table
	pools     *pool.Manager
	engine    *splitter.Engine
	sink      splitter.EventSink
	scheduler *scheduler.Scheduler
	probe     *probe.Server
	lc        lifecycle.Lifecycle
}

type optionParams struct {
	serving bool
	kv      db.KVStore
}

// Option sets LedgerService construction parameter.
type Option func(ops *optionParams) error

// WithServing is an option to also run the scheduler and the probe server
func WithServing() Option {
	return func(ops *optionParams) error {
		ops.serving = true
		return nil
	}
}

// WithKVStore is an option to use the given store instead of the configured one
func WithKVStore(kv db.KVStore) Option {
	return func(ops *optionParams) error {
		if kv == nil {
			return errors.New("nil kv store")
		}
		ops.kv = kv
		return nil
	}
}

// New creates a LedgerService from config
func New(cfg config.Config, opts ...Option) (*LedgerService, error) {
	ops := optionParams{}
	for _, opt := range opts {
		if err := opt(&ops); err != nil {
			return nil, err
		}
	}
	ls := LedgerService{cfg: cfg, kv: ops.kv}
	if ls.kv == nil {
		kv, err := db.CreateKVStore(cfg.DB)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create kv store")
		}
		ls.kv = kv
	}
	treasury, err := cfg.TreasuryAddress()
	if err != nil {
		return nil, err
	}
	custody, err := cfg.CustodyAddress()
	if err != nil {
		return nil, err
	}
	seeds := make([]splitter.Campaign, 0, len(cfg.Campaigns))
	for _, c := range cfg.Campaigns {
		sc, err := campaign.New(c.ID, c.Status, c.Payout)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, sc)
	}
	if ls.acl, err = acl.FromConfig(cfg.Ledger.Grants); err != nil {
		return nil, err
	}
	ls.campaigns = campaign.NewRegistry(seeds...)
	ls.bank = bank.NewBank(ls.kv)
	ls.custodian = bank.NewCustodian(ls.bank, custody)
	ls.pools = pool.NewManager(ls.kv, ls.bank, custody)

	var sinkLC lifecycle.Model
	switch cfg.Events.Backend {
	case config.EventsLog:
		ls.sink = events.NewLogSink(log.Logger("events"))
	case config.EventsRedis:
		rs := events.NewRedisSink(cfg.Events.Redis)
		ls.sink, sinkLC = events.Fanout{events.NewLogSink(log.Logger("events")), rs}, rs
	}
	engineOpts := []splitter.Option{}
	if ls.sink != nil {
		engineOpts = append(engineOpts, splitter.WithEventSink(ls.sink))
	}
	ls.engine, err = splitter.NewEngine(ls.kv, treasury, ls.pools, ls.campaigns, ls.custodian, ls.acl, engineOpts...)
	if err != nil {
		return nil, err
	}
	ls.pools.SetLedger(ls.engine)

	ls.lc.Add(ls.kv)
	if sinkLC != nil {
		ls.lc.Add(sinkLC)
	}
	if ops.serving {
		if cfg.Scheduler.Enabled {
			if ls.scheduler, err = newScheduler(cfg, ls.pools); err != nil {
				return nil, err
			}
			ls.lc.Add(ls.scheduler)
		}
		ls.probe = probe.New(cfg.Metrics.Addr)
		ls.lc.Add(ls.probe)
	}
	return &ls, nil
}

func newScheduler(cfg config.Config, h scheduler.Harvester) (*scheduler.Scheduler, error) {
	id, err := address.FromString(cfg.Scheduler.Address)
	if err != nil {
		return nil, errors.Wrap(err, "invalid scheduler address")
	}
	pools, err := config.Addresses(cfg.Scheduler.Pools)
	if err != nil {
		return nil, err
	}
	return scheduler.New(id, h, pools, cfg.Scheduler.Interval)
}

// Start starts the store and the other components, then bootstraps the ledger settings on first run
func (ls *LedgerService) Start(ctx context.Context) error {
	if err := ls.lc.OnStart(ctx); err != nil {
		return errors.Wrap(err, "error when starting ledger service")
	}
	if err := ls.bootstrap(ctx); err != nil {
		return err
	}
	if ls.probe != nil {
		ls.probe.Ready()
	}
	return nil
}

// Stop stops the components in reverse order
func (ls *LedgerService) Stop(ctx context.Context) error {
	if ls.probe != nil {
		ls.probe.NotReady()
	}
	if err := ls.lc.OnStop(ctx); err != nil {
		return errors.Wrap(err, "error when stopping ledger service")
	}
	return nil
}

func (ls *LedgerService) bootstrap(ctx context.Context) error {
	schedulers, err := config.Addresses(ls.cfg.Ledger.Schedulers)
	if err != nil {
		return err
	}
	if ls.cfg.Scheduler.Enabled && ls.cfg.Scheduler.Address != "" {
		addr, err := address.FromString(ls.cfg.Scheduler.Address)
		if err != nil {
			return errors.Wrap(err, "invalid scheduler address")
		}
		schedulers = append(schedulers, addr)
	}
	err = ls.engine.Initialize(ctx, ls.cfg.Ledger.FeeRateBps, schedulers)
	switch {
	case err == nil:
		log.L().Info("Ledger initialized.",
			zap.Uint64("feeRateBps", ls.cfg.Ledger.FeeRateBps),
			zap.Int("schedulers", len(schedulers)))
		return nil
	case errors.Is(err, splitter.ErrAlreadyInitialized):
		return nil
	}
	return errors.Wrap(err, "failed to initialize ledger")
}

// Engine returns the ledger engine
func (ls *LedgerService) Engine() *splitter.Engine { return ls.engine }

// Bank returns the balance book
func (ls *LedgerService) Bank() *bank.Bank { return ls.bank }

// Pools returns the pool manager
func (ls *LedgerService) Pools() *pool.Manager { return ls.pools }

// Campaigns returns the campaign registry
func (ls *LedgerService) Campaigns() *campaign.Registry { return ls.campaigns }

// ACL returns the capability table
func (ls *LedgerService) ACL() *acl.Table { return ls.acl }

// Scheduler returns the scheduler, nil unless serving with the scheduler enabled
func (ls *LedgerService) Scheduler() *scheduler.Scheduler { return ls.scheduler }

// ProbeAddr returns the address of the probe server, empty unless serving
func (ls *LedgerService) ProbeAddr() string {
	if ls.probe == nil {
		return ""
	}
	return ls.probe.Addr()
}
