// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"
	"time"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	uconfig "go.uber.org/config"

	"github.com/iotexproject/iotex-yieldsplit/acl"
	"github.com/iotexproject/iotex-yieldsplit/campaign"
	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/events"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

// IMPORTANT: to define a config, add a field or a new config type to the existing config types. In addition, provide
// the default value in Default var.

// event sink backends
const (
	EventsNone  = "none"
	EventsLog   = "log"
	EventsRedis = "redis"
)

var (
	// Default is the default config
	Default = Config{
		SubLogs: make(map[string]log.GlobalConfig),
		DB:      db.DefaultConfig,
		Ledger: Ledger{
			FeeRateBps: 1000,
			Grants:     make(map[string][]string),
			Schedulers: []string{},
		},
		Campaigns: []Campaign{},
		Scheduler: Scheduler{
			Enabled:  false,
			Interval: time.Hour,
			Pools:    []string{},
		},
		Events: Events{
			Backend: EventsLog,
			Redis:   events.DefaultRedisConfig,
		},
		Metrics: Metrics{
			Addr: "127.0.0.1:9090",
		},
	}

	// ErrInvalidCfg indicates the invalid config value
	ErrInvalidCfg = errors.New("invalid config value")

	// Validates is the collection config validation functions
	Validates = []Validate{
		ValidateDB,
		ValidateLedger,
		ValidateCampaigns,
		ValidateScheduler,
		ValidateEvents,
	}
)

type (
	// Config is the config of the yield ledger
	Config struct {
		Log       log.GlobalConfig            `yaml:"log"`
		SubLogs   map[string]log.GlobalConfig `yaml:"subLogs"`
		DB        db.Config                   `yaml:"db"`
		Ledger    Ledger                      `yaml:"ledger"`
		Campaigns []Campaign                  `yaml:"campaigns"`
		Scheduler Scheduler                   `yaml:"scheduler"`
		Events    Events                      `yaml:"events"`
		Metrics   Metrics                     `yaml:"metrics"`
	}

	// Ledger is the config of the ledger engine
	Ledger struct {
		// Treasury receives the protocol fees
		Treasury string `yaml:"treasury"`
		// Custody holds harvested yield until it is paid out
		Custody    string `yaml:"custody"`
		FeeRateBps uint64 `yaml:"feeRateBps"`
		// Grants maps an address to the capabilities it holds
		Grants map[string][]string `yaml:"grants"`
		// Schedulers is the initial scheduler allow-list
		Schedulers []string `yaml:"schedulers"`
	}

	// Campaign seeds the campaign registry
	Campaign struct {
		ID     uint64 `yaml:"id"`
		Status string `yaml:"status"`
		Payout string `yaml:"payout"`
	}

	// Scheduler is the config of the recurring harvest
	Scheduler struct {
		Enabled  bool          `yaml:"enabled"`
		Address  string        `yaml:"address"`
		Interval time.Duration `yaml:"interval"`
		Pools    []string      `yaml:"pools"`
	}

	// Events is the config of the record export
	Events struct {
		Backend string             `yaml:"backend"`
		Redis   events.RedisConfig `yaml:"redis"`
	}

	// Metrics is the config of the prometheus endpoint
	Metrics struct {
		Addr string `yaml:"addr"`
	}

	// Validate is the interface of validating the config
	Validate func(Config) error
)

// New creates a config instance. It first loads the default configs. If the config path is not empty, it will read from
// the file and override the default configs. By default, it will apply all validation functions. To bypass validation,
// use DoNotValidate instead.
func New(configPaths []string, validates ...Validate) (Config, error) {
	opts := make([]uconfig.YAMLOption, 0)
	opts = append(opts, uconfig.Static(Default))
	opts = append(opts, uconfig.Expand(os.LookupEnv))
	for _, path := range configPaths {
		if path != "" {
			opts = append(opts, uconfig.File(path))
		}
	}
	yaml, err := uconfig.NewYAML(opts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to init config")
	}

	var cfg Config
	if err := yaml.Get(uconfig.Root).Populate(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal YAML config to struct")
	}

	// By default, the config needs to pass all the validation
	if len(validates) == 0 {
		validates = Validates
	}
	for _, validate := range validates {
		if err := validate(cfg); err != nil {
			return Config{}, errors.Wrap(err, "failed to validate config")
		}
	}
	return cfg, nil
}

// DoNotValidate validates nothing
func DoNotValidate(Config) error { return nil }

// ValidateDB validates the db configs
func ValidateDB(cfg Config) error {
	switch cfg.DB.DBType {
	case db.DBMemory:
		return nil
	case db.DBBolt, db.DBPebble:
		if cfg.DB.DbPath == "" {
			return errors.Wrap(ErrInvalidCfg, "db path is required")
		}
		return nil
	}
	return errors.Wrapf(ErrInvalidCfg, "unknown db type %s", cfg.DB.DBType)
}

// ValidateLedger validates the ledger configs
func ValidateLedger(cfg Config) error {
	treasury, err := parseAddress("treasury", cfg.Ledger.Treasury)
	if err != nil {
		return err
	}
	custody, err := parseAddress("custody", cfg.Ledger.Custody)
	if err != nil {
		return err
	}
	if treasury.String() == custody.String() {
		return errors.Wrap(ErrInvalidCfg, "treasury and custody must differ")
	}
	if cfg.Ledger.FeeRateBps > splitter.MaxFeeRateBps {
		return errors.Wrapf(ErrInvalidCfg, "fee rate %d above %d", cfg.Ledger.FeeRateBps, splitter.MaxFeeRateBps)
	}
	if _, err := acl.FromConfig(cfg.Ledger.Grants); err != nil {
		return errors.Wrap(ErrInvalidCfg, err.Error())
	}
	for _, s := range cfg.Ledger.Schedulers {
		if _, err := parseAddress("scheduler", s); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCampaigns validates the campaign seeds
func ValidateCampaigns(cfg Config) error {
	seen := make(map[uint64]struct{}, len(cfg.Campaigns))
	for _, c := range cfg.Campaigns {
		if _, ok := seen[c.ID]; ok {
			return errors.Wrapf(ErrInvalidCfg, "duplicate campaign %d", c.ID)
		}
		seen[c.ID] = struct{}{}
		if _, err := campaign.New(c.ID, c.Status, c.Payout); err != nil {
			return errors.Wrap(ErrInvalidCfg, err.Error())
		}
	}
	return nil
}

// ValidateScheduler validates the scheduler configs
func ValidateScheduler(cfg Config) error {
	if !cfg.Scheduler.Enabled {
		return nil
	}
	if _, err := parseAddress("scheduler", cfg.Scheduler.Address); err != nil {
		return err
	}
	if cfg.Scheduler.Interval <= 0 {
		return errors.Wrapf(ErrInvalidCfg, "invalid scheduler interval %s", cfg.Scheduler.Interval)
	}
	for _, p := range cfg.Scheduler.Pools {
		if _, err := parseAddress("pool", p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEvents validates the event sink configs
func ValidateEvents(cfg Config) error {
	switch cfg.Events.Backend {
	case EventsNone, EventsLog:
		return nil
	case EventsRedis:
		if cfg.Events.Redis.Addr == "" || cfg.Events.Redis.Stream == "" {
			return errors.Wrap(ErrInvalidCfg, "redis address and stream are required")
		}
		return nil
	}
	return errors.Wrapf(ErrInvalidCfg, "unknown events backend %s", cfg.Events.Backend)
}

// TreasuryAddress returns the treasury address
func (cfg Config) TreasuryAddress() (address.Address, error) {
	return parseAddress("treasury", cfg.Ledger.Treasury)
}

// CustodyAddress returns the custody address
func (cfg Config) CustodyAddress() (address.Address, error) {
	return parseAddress("custody", cfg.Ledger.Custody)
}

// Addresses parses a list of addresses
func Addresses(ss []string) ([]address.Address, error) {
	addrs := make([]address.Address, 0, len(ss))
	for _, s := range ss {
		addr, err := parseAddress("address", s)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func parseAddress(name, s string) (address.Address, error) {
	if s == "" {
		return nil, errors.Wrapf(ErrInvalidCfg, "%s address is required", name)
	}
	addr, err := address.FromString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCfg, "invalid %s address %s: %v", name, s, err)
	}
	return addr, nil
}
