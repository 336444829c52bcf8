// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	// Default config doesn't have a treasury
	_, err := New(nil)
	require.Error(t, err)
	require.Equal(t, ErrInvalidCfg, errors.Cause(err))
}

func TestNewConfigWithoutValidation(t *testing.T) {
	cfg, err := New(nil, DoNotValidate)
	require.NoError(t, err)
	require.Equal(t, Default.DB, cfg.DB)
	require.Equal(t, Default.Ledger.FeeRateBps, cfg.Ledger.FeeRateBps)
	require.Equal(t, Default.Scheduler.Interval, cfg.Scheduler.Interval)
}

func TestNewConfigWithWrongConfigPath(t *testing.T) {
	_, err := New([]string{"wrong_path"}, DoNotValidate)
	require.Error(t, err)
}

func TestNewConfigWithOverride(t *testing.T) {
	r := require.New(t)
	r.NoError(os.Setenv("YIELDSPLIT_TREASURY", identityset.Address(2).String()))
	defer os.Unsetenv("YIELDSPLIT_TREASURY")

	path := writeConfig(t, fmt.Sprintf(`
db:
  dbType: memory
ledger:
  treasury: ${YIELDSPLIT_TREASURY}
  custody: %s
  feeRateBps: 500
  grants:
    %s: [fee-manager, pool-registrar]
  schedulers: [%s]
campaigns:
  - id: 1
    status: active
    payout: %s
scheduler:
  enabled: true
  address: %s
  interval: 30s
  pools: [%s]
events:
  backend: redis
  redis:
    stream: records
`,
		identityset.Address(8).String(),
		identityset.Address(4).String(),
		identityset.Address(9).String(),
		identityset.Address(3).String(),
		identityset.Address(9).String(),
		identityset.Address(0).String(),
	))
	cfg, err := New([]string{path})
	r.NoError(err)
	r.Equal(db.DBMemory, cfg.DB.DBType)
	r.Equal(identityset.Address(2).String(), cfg.Ledger.Treasury)
	r.Equal(uint64(500), cfg.Ledger.FeeRateBps)
	r.Len(cfg.Ledger.Grants[identityset.Address(4).String()], 2)
	r.Len(cfg.Campaigns, 1)
	r.Equal(30*time.Second, cfg.Scheduler.Interval)
	r.Equal("records", cfg.Events.Redis.Stream)
	// unset fields keep their defaults
	r.Equal(Default.Events.Redis.Addr, cfg.Events.Redis.Addr)

	treasury, err := cfg.TreasuryAddress()
	r.NoError(err)
	r.Equal(identityset.Address(2).String(), treasury.String())
	pools, err := Addresses(cfg.Scheduler.Pools)
	r.NoError(err)
	r.Len(pools, 1)
}

func validConfig() Config {
	cfg := Default
	cfg.Ledger.Treasury = identityset.Address(2).String()
	cfg.Ledger.Custody = identityset.Address(8).String()
	return cfg
}

func TestValidateLedger(t *testing.T) {
	r := require.New(t)
	r.NoError(ValidateLedger(validConfig()))

	cfg := validConfig()
	cfg.Ledger.Custody = cfg.Ledger.Treasury
	r.ErrorIs(ValidateLedger(cfg), ErrInvalidCfg)

	cfg = validConfig()
	cfg.Ledger.FeeRateBps = 2001
	r.ErrorIs(ValidateLedger(cfg), ErrInvalidCfg)

	cfg = validConfig()
	cfg.Ledger.Grants = map[string][]string{identityset.Address(4).String(): {"root"}}
	r.ErrorIs(ValidateLedger(cfg), ErrInvalidCfg)

	cfg = validConfig()
	cfg.Ledger.Schedulers = []string{"io1bad"}
	r.ErrorIs(ValidateLedger(cfg), ErrInvalidCfg)
}

func TestValidateCampaigns(t *testing.T) {
	r := require.New(t)
	cfg := validConfig()
	payout := identityset.Address(3).String()
	cfg.Campaigns = []Campaign{{ID: 1, Status: "active", Payout: payout}, {ID: 2, Status: "paused", Payout: payout}}
	r.NoError(ValidateCampaigns(cfg))
	cfg.Campaigns = append(cfg.Campaigns, Campaign{ID: 1, Status: "active", Payout: payout})
	r.ErrorIs(ValidateCampaigns(cfg), ErrInvalidCfg)
	cfg.Campaigns = []Campaign{{ID: 1, Status: "running", Payout: payout}}
	r.ErrorIs(ValidateCampaigns(cfg), ErrInvalidCfg)
}

func TestValidateOthers(t *testing.T) {
	r := require.New(t)
	cfg := validConfig()
	r.NoError(ValidateDB(cfg))
	cfg.DB.DBType = "leveldb"
	r.ErrorIs(ValidateDB(cfg), ErrInvalidCfg)
	cfg.DB = db.Config{DBType: db.DBPebble}
	r.ErrorIs(ValidateDB(cfg), ErrInvalidCfg)

	cfg = validConfig()
	r.NoError(ValidateScheduler(cfg))
	cfg.Scheduler.Enabled = true
	r.ErrorIs(ValidateScheduler(cfg), ErrInvalidCfg)
	cfg.Scheduler.Address = identityset.Address(9).String()
	r.NoError(ValidateScheduler(cfg))
	cfg.Scheduler.Interval = 0
	r.ErrorIs(ValidateScheduler(cfg), ErrInvalidCfg)

	cfg = validConfig()
	r.NoError(ValidateEvents(cfg))
	cfg.Events.Backend = "kafka"
	r.ErrorIs(ValidateEvents(cfg), ErrInvalidCfg)
	cfg.Events.Backend = EventsRedis
	cfg.Events.Redis.Stream = ""
	r.ErrorIs(ValidateEvents(cfg), ErrInvalidCfg)
}
