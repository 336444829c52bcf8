// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"bytes"
	"context"
	"math/big"
	"strconv"
	"time"

	"github.com/iotexproject/iotex-address/address"
)

// Tier is the percentage of a depositor's pro-rata yield routed to the campaign
type Tier uint8

// allocation tiers
const (
	Tier50  Tier = 50
	Tier75  Tier = 75
	Tier100 Tier = 100
)

// partialTiers are the tiers that keep a personal fraction and therefore own an accumulator
var partialTiers = []Tier{Tier50, Tier75}

// Valid returns whether the tier is one of the fixed allocation tiers
func (t Tier) Valid() bool {
	switch t {
	case Tier50, Tier75, Tier100:
		return true
	}
	return false
}

// PersonalFraction is the percentage of the pro-rata yield the depositor keeps
func (t Tier) PersonalFraction() int64 {
	return 100 - int64(t)
}

func (t Tier) String() string {
	return strconv.Itoa(int(t)) + "%"
}

const (
	// MaxFeeRateBps is the highest protocol fee rate, in basis points
	MaxFeeRateBps = 2000
	// PrecisionDecimals is the number of decimals of the accumulator scale
	PrecisionDecimals = 18

	_bpsDenominator = 10000
	_percent        = 100
)

var _precision = new(big.Int).Exp(big.NewInt(10), big.NewInt(PrecisionDecimals), nil)

// CampaignStatus is the lifecycle status of a campaign, as reported by the campaign registry
type CampaignStatus uint8

// campaign status
const (
	CampaignPending CampaignStatus = iota
	CampaignActive
	CampaignPaused
	CampaignClosed
)

func (s CampaignStatus) String() string {
	switch s {
	case CampaignPending:
		return "pending"
	case CampaignActive:
		return "active"
	case CampaignPaused:
		return "paused"
	case CampaignClosed:
		return "closed"
	}
	return "unknown"
}

// Capability is an administrative right checked by the Authorizer
type Capability string

// capabilities
const (
	CapabilityFeeManager       Capability = "fee-manager"
	CapabilityPoolRegistrar    Capability = "pool-registrar"
	CapabilitySchedulerManager Capability = "scheduler-manager"
)

type (
	// Campaign is the beneficiary of the campaign portion of a pool's yield
	Campaign struct {
		ID     uint64
		Status CampaignStatus
		Payout address.Address
	}

	// ShareReader reports the authoritative share balance of a user in a pool
	ShareReader interface {
		ShareBalance(ctx context.Context, pool, user address.Address) (*big.Int, error)
	}

	// CampaignRegistry looks up campaigns
	CampaignRegistry interface {
		Campaign(ctx context.Context, id uint64) (*Campaign, error)
	}

	// Vault moves the asset out of the engine's custody
	Vault interface {
		Transfer(ctx context.Context, asset, to address.Address, amount *big.Int) error
	}

	// Reverter is implemented by vaults able to undo the transfers made since a snapshot
	Reverter interface {
		Snapshot() int
		Revert(int) error
	}

	// Authorizer checks administrative capabilities
	Authorizer interface {
		IsAuthorized(caller address.Address, c Capability) bool
	}

	// EventSink receives the records of committed operations
	EventSink interface {
		Emit(ctx context.Context, r Record) error
	}
)

// RecordType tells a distribution record from a claim record
type RecordType string

// record types
const (
	DistributionRecordType RecordType = "distribution"
	ClaimRecordType        RecordType = "claim"
)

type (
	// Record is a committed operation exported to event sinks
	Record interface {
		Type() RecordType
	}

	// DistributionRecord is emitted for every processed distribution
	DistributionRecord struct {
		Pool              address.Address
		Asset             address.Address
		CampaignID        uint64
		Gross             *big.Int
		Fee               *big.Int
		Net               *big.Int
		CampaignPortion   *big.Int
		PersonalAccounted *big.Int
		Timestamp         time.Time
	}

	// ClaimRecord is emitted for every successful claim
	ClaimRecord struct {
		Pool        address.Address
		Asset       address.Address
		User        address.Address
		Beneficiary address.Address
		Amount      *big.Int
		Timestamp   time.Time
	}
)

// Type returns DistributionRecordType
func (*DistributionRecord) Type() RecordType { return DistributionRecordType }

// Type returns ClaimRecordType
func (*ClaimRecord) Type() RecordType { return ClaimRecordType }

type (
	// Preference is a user's allocation choice in a pool
	Preference struct {
		Tier        Tier
		Beneficiary address.Address
	}

	// Account is a user's accounting in a pool
	Account struct {
		Shares *big.Int
		// RewardDebt is the settled entitlement scaled by 10^PrecisionDecimals
		RewardDebt *big.Int
		Pending    *big.Int
		Tier       Tier
	}

	// PoolSnapshot is the aggregate state of a pool, for dashboards and indexers
	PoolSnapshot struct {
		Pool          address.Address
		Asset         address.Address
		CampaignID    uint64
		TotalShares   *big.Int
		BucketShares  map[Tier]*big.Int
		AccPerShare   map[Tier]*big.Int
		TotalFees     *big.Int
		TotalCampaign *big.Int
		TotalPersonal *big.Int
		TotalClaimed  *big.Int
		Distributions uint64
	}
)

func isZeroAddress(addr address.Address) bool {
	if addr == nil {
		return true
	}
	b := addr.Bytes()
	return len(b) == 0 || bytes.Equal(b, make([]byte, len(b)))
}

func sameAddress(a, b address.Address) bool {
	if a == nil || b == nil {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
