// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-yieldsplit/state"
)

const (
	_ledgerNS = "yieldsplit"
)

var (
	_adminKey            = []byte("admin")
	_poolKeyPrefix       = []byte("pool")
	_accountKeyPrefix    = []byte("account")
	_preferenceKeyPrefix = []byte("preference")
)

type (
	// admin stores the engine-wide settings
	admin struct {
		FeeRateBps uint64
		Schedulers []string
	}

	// pool stores the registration and the accumulators of a pool
	pool struct {
		Asset         string
		CampaignID    uint64
		Registered    bool
		TotalShares   *big.Int
		Shares50      *big.Int
		Shares75      *big.Int
		Acc50         *big.Int
		Acc75         *big.Int
		TotalFees     *big.Int
		TotalCampaign *big.Int
		TotalPersonal *big.Int
		TotalClaimed  *big.Int
		Distributions uint64
	}

	// account stores the accounting of a user in a pool
	account struct {
		Shares *big.Int
		// RewardDebt is the settled entitlement scaled by 10^PrecisionDecimals
		RewardDebt *big.Int
		Pending    *big.Int
		Tier       Tier
	}

	// preference stores a user's allocation choice in a pool
	preference struct {
		Tier        Tier
		Beneficiary string
	}
)

func newPool(asset address.Address, campaignID uint64) *pool {
	p := &pool{
		Asset:      asset.String(),
		CampaignID: campaignID,
		Registered: true,
	}
	p.normalize()
	return p
}

// Serialize serializes pool state into bytes
func (p *pool) Serialize() ([]byte, error) {
	return state.GobSerialize(p)
}

// Deserialize deserializes bytes into pool state
func (p *pool) Deserialize(data []byte) error {
	if err := state.GobDeserialize(data, p); err != nil {
		return err
	}
	p.normalize()
	return nil
}

// normalize replaces the nil amounts gob leaves behind for zero values
func (p *pool) normalize() {
	for _, v := range []**big.Int{
		&p.TotalShares, &p.Shares50, &p.Shares75, &p.Acc50, &p.Acc75,
		&p.TotalFees, &p.TotalCampaign, &p.TotalPersonal, &p.TotalClaimed,
	} {
		if *v == nil {
			*v = big.NewInt(0)
		}
	}
}

func (p *pool) asset() (address.Address, error) {
	addr, err := address.FromString(p.Asset)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pool asset %s", p.Asset)
	}
	return addr, nil
}

// bucket returns the share total of a partial tier, nil for the 100% tier
func (p *pool) bucket(t Tier) *big.Int {
	switch t {
	case Tier50:
		return p.Shares50
	case Tier75:
		return p.Shares75
	}
	return nil
}

// accPerShare returns the accumulator of a tier, the 100% tier never accrues
func (p *pool) accPerShare(t Tier) *big.Int {
	switch t {
	case Tier50:
		return p.Acc50
	case Tier75:
		return p.Acc75
	}
	return big.NewInt(0)
}

func (p *pool) addShares(t Tier, amount *big.Int) {
	p.TotalShares.Add(p.TotalShares, amount)
	if b := p.bucket(t); b != nil {
		b.Add(b, amount)
	}
}

func (p *pool) subShares(t Tier, amount *big.Int) error {
	if p.TotalShares.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInvalidState, "total shares %s below %s", p.TotalShares, amount)
	}
	if b := p.bucket(t); b != nil {
		if b.Cmp(amount) < 0 {
			return errors.Wrapf(ErrInvalidState, "tier %s shares %s below %s", t, b, amount)
		}
		b.Sub(b, amount)
	}
	p.TotalShares.Sub(p.TotalShares, amount)
	return nil
}

func newAccount() *account {
	a := &account{Tier: Tier100}
	a.normalize()
	return a
}

// Serialize serializes account state into bytes
func (a *account) Serialize() ([]byte, error) {
	return state.GobSerialize(a)
}

// Deserialize deserializes bytes into account state
func (a *account) Deserialize(data []byte) error {
	if err := state.GobDeserialize(data, a); err != nil {
		return err
	}
	a.normalize()
	return nil
}

func (a *account) normalize() {
	for _, v := range []**big.Int{&a.Shares, &a.RewardDebt, &a.Pending} {
		if *v == nil {
			*v = big.NewInt(0)
		}
	}
	if !a.Tier.Valid() {
		a.Tier = Tier100
	}
}

// Serialize serializes admin state into bytes
func (a *admin) Serialize() ([]byte, error) {
	return state.GobSerialize(a)
}

// Deserialize deserializes bytes into admin state
func (a *admin) Deserialize(data []byte) error {
	return state.GobDeserialize(data, a)
}

func (a *admin) hasScheduler(addr address.Address) bool {
	s := addr.String()
	for _, sch := range a.Schedulers {
		if sch == s {
			return true
		}
	}
	return false
}

// Serialize serializes preference state into bytes
func (p *preference) Serialize() ([]byte, error) {
	return state.GobSerialize(p)
}

// Deserialize deserializes bytes into preference state
func (p *preference) Deserialize(data []byte) error {
	return state.GobDeserialize(data, p)
}

func poolKey(addr address.Address) []byte {
	return state.Key(_poolKeyPrefix, addr.Bytes())
}

func accountKey(user, p address.Address) []byte {
	return state.Key(_accountKeyPrefix, p.Bytes(), user.Bytes())
}

func preferenceKey(user, p address.Address) []byte {
	return state.Key(_preferenceKeyPrefix, p.Bytes(), user.Bytes())
}

func loadAdmin(sr state.StateReader) (*admin, error) {
	a := admin{}
	err := sr.State(_ledgerNS, _adminKey, &a)
	switch errors.Cause(err) {
	case nil:
		return &a, nil
	case state.ErrStateNotExist:
		return &admin{}, nil
	default:
		return nil, err
	}
}

// loadPool returns ErrPoolNotRegistered for an unknown pool
func loadPool(sr state.StateReader, addr address.Address) (*pool, error) {
	p := pool{}
	err := sr.State(_ledgerNS, poolKey(addr), &p)
	switch errors.Cause(err) {
	case nil:
	case state.ErrStateNotExist:
		return nil, errors.Wrapf(ErrPoolNotRegistered, "pool %s", addr.String())
	default:
		return nil, err
	}
	if !p.Registered {
		return nil, errors.Wrapf(ErrPoolNotRegistered, "pool %s", addr.String())
	}
	return &p, nil
}

// loadAccount creates a zero account on first use
func loadAccount(sr state.StateReader, user, p address.Address) (*account, error) {
	a := account{}
	err := sr.State(_ledgerNS, accountKey(user, p), &a)
	switch errors.Cause(err) {
	case nil:
		return &a, nil
	case state.ErrStateNotExist:
		return newAccount(), nil
	default:
		return nil, err
	}
}

// loadPreference returns nil if the user never chose an allocation in the pool
func loadPreference(sr state.StateReader, user, p address.Address) (*preference, error) {
	pref := preference{}
	err := sr.State(_ledgerNS, preferenceKey(user, p), &pref)
	switch errors.Cause(err) {
	case nil:
		return &pref, nil
	case state.ErrStateNotExist:
		return nil, nil
	default:
		return nil, err
	}
}
