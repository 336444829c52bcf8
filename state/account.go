// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"math/big"

	"github.com/pkg/errors"
)

// Account is the balance of one holder in one asset
type Account struct {
	Balance *big.Int
}

// NewAccount returns an account with zero balance
func NewAccount() *Account {
	return &Account{Balance: big.NewInt(0)}
}

// Serialize serializes account state into bytes
func (st *Account) Serialize() ([]byte, error) {
	return GobSerialize(st)
}

// Deserialize deserializes bytes into account state
func (st *Account) Deserialize(ss []byte) error {
	if err := GobDeserialize(ss, st); err != nil {
		return err
	}
	if st.Balance == nil {
		st.Balance = big.NewInt(0)
	}
	return nil
}

// AddBalance adds balance for account state
func (st *Account) AddBalance(amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.Errorf("invalid amount %s", amount)
	}
	st.Balance.Add(st.Balance, amount)
	return nil
}

// SubBalance subtracts balance for account state
func (st *Account) SubBalance(amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.Errorf("invalid amount %s", amount)
	}
	// make sure there's enough fund to spend
	if amount.Cmp(st.Balance) == 1 {
		return ErrNotEnoughBalance
	}
	st.Balance.Sub(st.Balance, amount)
	return nil
}
