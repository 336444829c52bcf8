// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package bank

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var (
	_ splitter.Vault    = (*Custodian)(nil)
	_ splitter.Reverter = (*Custodian)(nil)
)

// Custodian pays out of the balance held by a custody address
type Custodian struct {
	bank    *Bank
	custody address.Address
}

// NewCustodian creates a custodian of the custody address
func NewCustodian(b *Bank, custody address.Address) *Custodian {
	return &Custodian{bank: b, custody: custody}
}

// Address returns the custody address
func (c *Custodian) Address() address.Address {
	return c.custody
}

// Transfer pays amount of asset from custody
func (c *Custodian) Transfer(ctx context.Context, asset, to address.Address, amount *big.Int) error {
	return c.bank.Transfer(ctx, asset, c.custody, to, amount)
}

// Snapshot implements splitter.Reverter
func (c *Custodian) Snapshot() int {
	return c.bank.Snapshot()
}

// Revert implements splitter.Reverter
func (c *Custodian) Revert(id int) error {
	return c.bank.Revert(id)
}
