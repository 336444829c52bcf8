// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package identityset

import (
	"strconv"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
)

var _labels = []string{
	"alfa",
	"bravo",
	"charlie",
	"delta",
	"echo",
	"foxtrot",
	"golf",
	"hotel",
	"india",
	"juliett",
	"kilo",
	"lima",
	"mike",
	"november",
	"oscar",
	"papa",
	"quebec",
	"romeo",
	"sierra",
	"tango",
}

// Size returns the number of identities
func Size() int {
	return len(_labels)
}

// Address returns the i-th identity's address
func Address(i int) address.Address {
	if i < 0 || i >= len(_labels) {
		log.L().Panic("Identity index out of range", zap.Int("index", i), zap.Int("size", len(_labels)))
	}
	return Named(_labels[i])
}

// Named returns a deterministic address derived from the label
func Named(label string) address.Address {
	h := hash.Hash160b([]byte("identityset/" + label))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		log.L().Panic("Error when constructing the address", zap.String("label", label), zap.Error(err))
	}
	return addr
}

// Addresses returns the first n identities' addresses
func Addresses(n int) []address.Address {
	addrs := make([]address.Address, n)
	for i := range addrs {
		addrs[i] = Address(i)
	}
	return addrs
}

// Label returns the label of the i-th identity, or its index if out of range
func Label(i int) string {
	if i < 0 || i >= len(_labels) {
		return strconv.Itoa(i)
	}
	return _labels[i]
}
