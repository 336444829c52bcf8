// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	_operationMtc = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "iotex_yieldsplit_operations_total",
		Help: "Ledger operations by result.",
	}, []string{"op", "result"})
	_amountMtc = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "iotex_yieldsplit_amount_total",
		Help: "Amounts moved by the ledger, by pool and portion.",
	}, []string{"pool", "portion"})
)

func init() {
	prometheus.MustRegister(_operationMtc)
	prometheus.MustRegister(_amountMtc)
}

func observeAmount(pool, portion string, amount *big.Int) {
	f, _ := new(big.Float).SetInt(amount).Float64()
	_amountMtc.WithLabelValues(pool, portion).Add(f)
}
