// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveAmount(t *testing.T) {
	r := require.New(t)
	c := _amountMtc.WithLabelValues("metrics-test", "fee")
	before := counterValue(t, c)
	observeAmount("metrics-test", "fee", big.NewInt(25))
	observeAmount("metrics-test", "fee", big.NewInt(0))
	r.Equal(before+25, counterValue(t, c))
}

func TestResultLabel(t *testing.T) {
	r := require.New(t)
	for _, c := range []struct {
		err   error
		label string
	}{
		{nil, "ok"},
		{ErrInvalidTier, "validation"},
		{errors.Wrap(ErrMissingCapability, "alfa"), "unauthorized"},
		{ErrSharesMismatch, "state"},
		{ErrNothingToClaim, "empty"},
		{ErrReentrant, "reentrant"},
		{errors.New("disk full"), "error"},
	} {
		r.Equal(c.label, resultLabel(c.err))
	}
}
