// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package scheduler

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/pkg/routine"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

type harvester struct {
	mu      sync.Mutex
	callers []string
	results map[string]error
}

func (h *harvester) Harvest(ctx context.Context, pool address.Address) (*splitter.DistributionRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callers = append(h.callers, splitter.MustGetCallerCtx(ctx).Caller.String())
	if err := h.results[pool.String()]; err != nil {
		return nil, err
	}
	return &splitter.DistributionRecord{Pool: pool, Gross: big.NewInt(1)}, nil
}

func (h *harvester) calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.callers)
}

func TestRunOnce(t *testing.T) {
	r := require.New(t)
	id := identityset.Address(9)
	pools := identityset.Addresses(3)
	h := &harvester{results: map[string]error{
		pools[1].String(): splitter.ErrNothingToDistribute,
		pools[2].String(): errors.New("campaign registry down"),
	}}
	s, err := New(id, h, pools, time.Minute)
	r.NoError(err)

	r.Equal(1, s.RunOnce(context.Background()))
	r.Equal([]string{id.String(), id.String(), id.String()}, h.callers)

	_, err = New(nil, h, pools, time.Minute)
	r.Error(err)
	_, err = New(id, h, pools, 0)
	r.Error(err)
}

func TestRecurringHarvest(t *testing.T) {
	r := require.New(t)
	ck := clock.NewMock()
	h := &harvester{}
	s, err := New(identityset.Address(9), h, identityset.Addresses(2), time.Minute, routine.WithClock(ck))
	r.NoError(err)
	ctx := context.Background()
	r.NoError(s.Start(ctx))
	r.Eventually(func() bool {
		ck.Add(time.Minute)
		return h.calls() >= 4
	}, 5*time.Second, 10*time.Millisecond)
	r.NoError(s.Stop(ctx))
	r.NoError(s.Stop(ctx))
}
