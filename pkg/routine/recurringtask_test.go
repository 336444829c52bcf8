// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/pkg/routine"
)

type MockHandler struct {
	Count uint
	mu    sync.RWMutex
}

func (h *MockHandler) Do() {
	h.mu.Lock()
	h.Count++
	h.mu.Unlock()
}

func (h *MockHandler) count() uint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.Count
}

func TestRecurringTask(t *testing.T) {
	h := &MockHandler{Count: 0}
	ctx := context.Background()
	ck := clock.NewMock()
	task := routine.NewRecurringTask(h.Do, 100*time.Millisecond, routine.WithClock(ck))
	require.NoError(t, task.Start(ctx))
	require.Eventually(t, func() bool {
		ck.Add(100 * time.Millisecond)
		return h.count() >= 5
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, task.Stop(ctx))
	// stopping twice is harmless
	require.NoError(t, task.Stop(ctx))

	stopped := h.count()
	ck.Add(time.Second)
	assert.Equal(t, stopped, h.count())
}
