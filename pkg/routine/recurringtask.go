// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routine

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"

	"github.com/iotexproject/iotex-yieldsplit/pkg/lifecycle"
)

var _ lifecycle.StartStopper = (*RecurringTask)(nil)

type (
	// Task is the function run on every tick
	Task func()

	// RecurringTaskOption is option to construct a recurring task
	RecurringTaskOption func(*RecurringTask)

	// RecurringTask represents a recurring task
	RecurringTask struct {
		t        Task
		interval time.Duration
		clock    clock.Clock
		ticker   *clock.Ticker
		done     chan struct{}
		wg       sync.WaitGroup
		stopOnce sync.Once
	}
)

// WithClock sets the clock driving the task, mostly to inject a mock clock in tests
func WithClock(ck clock.Clock) RecurringTaskOption {
	return func(t *RecurringTask) {
		t.clock = ck
	}
}

// NewRecurringTask creates an instance of RecurringTask
func NewRecurringTask(t Task, i time.Duration, opts ...RecurringTaskOption) *RecurringTask {
	rt := &RecurringTask{
		t:        t,
		interval: i,
		clock:    clock.New(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Start starts the timer
func (t *RecurringTask) Start(_ context.Context) error {
	t.ticker = t.clock.Ticker(t.interval)
	ready := make(chan struct{})
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		close(ready)
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				t.t()
			}
		}
	}()

	<-ready
	return nil
}

// Stop stops the timer and waits for the running tick, if any, to return
func (t *RecurringTask) Stop(_ context.Context) error {
	t.stopOnce.Do(func() {
		if t.ticker != nil {
			t.ticker.Stop()
		}
		close(t.done)
	})
	t.wg.Wait()
	return nil
}
