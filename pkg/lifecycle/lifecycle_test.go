// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name    string
	calls   *[]string
	stopErr error
}

func (r *recorder) Start(context.Context) error {
	*r.calls = append(*r.calls, "start "+r.name)
	return nil
}

func (r *recorder) Stop(context.Context) error {
	*r.calls = append(*r.calls, "stop "+r.name)
	return r.stopErr
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	var calls []string

	var lc Lifecycle
	lc.Add(&recorder{name: "db", calls: &calls})
	lc.Add(struct{}{})
	lc.AddModels(&recorder{name: "scheduler", calls: &calls})
	assert.NoError(t, lc.OnStart(ctx))
	assert.NoError(t, lc.OnStop(ctx))
	assert.Equal(t, []string{"start db", "start scheduler", "stop scheduler", "stop db"}, calls)
}

func TestLifecycleWithError(t *testing.T) {
	ctx := context.Background()
	var calls []string
	err := errors.New("error")

	var lc Lifecycle
	lc.AddModels(&recorder{name: "db", calls: &calls}, &recorder{name: "sink", calls: &calls, stopErr: err})
	assert.NoError(t, lc.OnStart(ctx))
	assert.EqualError(t, lc.OnStop(ctx), err.Error())
	// remaining models are still stopped after a failure
	assert.Equal(t, "stop db", calls[len(calls)-1])
}
