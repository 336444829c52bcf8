// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package lifecycle provides application models' lifecycle management.
package lifecycle

import (
	"context"
)

type (
	// Starter is a model that can be started
	Starter interface {
		Start(context.Context) error
	}

	// Stopper is a model that can be stopped
	Stopper interface {
		Stop(context.Context) error
	}

	// StartStopper is a model that can be started and stopped
	StartStopper interface {
		Starter
		Stopper
	}

	// Model is the application model
	Model interface{}

	// Lifecycle manages the lifecycle of the added models
	Lifecycle struct {
		models []Model
	}
)

// Add adds a model into the lifecycle
func (lc *Lifecycle) Add(m Model) { lc.models = append(lc.models, m) }

// AddModels adds multiple models into the lifecycle
func (lc *Lifecycle) AddModels(m ...Model) { lc.models = append(lc.models, m...) }

// OnStart starts all models in the order they were added. It stops at the first failure.
func (lc *Lifecycle) OnStart(ctx context.Context) error {
	for _, m := range lc.models {
		if starter, ok := m.(Starter); ok {
			if err := starter.Start(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnStop stops all models in reverse order, returning the last error met
func (lc *Lifecycle) OnStop(ctx context.Context) error {
	var err error
	for i := len(lc.models) - 1; i >= 0; i-- {
		if stopper, ok := lc.models[i].(Stopper); ok {
			if e := stopper.Stop(ctx); e != nil {
				err = e
			}
		}
	}
	return err
}
