// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"context"

	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
)

type callerCtxKey struct{}

// CallerCtx carries the identity invoking an engine operation
type CallerCtx struct {
	// Caller is the address of the invoker, a user, a pool, a scheduler or an administrator
	Caller address.Address
}

// WithCallerCtx adds CallerCtx into context
func WithCallerCtx(ctx context.Context, cc CallerCtx) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, cc)
}

// GetCallerCtx gets the caller context
func GetCallerCtx(ctx context.Context) (CallerCtx, bool) {
	cc, ok := ctx.Value(callerCtxKey{}).(CallerCtx)
	return cc, ok
}

// callerOf returns the caller of a public entry point
func callerOf(ctx context.Context) (address.Address, error) {
	cc, ok := GetCallerCtx(ctx)
	if !ok {
		return nil, ErrMissingCaller
	}
	return cc.Caller, nil
}

// MustGetCallerCtx must get the caller context
func MustGetCallerCtx(ctx context.Context) CallerCtx {
	cc, ok := GetCallerCtx(ctx)
	if !ok {
		log.S().Panic("Miss caller context")
	}
	return cc
}
