// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import "github.com/pkg/errors"

// error categories, every error returned by the engine wraps exactly one of them
var (
	// ErrValidation is returned when the input is malformed
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when the caller lacks the right to run an operation
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidState is returned when the ledger or a collaborator is in a state the caller should have ruled out
	ErrInvalidState = errors.New("invalid state")
	// ErrEmptyOperation is returned when an operation would move nothing
	ErrEmptyOperation = errors.New("empty operation")
)

var (
	// ErrInvalidTier is returned for an allocation tier outside {50, 75, 100}
	ErrInvalidTier = errors.Wrap(ErrValidation, "invalid allocation tier")
	// ErrMissingBeneficiary is returned when a partial tier is chosen without a beneficiary
	ErrMissingBeneficiary = errors.Wrap(ErrValidation, "beneficiary is required below the 100% tier")
	// ErrZeroAddress is returned when a required address is missing or zero
	ErrZeroAddress = errors.Wrap(ErrValidation, "zero address")
	// ErrFeeTooHigh is returned when the fee rate exceeds MaxFeeRateBps
	ErrFeeTooHigh = errors.Wrap(ErrValidation, "fee rate above maximum")
	// ErrInvalidAmount is returned for nil or negative amounts
	ErrInvalidAmount = errors.Wrap(ErrValidation, "invalid amount")
	// ErrAssetMismatch is returned when the distributed asset is not the pool's asset
	ErrAssetMismatch = errors.Wrap(ErrValidation, "asset does not match pool")

	// ErrNotPool is returned when the caller is not the registered pool
	ErrNotPool = errors.Wrap(ErrUnauthorized, "caller is not the pool")
	// ErrNotDistributor is returned when the caller is neither the pool nor an allow-listed scheduler
	ErrNotDistributor = errors.Wrap(ErrUnauthorized, "caller is neither the pool nor a scheduler")
	// ErrMissingCaller is returned when the context carries no caller
	ErrMissingCaller = errors.Wrap(ErrUnauthorized, "missing caller")
	// ErrMissingCapability is returned when the caller lacks an administrative capability
	ErrMissingCapability = errors.Wrap(ErrUnauthorized, "missing capability")

	// ErrPoolNotRegistered is returned for operations on an unknown pool
	ErrPoolNotRegistered = errors.Wrap(ErrInvalidState, "pool not registered")
	// ErrPoolAlreadyRegistered is returned when a pool binding would be overwritten
	ErrPoolAlreadyRegistered = errors.Wrap(ErrInvalidState, "pool already registered")
	// ErrCampaignNotActive is returned when distributing to a campaign that is not active
	ErrCampaignNotActive = errors.Wrap(ErrInvalidState, "campaign not active")
	// ErrSharesMismatch is returned when the reported share balance disagrees with the pool
	ErrSharesMismatch = errors.Wrap(ErrInvalidState, "shares mismatch")
	// ErrAlreadyInitialized is returned when the engine is initialized twice
	ErrAlreadyInitialized = errors.Wrap(ErrInvalidState, "already initialized")

	// ErrNothingToDistribute is returned for a zero yield
	ErrNothingToDistribute = errors.Wrap(ErrEmptyOperation, "nothing to distribute")
	// ErrNothingToClaim is returned when the pending personal yield is zero
	ErrNothingToClaim = errors.Wrap(ErrEmptyOperation, "nothing to claim")

	// ErrReentrant is returned when an operation is entered while another one is in flight
	ErrReentrant = errors.New("reentrant call")
)
