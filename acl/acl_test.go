// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package acl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

func TestTable(t *testing.T) {
	r := require.New(t)
	admin, other := identityset.Address(4), identityset.Address(5)

	tbl, err := FromConfig(map[string][]string{
		admin.String(): {"fee-manager", "pool-registrar"},
	})
	r.NoError(err)
	r.True(tbl.IsAuthorized(admin, splitter.CapabilityFeeManager))
	r.True(tbl.IsAuthorized(admin, splitter.CapabilityPoolRegistrar))
	r.False(tbl.IsAuthorized(admin, splitter.CapabilitySchedulerManager))
	r.False(tbl.IsAuthorized(other, splitter.CapabilityFeeManager))
	r.False(tbl.IsAuthorized(nil, splitter.CapabilityFeeManager))

	tbl.Grant(other, splitter.CapabilitySchedulerManager)
	r.True(tbl.IsAuthorized(other, splitter.CapabilitySchedulerManager))
	tbl.Revoke(other, splitter.CapabilitySchedulerManager)
	r.False(tbl.IsAuthorized(other, splitter.CapabilitySchedulerManager))
	// revoking what was never granted is a no-op
	tbl.Revoke(identityset.Address(6), splitter.CapabilityFeeManager)

	_, err = FromConfig(map[string][]string{admin.String(): {"root"}})
	r.Error(err)
	_, err = FromConfig(map[string][]string{"bad": {"fee-manager"}})
	r.Error(err)
}
