// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
)

func TestRegistry(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	c, err := New(1, "active", identityset.Address(3).String())
	r.NoError(err)
	reg := NewRegistry(c)

	got, err := reg.Campaign(ctx, 1)
	r.NoError(err)
	r.Equal(splitter.CampaignActive, got.Status)
	r.Equal(identityset.Address(3).String(), got.Payout.String())
	// callers get a copy
	got.Status = splitter.CampaignClosed
	got, err = reg.Campaign(ctx, 1)
	r.NoError(err)
	r.Equal(splitter.CampaignActive, got.Status)

	r.NoError(reg.SetStatus(1, splitter.CampaignPaused))
	got, err = reg.Campaign(ctx, 1)
	r.NoError(err)
	r.Equal(splitter.CampaignPaused, got.Status)

	_, err = reg.Campaign(ctx, 2)
	r.ErrorIs(err, ErrNotFound)
	r.ErrorIs(reg.SetStatus(2, splitter.CampaignActive), ErrNotFound)
	r.Error(reg.Put(splitter.Campaign{ID: 2}))
	r.NoError(reg.Put(splitter.Campaign{ID: 2, Payout: identityset.Address(4)}))
	_, err = reg.Campaign(ctx, 2)
	r.NoError(err)
}

func TestNew(t *testing.T) {
	r := require.New(t)
	_, err := New(1, "running", identityset.Address(3).String())
	r.ErrorIs(err, ErrInvalidStatus)
	_, err = New(1, "active", "not-an-address")
	r.Error(err)

	for _, s := range []string{"pending", "active", "paused", "closed"} {
		st, err := ParseStatus(s)
		r.NoError(err)
		r.Equal(s, st.String())
	}
}
