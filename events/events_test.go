// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package events

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
	"github.com/iotexproject/iotex-yieldsplit/test/identityset"
	"github.com/iotexproject/iotex-yieldsplit/test/mock/mock_splitter"
)

type fakeStream struct {
	fails  int
	added  []*redis.XAddArgs
	closed bool
}

func (f *fakeStream) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	if f.fails > 0 {
		f.fails--
		return redis.NewStringResult("", errors.New("connection reset"))
	}
	f.added = append(f.added, a)
	return redis.NewStringResult("1-0", nil)
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

func claimRecord() *splitter.ClaimRecord {
	return &splitter.ClaimRecord{
		Pool:        identityset.Address(0),
		Asset:       identityset.Address(1),
		User:        identityset.Address(5),
		Beneficiary: identityset.Address(10),
		Amount:      big.NewInt(225),
		Timestamp:   time.Unix(1700000000, 0),
	}
}

func TestFields(t *testing.T) {
	r := require.New(t)
	f, err := Fields(&splitter.DistributionRecord{
		Pool:              identityset.Address(0),
		Asset:             identityset.Address(1),
		CampaignID:        7,
		Gross:             big.NewInt(1000),
		Fee:               big.NewInt(100),
		Net:               big.NewInt(900),
		CampaignPortion:   big.NewInt(675),
		PersonalAccounted: big.NewInt(225),
	})
	r.NoError(err)
	r.Equal("distribution", f["type"])
	r.Equal("7", f["campaign"])
	r.Equal("675", f["toCampaign"])

	f, err = Fields(claimRecord())
	r.NoError(err)
	r.Equal("claim", f["type"])
	r.Equal("225", f["amount"])
	r.Equal(identityset.Address(10).String(), f["beneficiary"])

	ctrl := gomock.NewController(t)
	rec := mock_splitter.NewMockRecord(ctrl)
	_, err = Fields(rec)
	r.Error(err)
}

func TestLogSink(t *testing.T) {
	r := require.New(t)
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSink(zap.New(core))
	r.NoError(s.Emit(context.Background(), claimRecord()))
	r.Equal(1, logs.Len())
	entry := logs.All()[0]
	r.Equal("225", entry.ContextMap()["amount"])
}

func TestRedisSink(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	cfg := DefaultRedisConfig
	cfg.RetryInterval = time.Millisecond
	stream := &fakeStream{fails: 2}
	s := newRedisSink(stream, cfg)
	r.NoError(s.Start(ctx))

	r.NoError(s.Emit(ctx, claimRecord()))
	r.Len(stream.added, 1)
	r.Equal("yieldsplit", stream.added[0].Stream)
	r.Equal("claim", stream.added[0].Values.(map[string]interface{})["type"])

	// retries are bounded
	stream.fails = 10
	r.Error(s.Emit(ctx, claimRecord()))
	r.Len(stream.added, 1)

	r.NoError(s.Stop(ctx))
	r.True(stream.closed)
}

func TestFanout(t *testing.T) {
	r := require.New(t)
	ctrl := gomock.NewController(t)
	a := mock_splitter.NewMockEventSink(ctrl)
	b := mock_splitter.NewMockEventSink(ctrl)
	rec := claimRecord()
	a.EXPECT().Emit(gomock.Any(), rec).Return(errors.New("down")).Times(1)
	b.EXPECT().Emit(gomock.Any(), rec).Return(nil).Times(1)
	r.EqualError(Fanout{a, b}.Emit(context.Background(), rec), "down")
}
