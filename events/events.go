// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package events exports the ledger's distribution and claim records
package events

import (
	"context"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var (
	_ splitter.EventSink = (*LogSink)(nil)
	_ splitter.EventSink = (Fanout)(nil)
)

// LogSink writes records to a logger
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a log sink
func NewLogSink(l *zap.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Emit implements splitter.EventSink
func (s *LogSink) Emit(_ context.Context, r splitter.Record) error {
	fields, err := Fields(r)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	zfs := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		zfs = append(zfs, zap.String(k, fields[k]))
	}
	s.logger.Info("Ledger record.", zfs...)
	return nil
}

// Fanout emits every record to all sinks, returning the first error
type Fanout []splitter.EventSink

// Emit implements splitter.EventSink
func (f Fanout) Emit(ctx context.Context, r splitter.Record) error {
	var first error
	for _, s := range f {
		if err := s.Emit(ctx, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Fields flattens a record into string fields
func Fields(r splitter.Record) (map[string]string, error) {
	switch rec := r.(type) {
	case *splitter.DistributionRecord:
		return map[string]string{
			"type":       string(rec.Type()),
			"pool":       rec.Pool.String(),
			"asset":      rec.Asset.String(),
			"campaign":   strconv.FormatUint(rec.CampaignID, 10),
			"gross":      rec.Gross.String(),
			"fee":        rec.Fee.String(),
			"net":        rec.Net.String(),
			"toCampaign": rec.CampaignPortion.String(),
			"personal":   rec.PersonalAccounted.String(),
			"timestamp":  strconv.FormatInt(rec.Timestamp.UnixNano(), 10),
		}, nil
	case *splitter.ClaimRecord:
		return map[string]string{
			"type":        string(rec.Type()),
			"pool":        rec.Pool.String(),
			"asset":       rec.Asset.String(),
			"user":        rec.User.String(),
			"beneficiary": rec.Beneficiary.String(),
			"amount":      rec.Amount.String(),
			"timestamp":   strconv.FormatInt(rec.Timestamp.UnixNano(), 10),
		}, nil
	}
	return nil, errors.Errorf("unknown record %T", r)
}
