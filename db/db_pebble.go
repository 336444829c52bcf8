// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"syscall"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/db/batch"
	"github.com/iotexproject/iotex-yieldsplit/pkg/lifecycle"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
)

// PebbleDB is KVStore implementation based on pebble DB
type PebbleDB struct {
	lifecycle.Readiness
	db     *pebble.DB
	path   string
	config Config
}

// NewPebbleDB creates a new PebbleDB instance
func NewPebbleDB(cfg Config) *PebbleDB {
	return &PebbleDB{
		db:     nil,
		path:   cfg.DbPath,
		config: cfg,
	}
}

// Start opens the DB (creates new file if not existing yet)
func (b *PebbleDB) Start(_ context.Context) error {
	db, err := pebble.Open(b.path, &pebble.Options{
		ReadOnly: b.config.ReadOnly,
	})
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	b.db = db
	return b.TurnOn()
}

// Stop closes the DB
func (b *PebbleDB) Stop(_ context.Context) error {
	if err := b.TurnOff(); err != nil {
		return err
	}
	if err := b.db.Close(); err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	return nil
}

// Get retrieves a record
func (b *PebbleDB) Get(ns string, key []byte) ([]byte, error) {
	if !b.IsReady() {
		return nil, ErrDBNotStarted
	}
	v, closer, err := b.db.Get(nsKey(ns, key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotExist, "ns %s key = %x doesn't exist", ns, key)
		}
		return nil, errors.Wrap(ErrIO, err.Error())
	}
	val := make([]byte, len(v))
	copy(val, v)
	return val, closer.Close()
}

// Put inserts a <key, value> record
func (b *PebbleDB) Put(ns string, key, value []byte) error {
	if !b.IsReady() {
		return ErrDBNotStarted
	}
	return b.wrapWriteErr(b.db.Set(nsKey(ns, key), value, pebble.Sync), "put")
}

// Delete deletes a record
func (b *PebbleDB) Delete(ns string, key []byte) error {
	if !b.IsReady() {
		return ErrDBNotStarted
	}
	return b.wrapWriteErr(b.db.Delete(nsKey(ns, key), pebble.Sync), "delete")
}

// WriteBatch commits a batch
func (b *PebbleDB) WriteBatch(kvsb batch.KVStoreBatch) error {
	if !b.IsReady() {
		return ErrDBNotStarted
	}
	kvsb.Lock()
	defer kvsb.ClearAndUnlock()

	pb := b.db.NewBatch()
	defer pb.Close()
	for i := 0; i < kvsb.Size(); i++ {
		write, err := kvsb.Entry(i)
		if err != nil {
			return err
		}
		switch write.WriteType() {
		case batch.Put:
			err = pb.Set(nsKey(write.Namespace(), write.Key()), write.Value(), nil)
		case batch.Delete:
			err = pb.Delete(nsKey(write.Namespace(), write.Key()), nil)
		}
		if err != nil {
			return errors.Wrap(ErrIO, err.Error())
		}
	}
	return b.wrapWriteErr(pb.Commit(pebble.Sync), "write batch")
}

func (b *PebbleDB) wrapWriteErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOSPC) {
		log.L().Fatal("Failed to "+op+" db.", zap.Error(err))
	}
	return errors.Wrap(ErrIO, err.Error())
}

func nsKey(ns string, key []byte) []byte {
	nk := make([]byte, 0, len(ns)+len(keyDelimiter)+len(key))
	nk = append(nk, ns...)
	nk = append(nk, keyDelimiter...)
	return append(nk, key...)
}
