// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-yieldsplit/db"
	"github.com/iotexproject/iotex-yieldsplit/db/batch"
)

type (
	// StateReader reads states
	StateReader interface {
		State(ns string, key []byte, s interface{}) error
	}

	// StateManager reads and writes states
	StateManager interface {
		StateReader
		PutState(ns string, key []byte, s interface{}) error
		DelState(ns string, key []byte) error
	}

	// WorkingSet buffers state writes on top of a KVStore. Reads see the buffered writes first.
	// Nothing reaches the store until Commit.
	WorkingSet struct {
		kv db.KVStore
		cb batch.CachedBatch
	}
)

var _ StateManager = (*WorkingSet)(nil)

// NewWorkingSet creates a working set on top of the store
func NewWorkingSet(kv db.KVStore) *WorkingSet {
	return &WorkingSet{
		kv: kv,
		cb: batch.NewCachedBatch(),
	}
}

// State reads a state into s, returning ErrStateNotExist if it was never written or has been deleted
func (ws *WorkingSet) State(ns string, key []byte, s interface{}) error {
	data, err := ws.cb.Get(ns, key)
	switch errors.Cause(err) {
	case nil:
	case batch.ErrAlreadyDeleted:
		return errors.Wrapf(ErrStateNotExist, "state %x deleted", key)
	case batch.ErrNotExist:
		data, err = ws.kv.Get(ns, key)
		if errors.Cause(err) == db.ErrNotExist {
			return errors.Wrapf(ErrStateNotExist, "state %x not exist in %s", key, ns)
		}
		if err != nil {
			return err
		}
	default:
		return err
	}
	return Deserialize(s, data)
}

// PutState stages a state write
func (ws *WorkingSet) PutState(ns string, key []byte, s interface{}) error {
	data, err := Serialize(s)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize state %x", key)
	}
	ws.cb.Put(ns, key, data)
	return nil
}

// DelState stages a state deletion
func (ws *WorkingSet) DelState(ns string, key []byte) error {
	ws.cb.Delete(ns, key)
	return nil
}

// Size returns the number of staged writes
func (ws *WorkingSet) Size() int {
	return ws.cb.Size()
}

// Commit writes all staged writes to the store atomically
func (ws *WorkingSet) Commit() error {
	if ws.cb.Size() == 0 {
		return nil
	}
	if err := ws.kv.WriteBatch(ws.cb); err != nil {
		return errors.Wrap(err, "failed to commit working set")
	}
	ws.cb.Clear()
	return nil
}

// Discard drops all staged writes
func (ws *WorkingSet) Discard() {
	ws.cb.Clear()
}
