// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

type (
	// CachedBatch derives from Batch interface
	// A local cache is added to provide fast retrieval of pending Put/Delete entries
	CachedBatch interface {
		KVStoreBatch
		// Get gets a record by (namespace, key)
		Get(string, []byte) ([]byte, error)
	}

	// cachedBatch implements the CachedBatch interface
	cachedBatch struct {
		KVStoreBatch
		cache KVStoreCache
	}
)

// NewCachedBatch returns a new cached batch buffer
func NewCachedBatch() CachedBatch {
	return &cachedBatch{
		KVStoreBatch: NewBatch(),
		cache:        NewKVCache(),
	}
}

// Put inserts a <key, value> record
func (cb *cachedBatch) Put(namespace string, key, value []byte) {
	cb.KVStoreBatch.Put(namespace, key, value)
	cb.cache.Write(namespace, key, value)
}

// Delete deletes a record
func (cb *cachedBatch) Delete(namespace string, key []byte) {
	cb.KVStoreBatch.Delete(namespace, key)
	cb.cache.Evict(namespace, key)
}

// Get retrieves a record staged in the batch
func (cb *cachedBatch) Get(namespace string, key []byte) ([]byte, error) {
	return cb.cache.Read(namespace, key)
}

// Clear clears the batch and the cache
func (cb *cachedBatch) Clear() {
	cb.KVStoreBatch.Clear()
	cb.cache.Clear()
}

// ClearAndUnlock clears the batch and the cache, then unlocks the batch
func (cb *cachedBatch) ClearAndUnlock() {
	cb.cache.Clear()
	cb.KVStoreBatch.ClearAndUnlock()
}
