// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

type (
	// KVStoreCache is a local cache of batched <k, v> for fast query
	KVStoreCache interface {
		// Read retrieves a record
		Read(namespace string, key []byte) ([]byte, error)
		// Write puts a record into cache
		Write(namespace string, key, value []byte)
		// Evict marks a record as deleted in cache
		Evict(namespace string, key []byte)
		// Clear clear the cache
		Clear()
	}

	node struct {
		value   []byte
		deleted bool
	}

	// kvCache implements KVStoreCache interface
	kvCache struct {
		cache map[string]map[string]*node
	}
)

// NewKVCache returns a KVCache
func NewKVCache() KVStoreCache {
	return &kvCache{
		cache: make(map[string]map[string]*node),
	}
}

// Read retrieves a record
func (c *kvCache) Read(namespace string, key []byte) ([]byte, error) {
	if ns, ok := c.cache[namespace]; ok {
		if node, ok := ns[string(key)]; ok {
			if node.deleted {
				return nil, ErrAlreadyDeleted
			}
			return node.value, nil
		}
	}
	return nil, ErrNotExist
}

// Write puts a record into cache
func (c *kvCache) Write(namespace string, key, value []byte) {
	c.ns(namespace)[string(key)] = &node{
		value:   value,
		deleted: false,
	}
}

// Evict deletes a record from cache
func (c *kvCache) Evict(namespace string, key []byte) {
	c.ns(namespace)[string(key)] = &node{
		value:   nil,
		deleted: true,
	}
}

// Clear clear the cache
func (c *kvCache) Clear() {
	c.cache = make(map[string]map[string]*node)
}

func (c *kvCache) ns(namespace string) map[string]*node {
	if _, ok := c.cache[namespace]; !ok {
		c.cache[namespace] = make(map[string]*node)
	}
	return c.cache[namespace]
}
