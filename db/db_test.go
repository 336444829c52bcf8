// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-yieldsplit/db/batch"
)

var (
	bucket1 = "test_ns1"
	bucket2 = "test_ns2"
	testK1  = [3][]byte{[]byte("key_1"), []byte("key_2"), []byte("key_3")}
	testV1  = [3][]byte{[]byte("value_1"), []byte("value_2"), []byte("value_3")}
)

func forEachStore(t *testing.T, test func(*testing.T, KVStore)) {
	cfg := DefaultConfig
	t.Run("memory", func(t *testing.T) {
		test(t, NewMemKVStore())
	})
	t.Run("bolt", func(t *testing.T) {
		c := cfg
		c.DbPath = filepath.Join(t.TempDir(), "bolt.db")
		test(t, NewBoltDB(c))
	})
	t.Run("pebble", func(t *testing.T) {
		c := cfg
		c.DbPath = filepath.Join(t.TempDir(), "pebble")
		test(t, NewPebbleDB(c))
	})
}

func TestKVStorePutGet(t *testing.T) {
	forEachStore(t, func(t *testing.T, kvStore KVStore) {
		require := require.New(t)
		ctx := context.Background()

		require.NoError(kvStore.Start(ctx))
		defer func() {
			require.NoError(kvStore.Stop(ctx))
		}()

		require.NoError(kvStore.Put(bucket1, []byte("key"), []byte("value")))
		value, err := kvStore.Get(bucket1, []byte("key"))
		require.NoError(err)
		require.Equal([]byte("value"), value)

		_, err = kvStore.Get(bucket2, []byte("key"))
		require.Equal(ErrNotExist, errors.Cause(err))
		_, err = kvStore.Get(bucket1, testK1[0])
		require.Equal(ErrNotExist, errors.Cause(err))

		require.NoError(kvStore.Delete(bucket1, []byte("key")))
		_, err = kvStore.Get(bucket1, []byte("key"))
		require.Equal(ErrNotExist, errors.Cause(err))
		// deleting a missing key is fine
		require.NoError(kvStore.Delete(bucket2, []byte("key")))
	})
}

func TestKVStoreWriteBatch(t *testing.T) {
	forEachStore(t, func(t *testing.T, kvStore KVStore) {
		require := require.New(t)
		ctx := context.Background()

		require.NoError(kvStore.Start(ctx))
		defer func() {
			require.NoError(kvStore.Stop(ctx))
		}()

		require.NoError(kvStore.Put(bucket2, testK1[2], testV1[2]))
		b := batch.NewBatch()
		b.Put(bucket1, testK1[0], testV1[0])
		b.Put(bucket1, testK1[1], testV1[1])
		b.Put(bucket1, testK1[1], testV1[2])
		b.Delete(bucket2, testK1[2])
		require.NoError(kvStore.WriteBatch(b))
		require.Zero(b.Size())

		v, err := kvStore.Get(bucket1, testK1[0])
		require.NoError(err)
		require.Equal(testV1[0], v)
		// later writes to the same key win
		v, err = kvStore.Get(bucket1, testK1[1])
		require.NoError(err)
		require.Equal(testV1[2], v)
		_, err = kvStore.Get(bucket2, testK1[2])
		require.Equal(ErrNotExist, errors.Cause(err))
	})
}

func TestStoreNotStarted(t *testing.T) {
	require := require.New(t)
	cfg := DefaultConfig
	cfg.DbPath = filepath.Join(t.TempDir(), "bolt.db")
	kv := NewBoltDB(cfg)
	require.Equal(ErrDBNotStarted, kv.Put(bucket1, testK1[0], testV1[0]))
	_, err := kv.Get(bucket1, testK1[0])
	require.Equal(ErrDBNotStarted, err)
}

func TestCreateKVStore(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig
	cfg.DBType = DBMemory
	cfg.DbPath = ""
	kv, err := CreateKVStore(cfg)
	require.NoError(err)
	require.NotNil(kv)

	cfg.DBType = DBBolt
	_, err = CreateKVStore(cfg)
	require.Equal(ErrEmptyDBPath, err)

	cfg.DbPath = "x"
	kv, err = CreateKVStore(cfg)
	require.NoError(err)
	require.IsType(&BoltDB{}, kv)

	cfg.DBType = DBPebble
	kv, err = CreateKVStore(cfg)
	require.NoError(err)
	require.IsType(&PebbleDB{}, kv)

	cfg.DBType = "leveldb"
	_, err = CreateKVStore(cfg)
	require.Error(err)
}
