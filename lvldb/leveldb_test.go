// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/kv"
)

func TestLevelDB(t *testing.T) {
	persistent, err := New(filepath.Join(t.TempDir(), "db"), Options{CacheSize: 16, OpenFilesCacheCapacity: 16})
	require.NoError(t, err)
	defer persistent.Close()

	mem, err := NewMem()
	require.NoError(t, err)
	defer mem.Close()

	for _, db := range []*LevelDB{persistent, mem} {
		require.NoError(t, db.Put([]byte("123"), []byte("456")))

		v, err := db.Get([]byte("123"))
		require.NoError(t, err)
		assert.Equal(t, []byte("456"), v)

		has, err := db.Has([]byte("123"))
		require.NoError(t, err)
		assert.True(t, has)

		_, err = db.Get([]byte("abc"))
		assert.True(t, db.IsNotFound(err))

		require.NoError(t, db.Delete([]byte("123")))
		has, _ = db.Has([]byte("123"))
		assert.False(t, has)
	}
}

func TestBatchAndIterate(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	b := db.NewBatch()
	require.NoError(t, b.Put([]byte("a1"), []byte("x")))
	require.NoError(t, b.Put([]byte("a2"), []byte("y")))
	require.NoError(t, b.Put([]byte("b1"), []byte("z")))
	assert.Equal(t, 3, b.Len())

	has, _ := db.Has([]byte("a1"))
	assert.False(t, has, "nothing visible before Write")
	require.NoError(t, b.Write())

	var keys []string
	require.NoError(t, db.Iterate(kv.Bucket("a").Range(), func(p kv.Pair) bool {
		keys = append(keys, string(p.Key))
		return true
	}))
	assert.Equal(t, []string{"a1", "a2"}, keys)
}

func TestReopenKeepsBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	db, err := New(path, Options{NoSync: true})
	require.NoError(t, err)

	b := db.NewBatch()
	require.NoError(t, b.Put([]byte("k"), []byte("v")))
	require.NoError(t, b.Delete([]byte("gone")))
	require.NoError(t, b.Write())
	require.NoError(t, db.Close())

	db, err = New(path, Options{})
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
