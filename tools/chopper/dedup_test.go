package chopper

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func storesUnderTest(t *testing.T) map[string]SeenStore {
	t.Helper()
	ls, err := OpenLevelStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { ls.Close() })
	return map[string]SeenStore{
		"memory":  NewMemoryStore(),
		"leveldb": ls,
	}
}

func TestFilterAcceptOnce(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			f := NewFilter(store)

			ok, err := f.Accept([]byte("PEPTIDE"))
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = f.Accept([]byte("PEPTIDE"))
			require.NoError(t, err)
			require.False(t, ok)

			ok, err = f.Accept([]byte("peptide"))
			require.NoError(t, err)
			require.True(t, ok, "comparison is case sensitive")

			require.Equal(t, 2, f.Accepted())
			require.Equal(t, 1, f.Rejected())
			require.Equal(t, 2, store.Len())
		})
	}
}

func TestFilterCopiesKeys(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			f := NewFilter(store)
			buf := []byte("ABC")
			ok, err := f.Accept(buf)
			require.NoError(t, err)
			require.True(t, ok)

			copy(buf, "XYZ")
			ok, err = f.Accept([]byte("ABC"))
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestLevelStoreCloseRemovesDir(t *testing.T) {
	ls, err := OpenLevelStore(t.TempDir())
	require.NoError(t, err)
	require.DirExists(t, ls.Dir())
	require.NoError(t, ls.Put([]byte("AB")))
	require.NoError(t, ls.Close())
	_, err = os.Stat(ls.Dir())
	require.True(t, os.IsNotExist(err))
}
