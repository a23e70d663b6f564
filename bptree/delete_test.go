package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.Insert(1, MakeInt(1)))
	tr.Delete(999)
	require.Equal(t, 1, tr.Count())
}

func TestDeleteOnEmptyTreeIsNoop(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	tr.Delete(1)
	require.True(t, tr.Empty())
}

func TestDeleteSingleKeyEmptiesTree(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.Insert(1, MakeInt(1)))
	tr.Delete(1)
	require.True(t, tr.Empty())
	require.Nil(t, tr.Find(1))
}

func TestDeleteInvokesReleaseHookForDataRecords(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	var released [][]byte
	tr.SetReleaseHook(func(data []byte) { released = append(released, data) })

	payload := []byte("small")
	require.NoError(t, tr.Insert(1, MakeData(payload)))
	require.NoError(t, tr.Insert(2, MakeInt(2)))

	tr.Delete(1)
	require.Len(t, released, 1)
	require.Equal(t, payload, released[0])

	tr.Delete(2)
	require.Len(t, released, 1)
}

func TestDeleteTriggersCoalesceAndRedistribute(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)

	n := int32(30)
	for i := int32(0); i < n; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}

	for i := int32(0); i < n; i += 2 {
		tr.Delete(i)
	}

	require.Equal(t, int(n/2), tr.Count())
	for i := int32(0); i < n; i++ {
		rec := tr.Find(i)
		if i%2 == 0 {
			require.Nil(t, rec)
		} else {
			require.NotNil(t, rec)
		}
	}
}

func TestDeleteAllKeysLeavesEmptyTree(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	keys := []int32{10, 20, 5, 15, 25, 1, 30, 3, 7, 12, 18, 22, 28}
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, MakeInt(k)))
	}
	for _, k := range keys {
		tr.Delete(k)
	}

	require.True(t, tr.Empty())
	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0, tr.Height())
}

func TestDeleteInterleavedWithInsert(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)

	for i := int32(0); i < 15; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}
	for i := int32(0); i < 15; i += 3 {
		tr.Delete(i)
	}
	for i := int32(100); i < 110; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}

	expected := 15 - 5 + 10
	require.Equal(t, expected, tr.Count())
}
