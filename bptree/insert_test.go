package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAndFind(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	require.NoError(t, tr.Insert(10, MakeInt(10)))
	require.NoError(t, tr.Insert(20, MakeInt(20)))
	require.NoError(t, tr.Insert(5, MakeInt(5)))

	rec := tr.Find(10)
	require.NotNil(t, rec)
	require.EqualValues(t, 10, rec.Int)

	require.Nil(t, tr.Find(999))
}

func TestInsertNilRecord(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.ErrorIs(t, tr.Insert(1, nil), ErrNilRecord)
}

func TestInsertDuplicateKeyIsNoopAndCallerKeepsOwnership(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	first := MakeInt(1)
	require.NoError(t, tr.Insert(5, first))

	second := MakeInt(2)
	require.NoError(t, tr.Insert(5, second))

	got := tr.Find(5)
	require.Same(t, first, got)
	require.NotNil(t, second)
	require.EqualValues(t, 2, second.Int)
}

func TestInsertForcesLeafSplit(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)

	for i := int32(0); i < 10; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}
	require.Equal(t, 10, tr.Count())
	for i := int32(0); i < 10; i++ {
		rec := tr.Find(i)
		require.NotNil(t, rec)
		require.EqualValues(t, i, rec.Int)
	}
}

func TestInsertForcesInternalSplit(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)

	n := int32(100)
	for i := int32(0); i < n; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}
	require.Equal(t, int(n), tr.Count())
	require.Greater(t, tr.Height(), 1)

	for i := int32(0); i < n; i++ {
		require.NotNil(t, tr.Find(i))
	}
}

func TestInsertDescendingOrder(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	for i := int32(50); i > 0; i-- {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}
	require.Equal(t, 50, tr.Count())
	for i := int32(1); i <= 50; i++ {
		require.NotNil(t, tr.Find(i))
	}
}

func TestLeafChainStaysOrderedAfterSplits(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)

	keys := []int32{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, MakeInt(k)))
	}

	pairs, err := tr.Range(0, 9)
	require.NoError(t, err)
	require.Len(t, pairs, 10)
	for i, p := range pairs {
		require.EqualValues(t, i, p.Key)
	}
}
