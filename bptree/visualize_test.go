package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTreeEmpty(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	v := &Visualizer{Tree: tr}
	require.Equal(t, "Empty tree", v.PrintTree())
}

func TestPrintLeavesEmpty(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	v := &Visualizer{Tree: tr}
	require.Equal(t, "Empty tree.", v.PrintLeaves())
}

func TestPrintTreeAndLeavesNonEmpty(t *testing.T) {
	tr, err := New(3)
	require.NoError(t, err)
	for i := int32(0); i < 20; i++ {
		require.NoError(t, tr.Insert(i, MakeInt(i)))
	}
	v := &Visualizer{Tree: tr}

	out := v.PrintTree()
	require.NotEmpty(t, out)

	leaves := v.PrintLeaves()
	require.NotEmpty(t, leaves)
	for i := int32(0); i < 20; i++ {
		require.Contains(t, leaves, itoaHelper(i))
	}
}

func itoaHelper(i int32) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b []byte
	for i > 0 {
		b = append([]byte{byte('0' + i%10)}, b...)
		i /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

func TestVisualizerVerboseTogglesPointerColumn(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	require.NoError(t, tr.Insert(1, MakeInt(1)))

	v := &Visualizer{Tree: tr, Verbose: true}
	out := v.PrintTree()
	require.Contains(t, out, "0x")
}
