package bmp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityRamp builds the canonical linear grayscale palette.
func identityRamp(n int) colorTable {
	table := make(colorTable, n)
	for i := range table {
		v := uint8(i)
		table[i] = paletteEntry{B: v, G: v, R: v, Reserved: 255}
	}
	return table
}

func TestColorTableClassification(t *testing.T) {
	t.Run("identity ramp is linear and gray", func(t *testing.T) {
		table := identityRamp(256)
		assert.True(t, table.isLinearGray())
		assert.True(t, table.isGray())
	})

	t.Run("swapped gray entries are gray but not linear", func(t *testing.T) {
		table := identityRamp(256)
		table[0x13], table[0x14] = table[0x14], table[0x13]
		assert.False(t, table.isLinearGray())
		assert.True(t, table.isGray())
	})

	t.Run("single colored entry is neither", func(t *testing.T) {
		table := identityRamp(256)
		table[32] = paletteEntry{B: 32, G: 33, R: 34}
		assert.False(t, table.isLinearGray())
		assert.False(t, table.isGray())
	})

	t.Run("short identity ramp is still linear", func(t *testing.T) {
		table := identityRamp(16)
		assert.True(t, table.isLinearGray())
	})

	t.Run("empty table classifies as both", func(t *testing.T) {
		var table colorTable
		assert.True(t, table.isLinearGray())
		assert.True(t, table.isGray())
	})

	t.Run("reserved byte is ignored", func(t *testing.T) {
		table := identityRamp(256)
		table[7].Reserved = 0
		assert.True(t, table.isLinearGray())
	})
}

// paletteStream lays out a seekable pseudo-file: 54 header bytes followed
// by the raw palette.
func paletteStream(entries colorTable) *bytes.Reader {
	data := make([]byte, headerSize, headerSize+len(entries)*paletteEntrySize)
	for _, e := range entries {
		data = append(data, e.B, e.G, e.R, e.Reserved)
	}
	return bytes.NewReader(data)
}

func TestReadColorTable(t *testing.T) {
	want := identityRamp(256)
	h := wellFormedHeader(8, 90, 100)

	table, res := readColorTable(paletteStream(want), &h)
	require.True(t, res.IsOK())
	assert.Equal(t, want, table)
}

func TestReadColorTable_DeclaredCountWins(t *testing.T) {
	want := identityRamp(16)
	h := wellFormedHeader(8, 90, 100)
	h.NumColors = 16

	table, res := readColorTable(paletteStream(want), &h)
	require.True(t, res.IsOK())
	assert.Len(t, table, 16)
}

func TestReadColorTable_ZeroCountUsesDepthDefault(t *testing.T) {
	h := wellFormedHeader(8, 90, 100)
	h.NumColors = 0

	table, res := readColorTable(paletteStream(identityRamp(256)), &h)
	require.True(t, res.IsOK())
	assert.Len(t, table, 256)
}

func TestReadColorTable_Truncated(t *testing.T) {
	h := wellFormedHeader(8, 90, 100)

	// Only 10 of the 256 required entries present.
	_, res := readColorTable(paletteStream(identityRamp(10)), &h)
	assert.Equal(t, ReadError, res)
}

func TestReadColorTable_UnresolvableLength(t *testing.T) {
	h := wellFormedHeader(8, 90, 100)
	h.NumColors = 0
	h.BitsPerPixel = 2 // no depth-implied default

	_, res := readColorTable(paletteStream(nil), &h)
	assert.Equal(t, UnsupportedColorTableUse, res)
}

func TestReadColorTable_FollowsExtendedSubHeader(t *testing.T) {
	// A 56-byte sub-header shifts the palette two bytes further in.
	h := wellFormedHeader(8, 90, 100)
	h.InfoHeaderSize = 56
	h.Offset += 2

	want := identityRamp(256)
	data := make([]byte, headerSize+2)
	for _, e := range want {
		data = append(data, e.B, e.G, e.R, e.Reserved)
	}

	table, res := readColorTable(bytes.NewReader(data), &h)
	require.True(t, res.IsOK())
	assert.Equal(t, want, table)
}
