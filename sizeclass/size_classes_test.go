package sizeclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceIndex is the banded formula written out literally.
func referenceIndex(size int) int {
	switch {
	case size <= 128:
		return 0 + (size-1)/8
	case size <= 384:
		return 16 + (size-128-1)/16
	case size <= 896:
		return 32 + (size-384-1)/32
	case size <= 1920:
		return 48 + (size-896-1)/64
	default:
		return 64 + (size-1920-1)/128
	}
}

func TestIndex_Boundaries(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0},
		{8, 0},
		{9, 1},
		{128, 15},
		{129, 16},
		{384, 31},
		{385, 32},
		{896, 47},
		{897, 48},
		{1920, 63},
		{1921, 64},
		{3968, 79},
	}

	for _, tt := range tests {
		got, err := Index(tt.size)
		require.NoError(t, err, "size %d", tt.size)
		assert.Equal(t, tt.want, got, "Index(%d)", tt.size)
	}
}

func TestIndex_BandRanges(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi         int
		minIdx, maxIdx int
	}{
		{"8-byte steps", 1, 128, 0, 15},
		{"16-byte steps", 129, 384, 16, 31},
		{"32-byte steps", 385, 896, 32, 47},
		{"64-byte steps", 897, 1920, 48, 63},
		{"128-byte steps", 1921, 3968, 64, 79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for size := tt.lo; size <= tt.hi; size++ {
				got, err := Index(size)
				require.NoError(t, err)
				require.GreaterOrEqual(t, got, tt.minIdx, "size %d", size)
				require.LessOrEqual(t, got, tt.maxIdx, "size %d", size)
				require.Equal(t, referenceIndex(size), got, "size %d", size)
			}
		})
	}
}

func TestIndex_FirstBandIsEightByteSteps(t *testing.T) {
	for size := 1; size <= 128; size++ {
		require.Equal(t, (size-1)/8, MustIndex(size), "size %d", size)
	}
}

func TestIndex_Monotonic(t *testing.T) {
	prev := MustIndex(MinSize)
	for size := MinSize + 1; size <= MaxSize; size++ {
		cur := MustIndex(size)
		require.GreaterOrEqual(t, cur, prev, "index decreased at size %d", size)
		require.LessOrEqual(t, cur-prev, 1, "index skipped a class at size %d", size)
		prev = cur
	}
	require.Equal(t, NumClasses-1, prev)
}

func TestIndex_OutOfRange(t *testing.T) {
	for _, size := range []int{MaxSize + 1, 4096, 1 << 20} {
		_, err := Index(size)
		require.ErrorIs(t, err, ErrOutOfRange, "size %d", size)
	}
}

func TestIndex_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -4096} {
		_, err := Index(size)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
		require.NotErrorIs(t, err, ErrOutOfRange)
	}
}

func TestMustIndex_Panics(t *testing.T) {
	require.Panics(t, func() { MustIndex(MaxSize + 1) })
	require.Panics(t, func() { MustIndex(0) })
	require.NotPanics(t, func() { MustIndex(MaxSize) })
}

func TestBands_Layout(t *testing.T) {
	want := []Band{
		{Base: 0, Lo: 0, Hi: 128, Granularity: 8, Count: 64},
		{Base: 16, Lo: 128, Hi: 384, Granularity: 16, Count: 32},
		{Base: 32, Lo: 384, Hi: 896, Granularity: 32, Count: 16},
		{Base: 48, Lo: 896, Hi: 1920, Granularity: 64, Count: 8},
		{Base: 64, Lo: 1920, Hi: 3968, Granularity: 128, Count: 4},
	}
	require.Equal(t, want, Bands())

	for _, b := range want {
		assert.Equal(t, 16, b.NumClasses())
	}
}

func TestBands_ReturnsCopy(t *testing.T) {
	b := Bands()
	b[0].Hi = 1
	require.Equal(t, 128, Bands()[0].Hi)
}

func TestBandOf(t *testing.T) {
	b, err := BandOf(129)
	require.NoError(t, err)
	require.Equal(t, 16, b.Base)
	require.True(t, b.Contains(129))
	require.True(t, b.Contains(384))
	require.False(t, b.Contains(128))
	require.False(t, b.Contains(385))

	_, err = BandOf(MaxSize + 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestClasses_MatchesClassTable(t *testing.T) {
	classes := Classes()
	require.Len(t, classes, NumClasses)

	// Spot checks against the published class table
	assert.Equal(t, Class{Index: 0, Size: 8, Count: 64}, classes[0])
	assert.Equal(t, Class{Index: 15, Size: 128, Count: 64}, classes[15])
	assert.Equal(t, Class{Index: 16, Size: 144, Count: 32}, classes[16])
	assert.Equal(t, Class{Index: 32, Size: 416, Count: 16}, classes[32])
	assert.Equal(t, Class{Index: 48, Size: 960, Count: 8}, classes[48])
	assert.Equal(t, Class{Index: 64, Size: 2048, Count: 4}, classes[64])
	assert.Equal(t, Class{Index: 79, Size: 3968, Count: 4}, classes[79])

	for i, c := range classes {
		require.Equal(t, i, c.Index)
		// The class size is the largest size mapping to the class
		require.Equal(t, i, MustIndex(c.Size))
		if c.Size < MaxSize {
			require.Equal(t, i+1, MustIndex(c.Size+1))
		}
	}
}

func TestClassSize(t *testing.T) {
	size, err := ClassSize(20)
	require.NoError(t, err)
	require.Equal(t, 208, size)

	for _, idx := range []int{-1, NumClasses} {
		_, err := ClassSize(idx)
		require.ErrorIs(t, err, ErrBadIndex)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 8},
		{8, 8},
		{9, 16},
		{129, 144},
		{200, 208},
		{385, 416},
		{1921, 2048},
		{3968, 3968},
	}
	for _, tt := range tests {
		got, err := RoundUp(tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "RoundUp(%d)", tt.size)
	}

	for size := MinSize; size <= MaxSize; size++ {
		blk, err := RoundUp(size)
		require.NoError(t, err)
		require.GreaterOrEqual(t, blk, size)
		require.Equal(t, MustIndex(size), MustIndex(blk))
	}

	_, err := RoundUp(MaxSize + 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewTable_CustomConfig(t *testing.T) {
	tbl, err := NewTable(Config{
		Name:           "Small",
		MinGranularity: 16,
		ClassesPerBand: 4,
		NumBands:       2,
		MaxCount:       8,
	})
	require.NoError(t, err)
	require.Equal(t, "Small", tbl.String())
	require.Equal(t, 8, tbl.NumClasses())
	// 4 x 16 then 4 x 32
	require.Equal(t, 64+128, tbl.MaxSize())

	idx, err := tbl.Index(65)
	require.NoError(t, err)
	require.Equal(t, 4, idx)

	_, err = tbl.Index(tbl.MaxSize() + 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewTable_DefaultMatchesConstants(t *testing.T) {
	tbl, err := NewTable(DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, MaxSize, tbl.MaxSize())
	require.Equal(t, NumClasses, tbl.NumClasses())
}

func TestNewTable_LargestGranularity(t *testing.T) {
	// Top band granularity 2^40 still fits
	tbl, err := NewTable(Config{MinGranularity: 1, ClassesPerBand: 2, NumBands: 41, MaxCount: 1 << 40})
	require.NoError(t, err)
	require.Equal(t, 82, tbl.NumClasses())
	require.Equal(t, 2*(1<<41-1), tbl.MaxSize())
}

func TestNewTable_BadConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero granularity", Config{MinGranularity: 0, ClassesPerBand: 16, NumBands: 5, MaxCount: 64}},
		{"zero classes", Config{MinGranularity: 8, ClassesPerBand: 0, NumBands: 5, MaxCount: 64}},
		{"zero bands", Config{MinGranularity: 8, ClassesPerBand: 16, NumBands: 0, MaxCount: 64}},
		{"count exhausted", Config{MinGranularity: 8, ClassesPerBand: 16, NumBands: 5, MaxCount: 8}},
		{"granularity overflow", Config{MinGranularity: 8, ClassesPerBand: 1, NumBands: 62, MaxCount: 1 << 62}},
		{"upper bound overflow", Config{MinGranularity: 1 << 60, ClassesPerBand: 16, NumBands: 1, MaxCount: 1}},
		{"too many classes", Config{MinGranularity: 1, ClassesPerBand: maxClasses + 1, NumBands: 1, MaxCount: 1}},
		{"too many bands", Config{MinGranularity: 1, ClassesPerBand: 1, NumBands: maxClasses + 1, MaxCount: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.config)
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}
}
