package sizeclass

import (
	"fmt"
	"math"
	"math/bits"
)

// Config defines the banded size class layout.
// Every band holds ClassesPerBand classes and doubles the granularity and
// halves the object count of the band before it.
type Config struct {
	// Name for this configuration
	Name string

	MinGranularity int // Step of the first band in bytes (8)
	ClassesPerBand int // Classes in each band (16)
	NumBands       int // Number of bands (5)
	MaxCount       int // Objects per class in the first band (64)
}

var (
	// DefaultConfig is the 80-class layout covering 1..3968 bytes.
	DefaultConfig = Config{
		Name:           "Default",
		MinGranularity: 8,
		ClassesPerBand: 16,
		NumBands:       5,
		MaxCount:       64,
	}

	defaultTable = mustTable(DefaultConfig)
)

// maxClasses bounds NumBands*ClassesPerBand for custom tables.
const maxClasses = 1 << 16

const (
	// MinSize is the smallest size accepted by Index.
	MinSize = 1
	// MaxSize is the largest size accepted by Index.
	MaxSize = 3968
	// NumClasses is the number of classes in the default table.
	NumClasses = 80
)

// Band is a run of classes sharing one granularity.
type Band struct {
	Base        int // Index of the first class in the band
	Lo          int // Exclusive lower size bound
	Hi          int // Inclusive upper size bound
	Granularity int // Bytes between consecutive class sizes
	Count       int // Objects per class
}

// Contains reports whether size falls inside the band.
func (b Band) Contains(size int) bool {
	return size > b.Lo && size <= b.Hi
}

// NumClasses returns the number of classes in the band.
func (b Band) NumClasses() int {
	return (b.Hi - b.Lo) / b.Granularity
}

// index returns the class index of size; size must be inside the band.
func (b Band) index(size int) int {
	return b.Base + (size-b.Lo-1)/b.Granularity
}

// Class is a single size class.
type Class struct {
	Index int // Class index
	Size  int // Block size served by the class
	Count int // Objects per class
}

// Table holds the computed bands and class boundaries for a Config.
type Table struct {
	config     Config
	bands      []Band
	boundaries []int // Upper bound (block size) for each class
}

// NewTable computes bands and class boundaries from config.
func NewTable(config Config) (*Table, error) {
	if config.MinGranularity <= 0 || config.ClassesPerBand <= 0 || config.NumBands <= 0 {
		return nil, fmt.Errorf("%w: granularity, classes per band and bands must be positive", ErrBadConfig)
	}
	if config.NumBands > maxClasses || config.ClassesPerBand > maxClasses ||
		config.NumBands*config.ClassesPerBand > maxClasses {
		return nil, fmt.Errorf("%w: more than %d classes", ErrBadConfig, maxClasses)
	}
	// The top granularity and the boundary walk past the last Hi must fit in
	// an int; both stay below ClassesPerBand * topGran * 4.
	if bits.Len(uint(config.MinGranularity))+config.NumBands-1 > bits.UintSize-2 {
		return nil, fmt.Errorf("%w: granularity overflows after %d bands", ErrBadConfig, config.NumBands)
	}
	topGran := uint64(config.MinGranularity) << (config.NumBands - 1)
	if hi, lo := bits.Mul64(uint64(config.ClassesPerBand), topGran<<2); hi != 0 || lo > math.MaxInt {
		return nil, fmt.Errorf("%w: maximum size overflows", ErrBadConfig)
	}
	if config.MaxCount>>(config.NumBands-1) < 1 {
		return nil, fmt.Errorf("%w: max count %d too small for %d bands",
			ErrBadConfig, config.MaxCount, config.NumBands)
	}

	t := &Table{
		config:     config,
		bands:      make([]Band, 0, config.NumBands),
		boundaries: make([]int, 0, config.NumBands*config.ClassesPerBand),
	}

	lo := 0
	for i := 0; i < config.NumBands; i++ {
		gran := config.MinGranularity << i
		b := Band{
			Base:        i * config.ClassesPerBand,
			Lo:          lo,
			Hi:          lo + config.ClassesPerBand*gran,
			Granularity: gran,
			Count:       config.MaxCount >> i,
		}
		t.bands = append(t.bands, b)
		for size := b.Lo + gran; size <= b.Hi; size += gran {
			t.boundaries = append(t.boundaries, size)
		}
		lo = b.Hi
	}

	return t, nil
}

func mustTable(config Config) *Table {
	t, err := NewTable(config)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the configuration name.
func (t *Table) String() string {
	return t.config.Name
}

// NumClasses returns the number of classes in the table.
func (t *Table) NumClasses() int {
	return len(t.boundaries)
}

// MaxSize returns the largest size the table accepts.
func (t *Table) MaxSize() int {
	return t.bands[len(t.bands)-1].Hi
}

// BandOf returns the band containing size.
func (t *Table) BandOf(size int) (Band, error) {
	if size < MinSize {
		return Band{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > t.MaxSize() {
		return Band{}, fmt.Errorf("%w: %d > %d", ErrOutOfRange, size, t.MaxSize())
	}

	// Binary search for the first band whose upper bound fits
	lo, hi := 0, len(t.bands)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if size <= t.bands[mid].Hi {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return t.bands[lo], nil
}

// Index returns the class index for size.
func (t *Table) Index(size int) (int, error) {
	b, err := t.BandOf(size)
	if err != nil {
		return 0, err
	}
	return b.index(size), nil
}

// ClassSize returns the block size served by class index.
func (t *Table) ClassSize(index int) (int, error) {
	if index < 0 || index >= len(t.boundaries) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrBadIndex, index, len(t.boundaries))
	}
	return t.boundaries[index], nil
}

// RoundUp returns the block size an allocation of size is served from.
func (t *Table) RoundUp(size int) (int, error) {
	idx, err := t.Index(size)
	if err != nil {
		return 0, err
	}
	return t.boundaries[idx], nil
}

// Bands returns a copy of the bands in ascending order.
func (t *Table) Bands() []Band {
	out := make([]Band, len(t.bands))
	copy(out, t.bands)
	return out
}

// Classes returns every class in ascending order.
func (t *Table) Classes() []Class {
	out := make([]Class, 0, len(t.boundaries))
	for _, b := range t.bands {
		for i := 0; i < b.NumClasses(); i++ {
			idx := b.Base + i
			out = append(out, Class{Index: idx, Size: t.boundaries[idx], Count: b.Count})
		}
	}
	return out
}

// Index returns the class index for size in the default table.
func Index(size int) (int, error) {
	return defaultTable.Index(size)
}

// MustIndex is like Index but panics on error.
func MustIndex(size int) int {
	idx, err := defaultTable.Index(size)
	if err != nil {
		panic(err)
	}
	return idx
}

// BandOf returns the default-table band containing size.
func BandOf(size int) (Band, error) {
	return defaultTable.BandOf(size)
}

// ClassSize returns the block size of a default-table class.
func ClassSize(index int) (int, error) {
	return defaultTable.ClassSize(index)
}

// RoundUp returns the default-table block size serving size.
func RoundUp(size int) (int, error) {
	return defaultTable.RoundUp(size)
}

// Bands returns the default-table bands.
func Bands() []Band {
	return defaultTable.Bands()
}

// Classes returns the default-table classes.
func Classes() []Class {
	return defaultTable.Classes()
}
