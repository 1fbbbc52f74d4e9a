// Package sizeclass maps allocation sizes to segregated size classes.
//
// # Overview
//
// Sizes from 1 to 3968 bytes are grouped into 80 classes spread over five
// bands. Each band holds 16 classes and doubles the granularity of the band
// before it:
//
//	Band 0: classes  0-15,    1 -  128 bytes, step   8, 64 objects/class
//	Band 1: classes 16-31,  129 -  384 bytes, step  16, 32 objects/class
//	Band 2: classes 32-47,  385 -  896 bytes, step  32, 16 objects/class
//	Band 3: classes 48-63,  897 - 1920 bytes, step  64,  8 objects/class
//	Band 4: classes 64-79, 1921 - 3968 bytes, step 128,  4 objects/class
//
// The index of a size is computed arithmetically from its band:
//
//	index = band.Base + (size - band.Lo - 1) / band.Granularity
//
// so the mapping is a non-decreasing step function over the whole domain.
//
// # Usage Example
//
//	idx, err := sizeclass.Index(200)
//	if err != nil {
//	    return err
//	}
//	// idx == 20, served from 208-byte blocks
//	blk, _ := sizeclass.ClassSize(idx)
//
// Sizes above MaxSize return ErrOutOfRange and sizes below 1 return
// ErrInvalidSize. Nothing in this package exits the process; callers decide.
//
// # Memory Estimates
//
// ComputeMem sums start, start+step, ..., start+15*step, each multiplied by
// size. Footprint applies it to a band, giving the bytes needed to hold
// Count objects of every class in that band.
//
// # Custom Tables
//
// NewTable builds a table from a Config. The package-level functions use
// DefaultConfig.
//
// # Thread Safety
//
// Tables are immutable after construction and safe for concurrent use.
//
// # Related Packages
//
//   - github.com/joshuapare/sizeclass/sizeclass/export: Writes the size to index table
package sizeclass
