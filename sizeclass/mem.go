package sizeclass

// memSteps is the number of terms ComputeMem sums.
const memSteps = 16

// ComputeMem returns the sum of i*size for the 16 values
// i = start, start+step, ..., start+15*step.
func ComputeMem(start, step, size int64) int64 {
	var mem int64
	for k := int64(0); k < memSteps; k++ {
		mem += (start + k*step) * size
	}
	return mem
}

// Footprint returns the bytes needed to hold b.Count objects of every class
// in b. The 16 terms of ComputeMem line up with the 16 classes per band of
// DefaultConfig.
func Footprint(b Band) int64 {
	return ComputeMem(int64(b.Lo+b.Granularity), int64(b.Granularity), int64(b.Count))
}

// Footprint returns the bytes needed to hold Count objects of every class
// in the band.
func (b Band) Footprint() int64 {
	return Footprint(b)
}
