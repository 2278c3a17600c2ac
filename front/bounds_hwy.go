package front

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch coordinate extents
// Loop and domain bounding rectangles reduce to min/max scans over one
// coordinate axis at a time.

// BaseBatchMinMax computes the minimum and maximum values in a slice.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed both accumulators with the first value so the result is
	// correct for slices shorter than a vector.
	vMin := hwy.Set(data[0])
	vMax := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Masked-out lanes load as zero; substitute the running
			// min/max in those lanes so the padding cannot win the
			// reduction.
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
