package front

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch squared edge lengths (Structure of Arrays)
// Sorting the front by edge length only needs a comparison key, and squared
// lengths order identically to lengths, so the square root is skipped
// entirely and the subtract/multiply/add pipeline vectorizes cleanly.

// BaseBatchLengthSq computes dst[i] = (x2[i]-x1[i])^2 + (y2[i]-y1[i])^2.
func BaseBatchLengthSq[T hwy.Floats](x1, y1, x2, y2, dst []T) {
	size := min(len(x1), len(y1), len(x2), len(y2), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vX1 := hwy.Load(x1[offset:])
			vY1 := hwy.Load(y1[offset:])
			vX2 := hwy.Load(x2[offset:])
			vY2 := hwy.Load(y2[offset:])

			dx := hwy.Sub(vX2, vX1)
			dy := hwy.Sub(vY2, vY1)

			lenSq := hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy))
			hwy.Store(lenSq, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vX1 := hwy.MaskLoad(mask, x1[offset:])
			vY1 := hwy.MaskLoad(mask, y1[offset:])
			vX2 := hwy.MaskLoad(mask, x2[offset:])
			vY2 := hwy.MaskLoad(mask, y2[offset:])

			dx := hwy.Sub(vX2, vX1)
			dy := hwy.Sub(vY2, vY1)

			lenSq := hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy))
			hwy.MaskStore(mask, lenSq, dst[offset:])
		},
	)
}
