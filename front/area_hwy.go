package front

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch shoelace accumulation (Structure of Arrays)
// A closed loop's doubled signed area is the sum of x1*y2 - y1*x2 over its
// edges. Refinement multiplies the edge count, and the area cache is rebuilt
// after every refinement pass, so the accumulation runs in SIMD lanes over
// de-interleaved endpoint coordinates.

// BaseBatchCrossSum returns sum(x1[i]*y2[i] - y1[i]*x2[i]) over all edges.
func BaseBatchCrossSum[T hwy.Floats](x1, y1, x2, y2 []T) T {
	size := min(len(x1), len(y1), len(x2), len(y2))

	vSum := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vX1 := hwy.Load(x1[offset:])
			vY1 := hwy.Load(y1[offset:])
			vX2 := hwy.Load(x2[offset:])
			vY2 := hwy.Load(y2[offset:])

			cross := hwy.Sub(hwy.Mul(vX1, vY2), hwy.Mul(vY1, vX2))
			vSum = hwy.Add(vSum, cross)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vX1 := hwy.MaskLoad(mask, x1[offset:])
			vY1 := hwy.MaskLoad(mask, y1[offset:])
			vX2 := hwy.MaskLoad(mask, x2[offset:])
			vY2 := hwy.MaskLoad(mask, y2[offset:])

			// Masked-out lanes load as zero and contribute zero to the
			// cross term, so no IfThenElse is needed before the add.
			cross := hwy.Sub(hwy.Mul(vX1, vY2), hwy.Mul(vY1, vX2))
			vSum = hwy.Add(vSum, cross)
		},
	)

	return hwy.ReduceSum(vSum)
}
