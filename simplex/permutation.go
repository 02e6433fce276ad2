package simplex

import (
	"fmt"
	"math"
)

// tableSize is the period of the permutation: one entry per 8-bit
// lattice coordinate hash.
const tableSize = 256

// gradCount is the number of gradient vectors in grad3.
const gradCount = 12

// buildTables shuffles 0..255 with a Fisher–Yates pass driven by src and
// returns the doubled 512-entry permutation table plus its entrywise
// mod-12 companion. Doubling removes wrap-around checks from the hot
// lookup path; the mod-12 table maps hashes straight to gradient
// indices.
//
// Every sample is validated before use: a NaN or out-of-[0,1) value
// fails the whole construction with ErrBadSample rather than silently
// corrupting the permutation.
func buildTables(src Source) (perm, permMod12 [2 * tableSize]uint8, err error) {
	var p [tableSize]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	for i := tableSize - 1; i > 0; i-- {
		f := src.Float64()
		if math.IsNaN(f) || f < 0 || f >= 1 {
			err = fmt.Errorf("%w: got %v at shuffle step %d", ErrBadSample, f, i)

			return
		}
		n := int(f * float64(i+1)) // uniform in [0, i]
		p[i], p[n] = p[n], p[i]
	}

	for i := range perm {
		perm[i] = p[i&(tableSize-1)]
		permMod12[i] = perm[i] % gradCount
	}

	return perm, permMod12, nil
}
