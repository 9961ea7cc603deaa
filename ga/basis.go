package ga

import (
	"fmt"
	"sort"
)

// basisEntry is a generated basis blade before any metric weighting.
type basisEntry struct {
	bitmap uint64
	label  string
	grade  int
}

// generateBasis enumerates all 2^d k-subsets of {base..base+d-1}, labeling
// the scalar "<prefix>_" and a k-subset {i1<...<ik} as "<prefix>i1i2...ik".
func generateBasis(prefix string, base, d int) []basisEntry {
	n := 1 << d
	out := make([]basisEntry, 0, n)
	for bitmap := 0; bitmap < n; bitmap++ {
		var idx []int
		for i := 0; i < d; i++ {
			if bitmap&(1<<i) != 0 {
				idx = append(idx, base+i)
			}
		}
		label := prefix
		if len(idx) == 0 {
			label += "_"
		} else {
			for _, i := range idx {
				label += fmt.Sprintf("%d", i)
			}
		}
		out = append(out, basisEntry{bitmap: uint64(bitmap), label: label, grade: len(idx)})
	}
	return out
}

// basisByGrade stable-sorts entries by (grade, bitmap).
func basisByGrade(entries []basisEntry) []basisEntry {
	out := make([]basisEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].grade != out[j].grade {
			return out[i].grade < out[j].grade
		}
		return out[i].bitmap < out[j].bitmap
	})
	return out
}
