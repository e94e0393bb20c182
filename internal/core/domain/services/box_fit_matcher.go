package services

import "eligibility/internal/core/domain/model/kernel"

// BoxFitMatcher decides whether a package fits a fixed envelope in some axis-aligned orientation.
//
// Both sides are sorted descending and compared slot by slot. This misses the rare
// diagonal placements a real packer could find, so it may reject a package that would
// physically fit; it never accepts one that would not.
type BoxFitMatcher struct{}

func NewBoxFitMatcher() BoxFitMatcher {
	return BoxFitMatcher{}
}

// Fits reports pkg[i] <= boxMax[i] for every sorted slot and, when boxMin is given,
// pkg[i] >= boxMin[i]. A nil envelope imposes nothing.
func (BoxFitMatcher) Fits(dims kernel.Dimensions, boxMax, boxMin *kernel.Dimensions) bool {
	pkg := dims.Sorted()

	if boxMax != nil {
		limit := boxMax.Sorted()
		for i := range pkg {
			if pkg[i] > limit[i] {
				return false
			}
		}
	}

	if boxMin != nil {
		floor := boxMin.Sorted()
		for i := range pkg {
			if pkg[i] < floor[i] {
				return false
			}
		}
	}

	return true
}
