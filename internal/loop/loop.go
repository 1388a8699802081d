// Package loop maps between continuous carousel progress and item indices,
// with optional wrap-around over a finite item set.
package loop

import "math"

// PhysicalIndex returns the item index that progress falls in.
// With loop it is floor(progress) mod itemCount, otherwise floor(progress)
// clamped to [0, itemCount-1]. Returns 0 when itemCount is 0.
func PhysicalIndex(progress float64, itemCount int, loop bool) int {
	return project(math.Floor(progress), itemCount, loop)
}

// NearestIndex returns the item index closest to progress, which is the
// carousel's current index. Same projection as PhysicalIndex but rounding.
func NearestIndex(progress float64, itemCount int, loop bool) int {
	return project(math.Round(progress), itemCount, loop)
}

func project(logical float64, itemCount int, loop bool) int {
	if itemCount <= 0 || math.IsNaN(logical) {
		return 0
	}
	if loop {
		if math.IsInf(logical, 0) {
			return 0
		}
		return int(wrapFloat(logical, float64(itemCount)))
	}
	return Clamp(clampToInt(logical), itemCount)
}

// ShortestDelta returns the signed delta with the smallest magnitude that
// reaches to from from. With loop the delta may wrap in either direction;
// ties (exactly half the ring away) go forward.
func ShortestDelta(from, to, itemCount int, loop bool) float64 {
	if itemCount <= 0 {
		return 0
	}
	if !loop {
		return float64(Clamp(to, itemCount) - Clamp(from, itemCount))
	}
	d := Wrap(to-from, itemCount)
	if 2*d > itemCount {
		d -= itemCount
	}
	return float64(d)
}

// Wrap reduces index into [0, n). Returns 0 when n is 0.
func Wrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index % n) + n) % n
}

// Clamp limits index to [0, n-1]. Returns 0 when n is 0.
func Clamp(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

// ClampProgress limits progress to [0, n-1]. The second return value reports
// whether the value was changed.
func ClampProgress(progress float64, n int) (float64, bool) {
	maxProgress := float64(max(n-1, 0))
	switch {
	case progress < 0:
		return 0, true
	case progress > maxProgress:
		return maxProgress, true
	default:
		return progress, false
	}
}

// WrapOffset reduces a relative offset into the half-open range [lo, lo+n).
// Used to pick the logical copy of a looped item that is closest to the
// viewport.
func WrapOffset(offset float64, n int, lo float64) float64 {
	if n <= 0 {
		return offset
	}
	return lo + wrapFloat(offset-lo, float64(n))
}

func wrapFloat(v, n float64) float64 {
	r := math.Mod(v, n)
	if r < 0 {
		r += n
	}
	// math.Mod of a tiny negative value can round up to n.
	if r >= n {
		r = 0
	}
	return r
}

func clampToInt(v float64) int {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int(v)
	}
}
