package priority

import (
	"math"
	"slices"
)

// Category is a priority class of a species.
type Category int

const (
	VeryLow Category = iota
	Low
	Medium
	High
	VeryHigh
)

var categoryNames = []string{"Very low", "Low", "Medium", "High", "Very high"}

func (c Category) String() string {
	if c < VeryLow || c > VeryHigh {
		return ""
	}
	return categoryNames[c]
}

const bins = 5

// Categorize assigns categories to scores by quintiles. Edges of the
// quintiles are interpolated linearly, every bin includes its upper edge
// and the first bin also includes the minimum. If edges coincide,
// the range of scores is split into five bins of equal width instead.
func Categorize(scores []float64) []Category {
	if len(scores) == 0 {
		return nil
	}
	edges := quantileEdges(scores)
	lowest := true
	if !unique(edges) {
		edges = equalWidthEdges(scores)
		lowest = false
	}

	res := make([]Category, len(scores))
	for i, v := range scores {
		res[i] = binOf(v, edges, lowest)
	}
	return res
}

func quantileEdges(scores []float64) []float64 {
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	n := len(sorted)

	res := make([]float64, bins+1)
	for i := range res {
		q := float64(i) * (1.0 / bins)
		pos := q * float64(n-1)
		lo := int(math.Floor(pos))
		hi := min(lo+1, n-1)
		res[i] = lerp(sorted[lo], sorted[hi], pos-float64(lo))
	}
	return res
}

// lerp interpolates between a and b counting from the closer end.
func lerp(a, b, t float64) float64 {
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t)
	}
	return a + diff*t
}

func equalWidthEdges(scores []float64) []float64 {
	lo, hi := slices.Min(scores), slices.Max(scores)
	if lo == hi {
		adj := 0.001
		if lo != 0 {
			adj = 0.001 * math.Abs(lo)
		}
		lo, hi = lo-adj, hi+adj
		return linspace(lo, hi)
	}

	res := linspace(lo, hi)
	res[0] -= (hi - lo) * 0.001
	return res
}

func linspace(lo, hi float64) []float64 {
	res := make([]float64, bins+1)
	step := (hi - lo) / bins
	for i := range res {
		res[i] = lo + float64(i)*step
	}
	res[bins] = hi
	return res
}

func unique(edges []float64) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i] == edges[i-1] {
			return false
		}
	}
	return true
}

// binOf finds the bin (edges[i], edges[i+1]] holding v.
func binOf(v float64, edges []float64, lowest bool) Category {
	if lowest && v == edges[0] {
		return VeryLow
	}
	for i := 1; i < len(edges); i++ {
		if v <= edges[i] {
			return Category(max(i-1, 0))
		}
	}
	return VeryHigh
}
