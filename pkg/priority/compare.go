package priority

import (
	"cmp"
	"slices"
)

// Comparison shows how the final score of a species changes between
// scenarios.
type Comparison struct {
	Species     string
	ScoreSSP245 float64
	CatSSP245   Category
	ScoreSSP585 float64
	CatSSP585   Category

	// Difference is ScoreSSP585 - ScoreSSP245.
	Difference float64
}

// RankChange shows how the rank of a species changes between scenarios.
type RankChange struct {
	Species    string
	RankSSP245 int
	CatSSP245  Category
	RankSSP585 int
	CatSSP585  Category

	// Change is RankSSP245 - RankSSP585, positive values mean higher
	// priority under SSP585.
	Change int
}

// Compare joins scenario rows by input position. The result is sorted
// by score difference, largest first.
func Compare(ssp245, ssp585 []Row) []Comparison {
	a, b := byIndex(ssp245), byIndex(ssp585)
	res := make([]Comparison, 0, len(a))
	for i, r245 := range a {
		if i >= len(b) {
			break
		}
		r585 := b[i]
		res = append(res, Comparison{
			Species:     r245.Species,
			ScoreSSP245: r245.FinalScore,
			CatSSP245:   r245.Category,
			ScoreSSP585: r585.FinalScore,
			CatSSP585:   r585.Category,
			Difference:  r585.FinalScore - r245.FinalScore,
		})
	}
	slices.SortStableFunc(res, func(x, y Comparison) int {
		return cmp.Compare(y.Difference, x.Difference)
	})
	return res
}

// RankChanges joins scenario rows by input position. The result is
// sorted by rank change, largest first.
func RankChanges(ssp245, ssp585 []Row) []RankChange {
	a, b := byIndex(ssp245), byIndex(ssp585)
	res := make([]RankChange, 0, len(a))
	for i, r245 := range a {
		if i >= len(b) {
			break
		}
		r585 := b[i]
		res = append(res, RankChange{
			Species:    r245.Species,
			RankSSP245: r245.Rank,
			CatSSP245:  r245.Category,
			RankSSP585: r585.Rank,
			CatSSP585:  r585.Category,
			Change:     r245.Rank - r585.Rank,
		})
	}
	slices.SortStableFunc(res, func(x, y RankChange) int {
		return cmp.Compare(y.Change, x.Change)
	})
	return res
}

func byIndex(rows []Row) []Row {
	res := slices.Clone(rows)
	slices.SortFunc(res, func(x, y Row) int {
		return cmp.Compare(x.Index, y.Index)
	})
	return res
}
