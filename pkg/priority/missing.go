package priority

import (
	"cmp"
	"slices"
)

// Missing reports which input values of a species are absent.
type Missing struct {
	Species        string
	Status         bool
	AreaLossSSP245 bool
	AreaLossSSP585 bool
	EOO            bool
	Footprint      bool
	Total          int
}

// MissingReport lists absent values per species, species with most gaps
// first.
func MissingReport(species []Species) []Missing {
	res := make([]Missing, len(species))
	for i, v := range species {
		m := Missing{
			Species:        v.Name.Value,
			Status:         v.Status.Missing,
			AreaLossSSP245: v.AreaLossSSP245.Missing,
			AreaLossSSP585: v.AreaLossSSP585.Missing,
			EOO:            v.EOO.Missing,
			Footprint:      v.Footprint.Missing,
		}
		for _, b := range []bool{
			m.Status, m.AreaLossSSP245, m.AreaLossSSP585, m.EOO, m.Footprint,
		} {
			if b {
				m.Total++
			}
		}
		res[i] = m
	}
	slices.SortStableFunc(res, func(x, y Missing) int {
		return cmp.Compare(y.Total, x.Total)
	})
	return res
}
