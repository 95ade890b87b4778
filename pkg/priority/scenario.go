package priority

import (
	"math"
	"slices"
)

// Scenario is a climate change scenario of area loss projection.
type Scenario int

const (
	SSP245 Scenario = iota
	SSP585
)

func (s Scenario) String() string {
	if s == SSP585 {
		return "ssp585"
	}
	return "ssp245"
}

// Scenarios lists supported scenarios.
func Scenarios() []Scenario {
	return []Scenario{SSP245, SSP585}
}

// Species is a row of the input table.
type Species struct {
	Name           Field
	Status         Field
	AreaLossSSP245 Field
	AreaLossSSP585 Field
	EOO            Field
	Footprint      Field
}

// AreaLoss returns area loss for a scenario.
func (s Species) AreaLoss(sc Scenario) Field {
	if sc == SSP585 {
		return s.AreaLossSSP585
	}
	return s.AreaLossSSP245
}

// Criterion is one of the four criteria of the score.
type Criterion int

const (
	CriterionStatus Criterion = iota
	CriterionAreaLoss
	CriterionEOO
	CriterionFootprint
)

// Criteria lists criteria in the order of output columns.
func Criteria() []Criterion {
	return []Criterion{
		CriterionStatus, CriterionAreaLoss, CriterionEOO, CriterionFootprint,
	}
}

// Row is the result of scoring one species under one scenario.
type Row struct {
	// Index is the position of the species in the input.
	Index int

	Species   string
	Status    Field
	AreaLoss  Field
	EOO       Field
	Footprint Field

	// Scores are integer scores per criterion.
	Scores [4]int

	// Contributions are weighted scores, they sum to FinalScore.
	Contributions [4]float64

	// Percents are shares of contributions in FinalScore, rounded to
	// two decimals.
	Percents [4]float64

	FinalScore float64
	Category   Category

	// Rank is the 1-based position by FinalScore, descending.
	Rank int
}

// Score computes scores, categories and ranks of species under a
// scenario. Rows are returned sorted by rank.
func Score(species []Species, sc Scenario) []Row {
	res := make([]Row, len(species))
	finals := make([]float64, len(species))
	for i, v := range species {
		res[i] = scoreRow(i, v, sc)
		finals[i] = res[i].FinalScore
	}

	cats := Categorize(finals)
	for i := range res {
		res[i].Category = cats[i]
	}

	slices.SortStableFunc(res, func(a, b Row) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		default:
			return 0
		}
	})
	for i := range res {
		res[i].Rank = i + 1
	}
	return res
}

func scoreRow(idx int, sp Species, sc Scenario) Row {
	res := Row{
		Index:     idx,
		Species:   sp.Name.Value,
		Status:    sp.Status,
		AreaLoss:  sp.AreaLoss(sc),
		EOO:       sp.EOO,
		Footprint: sp.Footprint,
	}
	res.Scores = [4]int{
		StatusScore(res.Status),
		AreaLossScore(res.AreaLoss),
		EOOScore(res.EOO),
		FootprintScore(res.Footprint),
	}
	for i, v := range res.Scores {
		res.Contributions[i] = float64(v) * Weight
		res.FinalScore += res.Contributions[i]
	}
	// every score is at least 1, FinalScore is never zero
	for i, v := range res.Contributions {
		res.Percents[i] = round2(v / res.FinalScore * 100)
	}
	return res
}

func round2(f float64) float64 {
	return math.RoundToEven(f*100) / 100
}
