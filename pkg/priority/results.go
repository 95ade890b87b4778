package priority

import (
	"strconv"
	"strings"

	"github.com/gnames/gnbarcode/pkg/table"
)

// Results contains all outputs of prioritization.
type Results struct {
	// Rows are ranked rows per scenario.
	Rows        map[Scenario][]Row
	Comparison  []Comparison
	RankChanges []RankChange
	Missing     []Missing
}

// Compute scores species under all scenarios and compares the
// outcomes.
func Compute(species []Species) *Results {
	res := &Results{Rows: make(map[Scenario][]Row)}
	for _, sc := range Scenarios() {
		res.Rows[sc] = Score(species, sc)
	}
	res.Comparison = Compare(res.Rows[SSP245], res.Rows[SSP585])
	res.RankChanges = RankChanges(res.Rows[SSP245], res.Rows[SSP585])
	res.Missing = MissingReport(species)
	return res
}

// Tables converts results to tables ready for export.
func (r *Results) Tables() []*table.Table {
	var res []*table.Table
	for _, sc := range Scenarios() {
		res = append(res, scenarioTable(sc, r.Rows[sc]))
	}
	for _, sc := range Scenarios() {
		res = append(res, contributionsTable(sc, r.Rows[sc]))
	}
	res = append(res,
		comparisonTable(r.Comparison),
		rankChangesTable(r.RankChanges),
		missingTable(r.Missing),
	)
	return res
}

func scenarioTable(sc Scenario, rows []Row) *table.Table {
	res := table.New(sc.String(),
		"rank",
		"species",
		"iucn_status",
		"area_loss (%) "+sc.String(),
		"terrestrial eoo (km2)",
		"human_footprint (%)",
		"final_score",
		"priority_category",
	)
	for _, v := range rows {
		res.Add(
			strconv.Itoa(v.Rank),
			v.Species,
			v.Status.Value,
			v.AreaLoss.Value,
			v.EOO.Value,
			v.Footprint.Value,
			FormatFloat(v.FinalScore),
			v.Category.String(),
		)
	}
	return res
}

func contributionsTable(sc Scenario, rows []Row) *table.Table {
	res := table.New("contributions_"+sc.String(),
		"species name",
		"iucn contribution",
		"area loss contribution",
		"terrestrial eoo (km2) contribution",
		"human footprint contribution",
	)
	for _, v := range rows {
		cells := []string{v.Species}
		for _, p := range v.Percents {
			cells = append(cells, FormatPercent(p))
		}
		res.Add(cells...)
	}
	return res
}

func comparisonTable(cs []Comparison) *table.Table {
	res := table.New("comparison",
		"species",
		"score_ssp245",
		"category_ssp245",
		"score_ssp585",
		"category_ssp585",
		"score_difference",
	)
	for _, v := range cs {
		res.Add(
			v.Species,
			FormatFloat(v.ScoreSSP245),
			v.CatSSP245.String(),
			FormatFloat(v.ScoreSSP585),
			v.CatSSP585.String(),
			FormatFloat(v.Difference),
		)
	}
	return res
}

func rankChangesTable(rcs []RankChange) *table.Table {
	res := table.New("rank_changes",
		"species",
		"rank_ssp245",
		"category_ssp245",
		"rank_ssp585",
		"category_ssp585",
		"rank_change",
	)
	for _, v := range rcs {
		res.Add(
			v.Species,
			strconv.Itoa(v.RankSSP245),
			v.CatSSP245.String(),
			strconv.Itoa(v.RankSSP585),
			v.CatSSP585.String(),
			strconv.Itoa(v.Change),
		)
	}
	return res
}

func missingTable(ms []Missing) *table.Table {
	res := table.New("missing_data_report",
		"species",
		"iucn_missing",
		"area_loss_ssp245_missing",
		"area_loss_ssp585_missing",
		"eoo_missing",
		"human_footprint_missing",
		"total_missing",
	)
	for _, v := range ms {
		res.Add(
			v.Species,
			formatBool(v.Status),
			formatBool(v.AreaLossSSP245),
			formatBool(v.AreaLossSSP585),
			formatBool(v.EOO),
			formatBool(v.Footprint),
			strconv.Itoa(v.Total),
		)
	}
	return res
}

// FormatFloat renders a number with the shortest exact representation
// that always has a fractional part, for example "5.5" or "4.0".
func FormatFloat(f float64) string {
	res := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(res, ".NI") {
		res += ".0"
	}
	return res
}

// FormatPercent renders a percentage, for example "25.0%".
func FormatPercent(f float64) string {
	return FormatFloat(f) + "%"
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
