package priority_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/gnames/gnbarcode/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	res := priority.Compute(compareInput())
	tbls := res.Tables()

	var names []string
	byName := make(map[string]*table.Table)
	for _, v := range tbls {
		names = append(names, v.Name)
		byName[v.Name] = v
		assert.Equal(t, 3, v.Len(), v.Name)
	}
	assert.Equal(t, []string{
		"ssp245", "ssp585",
		"contributions_ssp245", "contributions_ssp585",
		"comparison", "rank_changes", "missing_data_report",
	}, names)

	ssp585 := byName["ssp585"]
	assert.Equal(t, "area_loss (%) ssp585", ssp585.Columns[3])
	assert.Equal(t,
		[]string{"1", "b", "CR", "50", "50", "90", "5.0", "Very high"},
		ssp585.Rows[0],
	)

	contrib := byName["contributions_ssp245"]
	assert.Equal(t, []int{1, 2, 3, 4}, contrib.ContributionColumns())
	// b: CR 7, area 3, eoo 5, footprint 5
	assert.Equal(t,
		[]string{"b", "35.0%", "15.0%", "25.0%", "25.0%"},
		contrib.Rows[0],
	)
	assert.Equal(t, 1, contrib.MaxContribution(contrib.Rows[0]))

	cmp := byName["comparison"]
	// ssp585 scores 4.5, 5.0, 3.0 give edges 3, 3.6, 4.2, 4.6, 4.8, 5
	assert.Equal(t, []string{"a", "3.5", "Very low", "4.5", "Medium", "1.0"}, cmp.Rows[0])

	rc := byName["rank_changes"]
	assert.Equal(t, "rank_change", rc.Columns[5])
	assert.Equal(t, "1", rc.Rows[0][5])

	miss := byName["missing_data_report"]
	assert.Equal(t, []string{"a", "False", "False", "False", "False", "False", "0"}, miss.Rows[0])
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in  float64
		res string
	}{
		{5.5, "5.5"},
		{4, "4.0"},
		{0, "0.0"},
		{-1, "-1.0"},
		{31.82, "31.82"},
		{22.73, "22.73"},
		{0.25, "0.25"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, priority.FormatFloat(v.in))
	}
	assert.Equal(t, "25.0%", priority.FormatPercent(25))
}

func TestComputeEmpty(t *testing.T) {
	res := priority.Compute(nil)
	require.NotNil(t, res)
	for _, v := range res.Tables() {
		assert.Equal(t, 0, v.Len())
		assert.NotEmpty(t, v.Columns)
	}
}
