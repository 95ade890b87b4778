package priority_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	vl, l, m, h, vh := priority.VeryLow, priority.Low, priority.Medium,
		priority.High, priority.VeryHigh

	tests := []struct {
		msg    string
		scores []float64
		res    []priority.Category
	}{
		{
			"quintiles",
			[]float64{3, 1, 5, 2, 4},
			[]priority.Category{m, vl, vh, l, h},
		},
		{
			"ties on edges",
			[]float64{5.5, 4, 3, 3, 2.5},
			[]priority.Category{vh, h, l, l, vl},
		},
		{
			// edges 3, 3.6, 4.2, 4.6, 4.8, 5
			"three scores",
			[]float64{4.5, 5, 3},
			[]priority.Category{m, vh, vl},
		},
		{
			"constant",
			[]float64{3, 3, 3},
			[]priority.Category{m, m, m},
		},
		{
			"single",
			[]float64{4.25},
			[]priority.Category{m},
		},
		{
			"collapsed edges",
			[]float64{1, 1, 1, 1, 5},
			[]priority.Category{vl, vl, vl, vl, vh},
		},
		{
			"collapsed edges in the middle",
			[]float64{1, 3, 3, 3, 3, 5},
			[]priority.Category{vl, m, m, m, m, vh},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, priority.Categorize(v.scores), v.msg)
	}

	assert.Nil(t, priority.Categorize(nil))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Very low", priority.VeryLow.String())
	assert.Equal(t, "Medium", priority.Medium.String())
	assert.Equal(t, "Very high", priority.VeryHigh.String())
	assert.Equal(t, "", priority.Category(7).String())
}
