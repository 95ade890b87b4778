package priority_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/stretchr/testify/assert"
)

func f(s string) priority.Field {
	return priority.NewField(s)
}

func TestNewField(t *testing.T) {
	missing := []string{"", " ", "NA", "N/A", "#N/A", "#N/D", "-", "NULL", "null", "nan", "NaN", "None", "<NA>"}
	for _, v := range missing {
		fld := priority.NewField(v)
		assert.True(t, fld.Missing, v)
		assert.Empty(t, fld.Value, v)
	}

	fld := priority.NewField(" 42.5 ")
	assert.False(t, fld.Missing)
	assert.Equal(t, "42.5", fld.Value)
	num, ok := fld.Float()
	assert.True(t, ok)
	assert.Equal(t, 42.5, num)

	_, ok = priority.NewField("1,000").Float()
	assert.False(t, ok)
}

func TestStatusScore(t *testing.T) {
	tests := []struct {
		in  string
		res int
	}{
		{"CR", 7}, {"EN", 6}, {"VU", 5}, {"NT", 4}, {"DD", 4},
		{"LC", 3}, {"NE", 1}, {"cr", 7}, {"ne", 1},
		{"EX", 3}, {"", 3}, {"NA", 3}, {"critically endangered", 3},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, priority.StatusScore(f(v.in)), v.in)
	}
}

func TestPercentScores(t *testing.T) {
	tests := []struct {
		in  string
		res int
	}{
		{"100", 5}, {"80.01", 5}, {"80", 4}, {"60.5", 4}, {"60", 3},
		{"41", 3}, {"40", 2}, {"21", 2}, {"20", 1}, {"0", 1}, {"-5", 1},
		{"", 3}, {"#N/D", 3}, {"abc", 3},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, priority.AreaLossScore(f(v.in)), v.in)
		assert.Equal(t, v.res, priority.FootprintScore(f(v.in)), v.in)
	}
}

func TestEOOScore(t *testing.T) {
	tests := []struct {
		in  string
		res int
	}{
		{"0", 5}, {"99.9", 5}, {"100", 4}, {"4999", 4}, {"5000", 3},
		{"19999", 3}, {"20000", 2}, {"49999", 2}, {"50000", 1},
		{"1e6", 1}, {"-", 3}, {"n/a", 3}, {"large", 3},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, priority.EOOScore(f(v.in)), v.in)
	}
}
