// Package priority scores species for conservation priority by four
// equally weighted criteria: IUCN status, loss of suitable area under a
// climate scenario, extent of occurrence and overlap with human
// footprint.
package priority

import (
	"strconv"
	"strings"
)

// Weight of every criterion in the final score.
const Weight = 0.25

// NeutralScore is given to missing or unparsable values.
const NeutralScore = 3

// missingTokens are cell values treated as absent data.
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {},
	"-1.#QNAN": {}, "-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {},
	"<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {}, "#N/D": {}, "-": {},
}

// Field is a cell of the input table.
type Field struct {
	Value   string
	Missing bool
}

// NewField creates a Field from a raw cell, recognizing missing-data
// tokens.
func NewField(raw string) Field {
	raw = strings.TrimSpace(raw)
	if _, ok := missingTokens[raw]; ok {
		return Field{Missing: true}
	}
	return Field{Value: raw}
}

// Float parses the field as a number.
func (f Field) Float() (float64, bool) {
	if f.Missing {
		return 0, false
	}
	res, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0, false
	}
	return res, true
}

var statusScores = map[string]int{
	"CR": 7,
	"EN": 6,
	"VU": 5,
	"NT": 4,
	// data deficient species are of more concern than LC and NE
	"DD": 4,
	"LC": 3,
	"NE": 1,
}

// StatusScore scores an IUCN Red List category.
func StatusScore(f Field) int {
	if f.Missing {
		return NeutralScore
	}
	if res, ok := statusScores[strings.ToUpper(f.Value)]; ok {
		return res
	}
	return NeutralScore
}

// AreaLossScore scores the percentage of suitable area lost.
func AreaLossScore(f Field) int {
	return percentScore(f)
}

// FootprintScore scores the percentage of the range overlapping with
// human footprint.
func FootprintScore(f Field) int {
	return percentScore(f)
}

// EOOScore scores the extent of occurrence in square kilometers, smaller
// ranges score higher.
func EOOScore(f Field) int {
	eoo, ok := f.Float()
	if !ok {
		return NeutralScore
	}
	switch {
	case eoo < 100:
		return 5
	case eoo < 5000:
		return 4
	case eoo < 20000:
		return 3
	case eoo < 50000:
		return 2
	default:
		return 1
	}
}

func percentScore(f Field) int {
	pct, ok := f.Float()
	if !ok {
		return NeutralScore
	}
	switch {
	case pct > 80:
		return 5
	case pct > 60:
		return 4
	case pct > 40:
		return 3
	case pct > 20:
		return 2
	default:
		return 1
	}
}
