package ioprior

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/pkg/priority"
)

// Input columns. Species name is taken from the first of speciesColumns
// present in the header.
const (
	colStatus    = "iucn_status"
	colArea245   = "area_loss_ssp245"
	colArea585   = "area_loss_ssp585"
	colEOO       = "terrestrial_eoo"
	colFootprint = "human_footprint"
)

var speciesColumns = []string{"species_name", "species"}

// ReadSpecies reads species data from a CSV file, or a TSV file if it
// has .tsv extension. Absent columns and empty cells become missing
// fields.
func ReadSpecies(path string) ([]priority.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, PriorityEmptyInputError(path)
		}
		return nil, PriorityInputError(path, err)
	}
	idx := columns(header)

	nameIdx := -1
	for _, v := range speciesColumns {
		if i, ok := idx[v]; ok {
			nameIdx = i
			break
		}
	}
	if nameIdx == -1 {
		return nil, PriorityInputError(path, errors.New("no species column"))
	}

	field := func(row []string, col string) priority.Field {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return priority.Field{Missing: true}
		}
		return priority.NewField(row[i])
	}

	var res []priority.Species
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, PriorityInputError(path, err)
		}
		if blank(row) {
			continue
		}

		name := priority.Field{Missing: true}
		if nameIdx < len(row) {
			name = priority.NewField(row[nameIdx])
		}
		res = append(res, priority.Species{
			Name:           name,
			Status:         field(row, colStatus),
			AreaLossSSP245: field(row, colArea245),
			AreaLossSSP585: field(row, colArea585),
			EOO:            field(row, colEOO),
			Footprint:      field(row, colFootprint),
		})
	}

	if len(res) == 0 {
		return nil, PriorityEmptyInputError(path)
	}
	return res, nil
}

// columns maps normalized column names to their positions. The first
// occurrence of a name wins.
func columns(header []string) map[string]int {
	res := make(map[string]int, len(header))
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.ToLower(strings.TrimSpace(v))
		if _, ok := res[v]; !ok {
			res[v] = i
		}
	}
	return res
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
