package ioharvest

import (
	"strconv"
	"strings"

	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/gnames/gnbarcode/pkg/table"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
)

var sequenceColumns = []string{
	"GenBank Accession",
	"Species",
	"Search Method",
	"Locus",
	"Specimen Voucher",
	"Country",
	"Province/State",
	"Locality",
	"Latitude",
	"Longitude",
	"Num bp",
	"Collect Date",
	"BOLD ID",
	"Queried Name",
}

var speciesColumns = []string{
	"TSN",
	"Scientific Name",
	"Synonyms",
	"Name ID",
	"COI Sequences",
	"CYTB Sequences",
}

// tables converts harvest results to tables for export: records of each
// marker, all records and species with their synonyms.
func tables(
	taxa []taxonomy.Taxon,
	recs []sequence.SequenceRecord,
) []*table.Table {
	var coi, cytb []sequence.SequenceRecord
	for _, v := range recs {
		switch v.Gene {
		case sequence.GeneCOI:
			coi = append(coi, v)
		case sequence.GeneCYTB:
			cytb = append(cytb, v)
		}
	}

	return []*table.Table{
		sequenceTable("coi", coi),
		sequenceTable("cytb", cytb),
		sequenceTable("rawdata", recs),
		speciesTable(taxa, recs),
	}
}

func sequenceTable(name string, recs []sequence.SequenceRecord) *table.Table {
	res := table.New(name, sequenceColumns...)
	for _, v := range recs {
		res.Add(
			v.Accession,
			v.Species,
			v.Method.String(),
			v.Gene.String(),
			v.Voucher,
			v.Country,
			v.Region,
			v.Locality,
			v.Latitude,
			v.Longitude,
			strconv.Itoa(v.Length),
			v.CollectionDate,
			v.BoldID,
			v.QueriedName,
		)
	}
	return res
}

// speciesTable lists species with the number of accepted records of each
// marker. Records flagged as synonym matches count for their species.
func speciesTable(
	taxa []taxonomy.Taxon,
	recs []sequence.SequenceRecord,
) *table.Table {
	counts := make(map[string][2]int)
	for _, v := range recs {
		key := strings.ToLower(strings.TrimSuffix(v.Species, "*"))
		c := counts[key]
		switch v.Gene {
		case sequence.GeneCOI:
			c[0]++
		case sequence.GeneCYTB:
			c[1]++
		}
		counts[key] = c
	}

	res := table.New("species_synonyms", speciesColumns...)
	for _, v := range taxa {
		syns := sequence.NA
		if len(v.Synonyms) > 0 {
			syns = strings.Join(v.Synonyms, "; ")
		}
		c := counts[strings.ToLower(v.Name)]
		res.Add(
			v.TSN,
			v.Name,
			syns,
			v.NameID,
			strconv.Itoa(c[0]),
			strconv.Itoa(c[1]),
		)
	}
	return res
}
