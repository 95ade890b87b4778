package ioentrez_test

import (
	"context"
	"testing"

	"github.com/gnames/gnbarcode/internal/ioentrez"
	"github.com/gnames/gnbarcode/internal/iotesting"
	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ranaCOI = sequence.Record{
	Accession:  "MN123456.1",
	Definition: "Rana temporaria voucher ZMB 1 cytochrome oxidase subunit I (COI) gene, partial cds; mitochondrial",
	Organism:   "Rana temporaria",
	Length:     658,
	Features: []sequence.Feature{
		{
			Key: "source",
			Qualifiers: []sequence.Qualifier{
				{Name: "organism", Value: "Rana temporaria"},
				{Name: "specimen_voucher", Value: "ZMB 1"},
				{Name: "country", Value: "Germany: Brandenburg, Potsdam & around"},
				{Name: "lat_lon", Value: "52.39 N 13.06 E"},
				{Name: "db_xref", Value: "BOLD:AMPH123-19.COI-5P"},
			},
		},
		{Key: "gene", Qualifiers: []sequence.Qualifier{{Name: "gene", Value: "COI"}}},
	},
}

func fake() *iotesting.NCBI {
	return &iotesting.NCBI{
		Searches: map[string][]string{
			"Rana temporaria[ORGN] AND COI[Gene]": {"1", "2", "3", "4", "5"},
		},
		Records: map[string]sequence.Record{
			"1": ranaCOI,
			"2": {Accession: "MN000002.1", Definition: "Rana sp. COI", Organism: "Rana sp.", Length: 600},
		},
		Taxa: map[string][]iotesting.Taxon{
			"Anura[ORGN] AND family[Rank]": {
				{ID: "8400", Name: "Ranidae", Rank: "family"},
				{ID: "8401", Name: "Ranoidea", Rank: "superfamily"},
			},
		},
		BrokenTerms: map[string]bool{"broken[ORGN]": true},
	}
}

func TestSearch(t *testing.T) {
	f := fake()
	srv := f.Server(t)
	e := ioentrez.New(iotesting.Config(t, srv.URL, srv.URL))

	ids, err := e.Search(context.Background(), "Rana temporaria[ORGN] AND COI[Gene]")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
	// page size is 2, pages 2 and 3 use the history server
	assert.Equal(t, 2, f.HistoryPages())

	ids, err = e.Search(context.Background(), "Bufo[ORGN]")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = e.Search(context.Background(), "broken[ORGN]")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	f := fake()
	srv := f.Server(t)
	e := ioentrez.New(iotesting.Config(t, srv.URL, srv.URL))

	recs, err := e.Fetch(context.Background(), []string{"1", "2", "3"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 3, f.Fetched())
	if diff := cmp.Diff(ranaCOI, recs[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "MN000002.1", recs[1].Accession)
	assert.Empty(t, recs[1].Features)
}

func TestTaxaByRank(t *testing.T) {
	srv := fake().Server(t)
	e := ioentrez.New(iotesting.Config(t, srv.URL, srv.URL))

	res, err := e.TaxaByRank(context.Background(), "Anura", "Family")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ranidae"}, res)

	res, err = e.TaxaByRank(context.Background(), "Ranidae", "genus")
	require.NoError(t, err)
	assert.Empty(t, res)
}
