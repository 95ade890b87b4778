package sequence_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/stretchr/testify/assert"
)

func source(qs ...string) sequence.Feature {
	f := sequence.Feature{Key: "source"}
	for i := 0; i+1 < len(qs); i += 2 {
		f.Qualifiers = append(f.Qualifiers,
			sequence.Qualifier{Name: qs[i], Value: qs[i+1]})
	}
	return f
}

func TestVoucher(t *testing.T) {
	fs := []sequence.Feature{
		{Key: "gene"},
		source("specimen_voucher", "QCAZ 45678"),
		source("specimen_voucher", "other"),
	}
	assert.Equal(t, "QCAZ 45678", sequence.Voucher(fs))
	assert.Equal(t, "NA", sequence.Voucher([]sequence.Feature{source()}))
	assert.Equal(t, "NA", sequence.Voucher(nil))
}

func TestLocation(t *testing.T) {
	tests := []struct {
		msg                       string
		fs                        []sequence.Feature
		country, region, locality string
	}{
		{
			"full",
			[]sequence.Feature{source("country", "Ecuador: Napo, Tena, Rio Pano")},
			"Ecuador", "Napo", "Tena,  Rio Pano",
		},
		{
			"country and region",
			[]sequence.Feature{source("country", "Peru: Cusco")},
			"Peru", "Cusco", "NA",
		},
		{
			"country only",
			[]sequence.Feature{source("country", "Brazil")},
			"Brazil", "NA", "NA",
		},
		{
			"geo_loc_name",
			[]sequence.Feature{source("geo_loc_name", "Chile: Los Lagos, Chiloe")},
			"Chile", "Los Lagos", "Chiloe",
		},
		{
			"country is preferred",
			[]sequence.Feature{source(
				"geo_loc_name", "Chile", "country", "Argentina",
			)},
			"Argentina", "NA", "NA",
		},
		{
			"only first feature",
			[]sequence.Feature{{Key: "source"}, source("country", "Peru")},
			"NA", "NA", "NA",
		},
		{"empty", nil, "NA", "NA", "NA"},
	}

	for _, v := range tests {
		c, r, l := sequence.Location(v.fs)
		assert.Equal(t, v.country, c, v.msg)
		assert.Equal(t, v.region, r, v.msg)
		assert.Equal(t, v.locality, l, v.msg)
	}
}

func TestLatLon(t *testing.T) {
	tests := []struct {
		val, lat, lon string
	}{
		{"0.99 S 77.81 W", "0.99 S", "77.81 W"},
		{"-12.5 N 130.2 E extra", "-12.5 N", "130.2 E"},
		{"12.5N 130.2E", "NA", "NA"},
		{"", "NA", "NA"},
	}
	for _, v := range tests {
		lat, lon := sequence.LatLon([]sequence.Feature{source("lat_lon", v.val)})
		assert.Equal(t, v.lat, lat, v.val)
		assert.Equal(t, v.lon, lon, v.val)
	}

	lat, lon := sequence.LatLon(nil)
	assert.Equal(t, "NA", lat)
	assert.Equal(t, "NA", lon)
}

func TestCollectionDate(t *testing.T) {
	fs := []sequence.Feature{
		source("organism", "Rana temporaria"),
		source("collection_date", "12-May-2015"),
	}
	assert.Equal(t, "12-May-2015", sequence.CollectionDate(fs))
	assert.Equal(t, "NA", sequence.CollectionDate(fs[:1]))
}

func TestBoldID(t *testing.T) {
	fs := []sequence.Feature{
		source("db_xref", "taxon:8407"),
		{
			Key: "CDS",
			Qualifiers: []sequence.Qualifier{
				{Name: "db_xref", Value: "BOLD:GBAN1234-13.COI-5P"},
				{Name: "db_xref", Value: "BOLD:OTHER-1.COI-5P"},
			},
		},
	}
	assert.Equal(t, "GBAN1234-13", sequence.BoldID(fs))
	assert.Equal(t, "NA", sequence.BoldID(fs[:1]))
}
