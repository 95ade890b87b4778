package sequence_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/stretchr/testify/assert"
)

func TestSpeciesQuery(t *testing.T) {
	tests := []struct {
		msg, name, variant, res string
	}{
		{
			"single word",
			"Rana temporaria", "COI",
			"COI[Gene] AND Rana temporaria[ORGN]",
		},
		{
			"several words",
			"Rana temporaria", "cytochrome b gene",
			"cytochrome[All Fields] AND b[All Fields] AND gene[All Fields] AND Rana temporaria[ORGN]",
		},
		{
			"parenthesis",
			"Bufo bufo", "(cytb)",
			"(cytb)[Gene] AND Bufo bufo[ORGN]",
		},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, sequence.SpeciesQuery(v.name, v.variant), v.msg)
	}
}

func TestScopeQuery(t *testing.T) {
	assert.Equal(t,
		"Anura[ORGN] AND cytochrome b[Gene]",
		sequence.ScopeQuery("Anura", "cytochrome b"),
	)
}

func TestRankQuery(t *testing.T) {
	assert.Equal(t,
		"Anura[ORGN] AND family[Rank]",
		sequence.RankQuery("Anura", "Family"),
	)
	assert.Equal(t,
		"Ranidae[ORGN] AND genus[Rank]",
		sequence.RankQuery("Ranidae", "genus"),
	)
}
