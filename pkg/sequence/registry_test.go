package sequence_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	reg := sequence.NewRegistry()
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Has("MN1.1"))

	recs := []sequence.SequenceRecord{
		{Accession: "MN1.1", Gene: sequence.GeneCOI, Species: "A a"},
		{Accession: "MN2.1", Gene: sequence.GeneCYTB},
		{Accession: "MN1.1", Gene: sequence.GeneCOI, Species: "B b"},
		{Accession: "MN1.2", Gene: sequence.GeneUnknown},
	}
	added := 0
	for _, v := range recs {
		if reg.Add(v) {
			added++
		}
	}
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, reg.Len())

	seen := make(map[string]struct{})
	for _, v := range reg.Records() {
		_, ok := seen[v.Accession]
		assert.False(t, ok, v.Accession)
		seen[v.Accession] = struct{}{}
	}

	coi := reg.ByGene(sequence.GeneCOI)
	assert.Len(t, coi, 1)
	assert.Equal(t, "A a", coi[0].Species)
	assert.Len(t, reg.ByGene(sequence.GeneCYTB), 1)

	// returned slice is a copy
	all := reg.Records()
	all[0].Species = "changed"
	assert.Equal(t, "A a", reg.Records()[0].Species)
}
