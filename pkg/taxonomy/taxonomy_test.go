package taxonomy_test

import (
	"testing"

	"github.com/gnames/gnbarcode/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestIsSpecies(t *testing.T) {
	tests := []struct {
		rank string
		res  bool
	}{
		{"Species", true},
		{"species ", true},
		{"Subspecies", false},
		{"Genus", false},
		{"", false},
	}
	for _, v := range tests {
		n := taxonomy.Node{Rank: v.rank}
		assert.Equal(t, v.res, n.IsSpecies(), v.rank)
	}
}

func TestNames(t *testing.T) {
	tx := taxonomy.Taxon{
		Name:     "Rana temporaria",
		Synonyms: []string{"Rana muta", "Rana fusca"},
	}
	assert.Equal(t,
		[]string{"Rana temporaria", "Rana muta", "Rana fusca"},
		tx.Names(),
	)

	tx = taxonomy.Taxon{Name: "Bufo bufo"}
	assert.Equal(t, []string{"Bufo bufo"}, tx.Names())
}
