package ioitis_test

import (
	"context"
	"testing"

	"github.com/gnames/gnbarcode/internal/ioitis"
	"github.com/gnames/gnbarcode/internal/iotesting"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fake() *iotesting.ITIS {
	return &iotesting.ITIS{
		Nodes: map[string]taxonomy.Node{
			"173423": {Name: "Anura", Rank: "Order"},
			"173435": {Name: "Ranidae", Rank: "Family"},
			"173440": {Name: "Rana temporaria", Rank: "Species"},
		},
		Children: map[string][]string{
			"173423": {"173435"},
			"173435": {"173440"},
		},
		Synonyms: map[string][]string{
			"173440": {"Rana muta Laurenti, 1768", "Rana fusca"},
		},
		Broken: map[string]bool{"999": true},
	}
}

func TestNode(t *testing.T) {
	f := fake()
	srv := f.Server(t)
	cfg := iotesting.Config(t, srv.URL, srv.URL)
	itis := ioitis.New(cfg)

	n, err := itis.Node(context.Background(), "173423")
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Node{TSN: "173423", Name: "Anura", Rank: "Order"}, n)

	_, err = itis.Node(context.Background(), "1")
	assert.Error(t, err)

	_, err = itis.Node(context.Background(), "999")
	assert.Error(t, err)
	assert.Equal(t, 2, f.Calls("getTaxonomicRankNameFromTSN", "999"))
}

func TestChildren(t *testing.T) {
	srv := fake().Server(t)
	itis := ioitis.New(iotesting.Config(t, srv.URL, srv.URL))

	res, err := itis.Children(context.Background(), "173435")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Rana temporaria", res[0].Name)
	assert.True(t, res[0].IsSpecies())

	res, err = itis.Children(context.Background(), "173440")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSynonyms(t *testing.T) {
	srv := fake().Server(t)
	itis := ioitis.New(iotesting.Config(t, srv.URL, srv.URL))

	res, err := itis.Synonyms(context.Background(), "173440")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rana muta Laurenti, 1768", "Rana fusca"}, res)

	res, err = itis.Synonyms(context.Background(), "173435")
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = itis.Synonyms(context.Background(), "999")
	assert.Error(t, err)
}

func TestCancelled(t *testing.T) {
	srv := fake().Server(t)
	itis := ioitis.New(iotesting.Config(t, srv.URL, srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := itis.Children(ctx, "173423")
	assert.Error(t, err)
}
