package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnbarcode/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	for _, code := range []nomcode.Code{nomcode.Zoological, nomcode.Botanical} {
		res, err := pool.Parse("Rana temporaria Linnaeus, 1758", code)
		require.NoError(t, err)
		assert.True(t, res.Parsed)
	}

	_, err := pool.Parse("Rana temporaria", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	tests := []struct {
		msg, name, canonical string
		ok                   bool
	}{
		{"author", "Rana temporaria Linnaeus, 1758", "Rana temporaria", true},
		{"parenthesized author", "Hyla arborea (Linnaeus, 1758)", "Hyla arborea", true},
		{"spaces", "  Bufo bufo  ", "Bufo bufo", true},
		{"subspecies", "Rana arvalis wolterstorffi Fejérváry, 1919", "Rana arvalis wolterstorffi", true},
		{"empty", "   ", "", false},
	}

	for _, v := range tests {
		res, ok := pool.Canonical(v.name, nomcode.Zoological)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.canonical, res, v.msg)
	}
}

func TestCanonicalConcurrent(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	names := []string{
		"Rana temporaria Linnaeus, 1758",
		"Bufo bufo (Linnaeus, 1758)",
		"Hyla arborea",
		"Pelophylax ridibundus Pallas, 1771",
	}

	var wg sync.WaitGroup
	res := make([]string, 40)
	for i := range res {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i], _ = pool.Canonical(names[i%len(names)], nomcode.Zoological)
		}()
	}
	wg.Wait()

	assert.Equal(t, "Rana temporaria", res[0])
	assert.Equal(t, "Bufo bufo", res[1])
	assert.Equal(t, "Hyla arborea", res[2])
	assert.Equal(t, "Pelophylax ridibundus", res[39])
}
