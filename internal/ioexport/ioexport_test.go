package ioexport_test

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnbarcode/internal/ioexport"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, formats ...string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExportDir(filepath.Join(t.TempDir(), "out")),
		config.OptExportPrefix("anura"),
		config.OptExportFormats(formats),
	})
	return cfg
}

func contributions() *table.Table {
	res := table.New("contributions_ssp245",
		"species", "status_contribution", "eoo_contribution")
	res.Add("Rana temporaria", "25.0%", "31.82%")
	res.Add("Bufo \"common\" bufo, L.", "50.0%", "50.0%")
	return res
}

func TestExportDelimited(t *testing.T) {
	cfg := testConfig(t, "csv", "tsv")
	exp := ioexport.New(cfg)

	paths, err := exp.Export(contributions())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t,
		filepath.Join(cfg.Export.Dir, "anura_contributions_ssp245.csv"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"species", "status_contribution", "eoo_contribution"},
		{"Rana temporaria", "25.0%", "31.82%"},
		{`Bufo "common" bufo, L.`, "50.0%", "50.0%"},
	}, rows)

	tsv, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(tsv), "Rana temporaria\t25.0%\t31.82%\n")
}

func TestExportHTML(t *testing.T) {
	exp := ioexport.New(testConfig(t, "html"))

	paths, err := exp.Export(contributions())
	require.NoError(t, err)
	require.Len(t, paths, 1)

	html, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "<th>status_contribution</th>")
	assert.Contains(t, s, `<td class="max-value">31.82%</td>`)
	// on ties the first column is highlighted
	assert.Contains(t, s,
		`<td class="max-value">50.0%</td><td>50.0%</td>`)
	assert.Contains(t, s, "Bufo &#34;common&#34; bufo, L.")
}

func TestExportSQLite(t *testing.T) {
	cfg := testConfig(t, "sqlite")
	exp := ioexport.New(cfg)

	tbl := table.New("coi", "GenBank Accession", "Species")
	tbl.Add("MN123456.1", "Rana temporaria")
	tbl.Add("MN123457.1", "Rana arvalis*")

	paths, err := exp.Export(tbl, contributions())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(cfg.Export.Dir, "anura.sqlite")}, paths)

	// exporting again replaces the file
	_, err = exp.Export(tbl, contributions())
	require.NoError(t, err)

	db, err := sql.Open("sqlite", paths[0])
	require.NoError(t, err)
	defer db.Close()

	var num int
	err = db.QueryRow(`SELECT count(*) FROM coi`).Scan(&num)
	require.NoError(t, err)
	assert.Equal(t, 2, num)

	var species string
	err = db.QueryRow(
		`SELECT "Species" FROM coi WHERE "GenBank Accession" = ?`,
		"MN123457.1",
	).Scan(&species)
	require.NoError(t, err)
	assert.Equal(t, "Rana arvalis*", species)
}

func TestExportUnknownFormat(t *testing.T) {
	cfg := testConfig(t, "csv")
	cfg.Export.Formats = []string{"csv", "xlsx"}
	exp := ioexport.New(cfg)

	paths, err := exp.Export(contributions())
	assert.Error(t, err)
	assert.Len(t, paths, 1)
}
