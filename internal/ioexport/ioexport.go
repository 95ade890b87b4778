// Package ioexport writes tables to CSV, TSV, HTML and SQLite files.
package ioexport

import (
	"bufio"
	"database/sql"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnbarcode/internal/iofs"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/gnames/gnbarcode/pkg/table"
	"github.com/gnames/gnfmt"
	_ "modernc.org/sqlite"
)

//go:embed table.html
var tableHTML string

var page = template.Must(template.New("table").Parse(tableHTML))

type exporter struct {
	cfg    *config.Config
	dir    string
	prefix string
}

// New creates an Exporter that writes into cfg.Export.Dir files with
// names like "<prefix>_<table>.<format>". Export settings are read at
// the time of export.
func New(cfg *config.Config) gnbarcode.Exporter {
	return &exporter{cfg: cfg}
}

func (e *exporter) Export(tables ...*table.Table) ([]string, error) {
	e.dir, e.prefix = e.cfg.Export.Dir, e.cfg.Export.Prefix
	if err := iofs.EnsureOutputDir(e.dir); err != nil {
		return nil, err
	}

	var res []string
	for _, f := range e.cfg.Export.Formats {
		var paths []string
		var err error
		switch f {
		case "csv":
			paths, err = e.delimited(tables, "csv", ',')
		case "tsv":
			paths, err = e.delimited(tables, "tsv", '\t')
		case "html":
			paths, err = e.html(tables)
		case "sqlite":
			paths, err = e.sqlite(tables)
		default:
			err = ExportFormatError(f)
		}
		res = append(res, paths...)
		if err != nil {
			return res, err
		}
	}

	slog.Info("Tables exported", "tables", len(tables), "files", len(res))
	return res, nil
}

func (e *exporter) path(name, ext string) string {
	if e.prefix != "" {
		name = e.prefix + "_" + name
	}
	return filepath.Join(e.dir, name+"."+ext)
}

func (e *exporter) delimited(
	tables []*table.Table,
	ext string,
	sep rune,
) ([]string, error) {
	res := make([]string, 0, len(tables))
	for _, t := range tables {
		path := e.path(t.Name, ext)
		err := writeFile(path, func(w *bufio.Writer) error {
			if _, err := w.WriteString(gnfmt.ToCSV(t.Columns, sep) + "\n"); err != nil {
				return err
			}
			for _, row := range t.Rows {
				if _, err := w.WriteString(gnfmt.ToCSV(row, sep) + "\n"); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return res, ExportTableError(t.Name, path, err)
		}
		res = append(res, path)
	}
	return res, nil
}

type cell struct {
	Value string
	Max   bool
}

type htmlData struct {
	Title   string
	Columns []string
	Rows    [][]cell
}

func (e *exporter) html(tables []*table.Table) ([]string, error) {
	res := make([]string, 0, len(tables))
	for _, t := range tables {
		data := htmlData{
			Title:   t.Name,
			Columns: t.Columns,
			Rows:    make([][]cell, len(t.Rows)),
		}
		for i, row := range t.Rows {
			maxIdx := t.MaxContribution(row)
			cells := make([]cell, len(row))
			for j, v := range row {
				cells[j] = cell{Value: v, Max: j == maxIdx}
			}
			data.Rows[i] = cells
		}

		path := e.path(t.Name, "html")
		err := writeFile(path, func(w *bufio.Writer) error {
			return page.Execute(w, data)
		})
		if err != nil {
			return res, ExportTableError(t.Name, path, err)
		}
		res = append(res, path)
	}
	return res, nil
}

// sqlite writes all tables into one database file. Every column is TEXT.
func (e *exporter) sqlite(tables []*table.Table) ([]string, error) {
	name := "tables"
	if e.prefix != "" {
		name = e.prefix
	}
	path := filepath.Join(e.dir, name+".sqlite")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, ExportTableError(name, path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ExportTableError(name, path, err)
	}
	defer db.Close()

	for _, t := range tables {
		if err = sqliteTable(db, t); err != nil {
			return nil, ExportTableError(t.Name, path, err)
		}
	}
	return []string{path}, nil
}

func sqliteTable(db *sql.DB, t *table.Table) error {
	cols := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, v := range t.Columns {
		cols[i] = quote(v) + " TEXT"
		marks[i] = "?"
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (%s)",
		quote(t.Name), strings.Join(cols, ", "))
	if _, err := db.Exec(ddl); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	q := fmt.Sprintf("INSERT INTO %s VALUES (%s)",
		quote(t.Name), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(q)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i := range args {
			args[i] = ""
			if i < len(row) {
				args[i] = row[i]
			}
		}
		if _, err = stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeFile(path string, fn func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
