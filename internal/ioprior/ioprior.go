// Package ioprior implements gnbarcode.Prioritizer. It reads species data
// from a delimited file, scores species under both climate scenarios and
// exports the result tables.
package ioprior

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/gnames/gnfmt"
)

type prioritizer struct {
	exporter gnbarcode.Exporter
}

// New creates a Prioritizer that writes results with the exporter.
func New(exporter gnbarcode.Exporter) gnbarcode.Prioritizer {
	return &prioritizer{exporter: exporter}
}

// Prioritize returns nil results with an error if any step fails. An
// unexpected panic is logged with its stack trace and reported as an
// error as well.
func (p *prioritizer) Prioritize(
	ctx context.Context,
	path string,
) (res *priority.Results, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Prioritization panic",
				"input", path,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			res, err = nil, PriorityPipelineError(r)
		}
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	species, err := ReadSpecies(path)
	if err != nil {
		return nil, err
	}
	gn.Info("Read <em>%s</em> species from %s",
		humanize.Comma(int64(len(species))), path)
	slog.Info("Species data read", "input", path, "species", len(species))

	res = priority.Compute(species)

	files, err := p.exporter.Export(res.Tables()...)
	if err != nil {
		return nil, err
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Prioritization complete",
		"species", len(species),
		"files", len(files),
		"duration", dur,
	)
	gn.Info("Prioritization complete, %d files written. Elapsed time: <em>%s</em>",
		len(files), dur)
	return res, nil
}
