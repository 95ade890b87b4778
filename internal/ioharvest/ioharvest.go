// Package ioharvest implements gnbarcode.Harvester. It finds species of
// a taxon in ITIS, searches GenBank for their COI and CYTB sequences,
// filters received records and exports them as tables.
package ioharvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

type harvester struct {
	cfg      *config.Config
	itis     taxonomy.Service
	resolver taxonomy.Resolver
	ncbi     sequence.Service
	exporter gnbarcode.Exporter
}

// New creates a Harvester from its collaborators.
func New(
	cfg *config.Config,
	itis taxonomy.Service,
	resolver taxonomy.Resolver,
	ncbi sequence.Service,
	exporter gnbarcode.Exporter,
) gnbarcode.Harvester {
	return &harvester{
		cfg:      cfg,
		itis:     itis,
		resolver: resolver,
		ncbi:     ncbi,
		exporter: exporter,
	}
}

func (h *harvester) Root(ctx context.Context, tsn string) (taxonomy.Node, error) {
	res, err := h.itis.Node(ctx, tsn)
	if err != nil {
		return res, RootTaxonError(tsn, err)
	}
	return res, nil
}

// Harvest runs all phases for the root taxon found by Root: species
// resolution, species searches, scope searches, records processing and
// export. Only failures to resolve children of the root or write files
// stop the harvest.
func (h *harvester) Harvest(
	ctx context.Context,
	root taxonomy.Node,
) (*gnbarcode.HarvestSummary, error) {
	startTime := time.Now()
	sum := &gnbarcode.HarvestSummary{
		RunID:    uuid.NewString(),
		Verdicts: make(map[sequence.Verdict]int),
	}
	log := slog.With("run_id", sum.RunID)

	if !h.cfg.Harvest.Proceed() {
		return nil, NotConfirmedError(root.Name)
	}
	sum.Root = root
	log.Info("Starting harvest",
		"tsn", root.TSN,
		"name", root.Name,
		"rank", root.Rank,
		"exclude_long", h.cfg.Harvest.ExcludeLong,
	)

	var err error
	gn.Info("(1/5) Resolving species of %s <em>%s</em>", root.Rank, root.Name)
	sum.Species, err = h.resolver.Resolve(ctx, root)
	if err != nil {
		return nil, err
	}
	gn.Info("Found <em>%s</em> species", humanize.Comma(int64(len(sum.Species))))
	log.Info("Species resolved", "count", len(sum.Species))

	srch := newSearcher(h.ncbi, log)
	gn.Info("(2/5) Searching GenBank by species names and synonyms")
	hits := srch.species(ctx, sum.Species)
	if err = ctx.Err(); err != nil {
		return nil, CancelledError(err)
	}

	if h.cfg.Harvest.SkipScopeSearch {
		gn.Info("(3/5) Searching GenBank by higher taxa is skipped")
	} else {
		gn.Info("(3/5) Searching GenBank by <em>%s</em>, its families and genera",
			root.Name)
		hits = append(hits, srch.scope(ctx, root.Name)...)
		if err = ctx.Err(); err != nil {
			return nil, CancelledError(err)
		}
	}
	sum.Hits = len(hits)
	gn.Info("Found <em>%s</em> candidate records", humanize.Comma(int64(sum.Hits)))

	gn.Info("(4/5) Fetching and filtering records")
	if err = h.process(ctx, hits, sum, log); err != nil {
		return nil, CancelledError(err)
	}
	for _, v := range sequence.Verdicts() {
		log.Info("Records by verdict", "verdict", v.String(), "count", sum.Verdicts[v])
	}

	gn.Info("(5/5) Exporting tables")
	sum.Files, err = h.exporter.Export(tables(sum.Species, sum.Records)...)
	if err != nil {
		return nil, err
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	log.Info("Harvest complete",
		"species", len(sum.Species),
		"hits", sum.Hits,
		"records", len(sum.Records),
		"fetch_errors", sum.FetchErrors,
		"duration", dur,
	)
	gn.Info(`Harvest complete
Species: %s, accepted records: %s, rejected: %s, not fetched: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(len(sum.Species))),
		humanize.Comma(int64(len(sum.Records))),
		humanize.Comma(int64(sum.Rejected())),
		humanize.Comma(int64(sum.FetchErrors)),
		dur,
	)
	return sum, nil
}
