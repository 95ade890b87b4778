// Package gnbarcode defines the top-level contracts of the application:
// the sequence Harvester and the conservation Prioritizer.
// Implementations live in internal/io* packages.
package gnbarcode

import (
	"context"

	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/gnames/gnbarcode/pkg/table"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
)

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// Harvester collects species of a taxon from a taxonomy service and
// marker-gene sequence records for them from a sequence database.
type Harvester interface {
	// Root returns the rank and the name of the taxon with the given TSN.
	// Failure is fatal and means no work should be started.
	Root(ctx context.Context, tsn string) (taxonomy.Node, error)

	// Harvest runs the whole pipeline for the root taxon returned by Root
	// and exports the resulting tables.
	Harvest(ctx context.Context, root taxonomy.Node) (*HarvestSummary, error)
}

// HarvestSummary contains statistics of one harvest run.
type HarvestSummary struct {
	// RunID identifies the run in logs.
	RunID string
	// Root is the taxon the harvest started from.
	Root taxonomy.Node
	// Species are resolved species with their synonyms.
	Species []taxonomy.Taxon
	// Hits is the number of candidate identifiers from all strategies.
	Hits int
	// Verdicts counts classifier decisions.
	Verdicts map[sequence.Verdict]int
	// FetchErrors is the number of records that could not be retrieved.
	FetchErrors int
	// Records are accepted, deduplicated sequence records.
	Records []sequence.SequenceRecord
	// Files are paths of exported files.
	Files []string
}

// Prioritizer scores species by conservation priority under climate
// scenarios.
type Prioritizer interface {
	// Prioritize reads input data, computes scores for all scenarios and
	// exports the result tables. On failure the results are nil.
	Prioritize(ctx context.Context, path string) (*priority.Results, error)
}

// Exporter writes tables to files in configured formats.
type Exporter interface {
	// Export writes every table in every format and returns paths of
	// created files.
	Export(tables ...*table.Table) ([]string, error)
}

// Rejected returns the number of records that were not accepted.
func (s *HarvestSummary) Rejected() int {
	var res int
	for k, v := range s.Verdicts {
		if k != sequence.Accepted {
			res += v
		}
	}
	return res
}
