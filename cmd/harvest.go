/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/ioentrez"
	"github.com/gnames/gnbarcode/internal/ioexport"
	"github.com/gnames/gnbarcode/internal/ioharvest"
	"github.com/gnames/gnbarcode/internal/ioitis"
	"github.com/gnames/gnbarcode/internal/ioresolve"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/parserpool"
	"github.com/spf13/cobra"
)

type harvestFlags struct {
	export      exportFlags
	yes         bool
	excludeLong bool
	noScope     bool
	sqlite      bool
	jobs        int
	pageSize    int
}

// getHarvestCmd returns the harvest command.
func getHarvestCmd() *cobra.Command {
	var flags harvestFlags

	harvestCmd := &cobra.Command{
		Use:   "harvest <TSN>",
		Short: "Harvest species and their COI/CYTB sequences for a taxon",
		Long: `Collect species of a taxon from ITIS and their marker sequences
from GenBank.

This command:
  1. Finds the taxon by its ITIS TSN and shows its rank and name
  2. Descends ITIS hierarchy to species and collects their synonyms
  3. Searches GenBank nucleotide database for COI and CYTB records
     of every species name and synonym
  4. Searches GenBank by the taxon name, names of its families
     and genera (disable with --no-scope-search)
  5. Filters records by length, marker and description
  6. Exports tables: coi, cytb, rawdata, species_synonyms

The harvest starts only with --yes flag, otherwise only the root
taxon is shown.

NCBI asks to identify requests with email. Set it with
GNBARCODE_NCBI_EMAIL or in config.yaml. An API key
(GNBARCODE_NCBI_API_KEY) speeds up the harvest.

Examples:
  # Show the taxon with TSN 173423
  gnbarcode harvest 173423

  # Harvest Anura, exclude mitogenomes, write into 'out' directory
  gnbarcode harvest 173423 -y -x -o out

  # Only per-species searches, with SQLite output
  gnbarcode harvest 173423 -y --no-scope-search --sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runHarvest(cmd, args[0], flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	harvestCmd.Flags().BoolVarP(
		&flags.yes, "yes", "y", false,
		"proceed with the harvest of the root taxon",
	)
	harvestCmd.Flags().BoolVarP(
		&flags.excludeLong, "exclude-long", "x", false,
		"exclude records longer than 1300 bp (mitogenomes, metagenomes)",
	)
	harvestCmd.Flags().BoolVar(
		&flags.noScope, "no-scope-search", false,
		"skip searches by the root taxon, its families and genera",
	)
	harvestCmd.Flags().BoolVar(
		&flags.sqlite, "sqlite", false,
		"also export tables to a SQLite file",
	)
	harvestCmd.Flags().IntVarP(
		&flags.jobs, "jobs", "j", 1,
		"concurrent workers for ITIS hierarchy descent",
	)
	harvestCmd.Flags().IntVar(
		&flags.pageSize, "page-size", 100,
		"number of GenBank identifiers per request",
	)
	addExportFlags(harvestCmd, &flags.export)

	return harvestCmd
}

func runHarvest(cmd *cobra.Command, tsn string, flags harvestFlags) error {
	ctx := cmd.Context()
	tsn = strings.TrimSpace(tsn)

	harvestOpts := []config.Option{
		config.OptHarvestConfirmed(flags.yes),
		config.OptHarvestExcludeLong(flags.excludeLong),
		config.OptHarvestSkipScopeSearch(flags.noScope),
	}
	if cmd.Flags().Changed("jobs") {
		harvestOpts = append(harvestOpts, config.OptJobsNumber(flags.jobs))
	}
	if cmd.Flags().Changed("page-size") {
		harvestOpts = append(harvestOpts, config.OptHarvestPageSize(flags.pageSize))
	}
	harvestOpts = append(harvestOpts, exportOptions(cmd, flags.export)...)
	cfg.Update(harvestOpts)
	if flags.sqlite {
		formats := withFormat(cfg.Export.Formats, "sqlite")
		cfg.Update([]config.Option{config.OptExportFormats(formats)})
	}

	if cfg.NCBI.Email == "" {
		gn.Warn(`<warn>NCBI email is not set</warn>
   Set GNBARCODE_NCBI_EMAIL or ncbi.email in <em>%s</em>`,
			config.ConfigFilePath(cfg.HomeDir))
	}

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	itis := ioitis.New(cfg)
	harvester := ioharvest.New(
		cfg,
		itis,
		ioresolve.New(cfg, itis, pool),
		ioentrez.New(cfg),
		ioexport.New(cfg),
	)

	root, err := harvester.Root(ctx, tsn)
	if err != nil {
		return err
	}
	gn.Info("Root taxon: %s <em>%s</em> (TSN %s)", root.Rank, root.Name, root.TSN)

	if !cfg.Harvest.Proceed() {
		gn.Info("Run the command with <em>--yes</em> flag to harvest %s", root.Name)
		return nil
	}

	if cfg.Export.Prefix == "" {
		cfg.Update([]config.Option{config.OptExportPrefix(filePrefix(root.Name))})
	}

	sum, err := harvester.Harvest(ctx, root)
	if err != nil {
		return err
	}

	gn.Info("Output files:\n  %s", strings.Join(sum.Files, "\n  "))
	return nil
}
