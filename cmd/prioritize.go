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
	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/internal/ioexport"
	"github.com/gnames/gnbarcode/internal/ioprior"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/priority"
	"github.com/spf13/cobra"
)

// getPrioritizeCmd returns the prioritize command.
func getPrioritizeCmd() *cobra.Command {
	var flags exportFlags

	prioritizeCmd := &cobra.Command{
		Use:   "prioritize <input.csv>",
		Short: "Score species by conservation priority under climate scenarios",
		Long: `Score species by conservation priority.

The input is a CSV (or TSV with .tsv extension) file with columns:
  species_name (or species), iucn_status, area_loss_ssp245,
  area_loss_ssp585, terrestrial_eoo, human_footprint

Every criterion gets an integer score, missing or unreadable values
get the neutral score 3. Scores are weighted equally (0.25) and summed
into the final score. Species are ranked by the final score and
assigned to one of five priority categories by quantiles.

Output tables:
  ssp245, ssp585              scores, categories and ranks
  contributions_ssp245/585    percent contribution of each criterion
  comparison                  final scores of both scenarios
  rank_changes                ranks of both scenarios
  missing_data_report         missing values per species

Examples:
  gnbarcode prioritize species.csv
  gnbarcode prioritize species.csv -o results -p amphibia -f csv,html`,
		Aliases: []string{"prioritise"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPrioritize(cmd, args[0], flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	addExportFlags(prioritizeCmd, &flags)

	return prioritizeCmd
}

func runPrioritize(cmd *cobra.Command, path string, flags exportFlags) error {
	cfg.Update(exportOptions(cmd, flags))
	if cfg.Export.Prefix == "" {
		cfg.Update([]config.Option{config.OptExportPrefix(inputPrefix(path))})
	}

	p := ioprior.New(ioexport.New(cfg))
	res, err := p.Prioritize(cmd.Context(), path)
	if err != nil {
		return err
	}

	rows := res.Rows[priority.SSP585]
	if len(rows) > 0 {
		gn.Info("Top priority under SSP585: <em>%s</em> (%s)",
			rows[0].Species, priority.FormatFloat(rows[0].FinalScore))
	}
	return nil
}
