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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnbarcode.Version, gnbarcode.Build)
		os.Exit(0)
	}
}

// exportFlags are output flags shared by harvest and prioritize.
type exportFlags struct {
	dir     string
	prefix  string
	formats []string
}

func addExportFlags(cmd *cobra.Command, f *exportFlags) {
	cmd.Flags().StringVarP(
		&f.dir, "output", "o", ".",
		"directory for output files",
	)
	cmd.Flags().StringVarP(
		&f.prefix, "prefix", "p", "",
		"prefix of output file names",
	)
	cmd.Flags().StringSliceVarP(
		&f.formats, "format", "f", nil,
		"output formats: csv, tsv, html, sqlite",
	)
}

// exportOptions converts explicitly set export flags to options.
func exportOptions(cmd *cobra.Command, f exportFlags) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("output") {
		res = append(res, config.OptExportDir(f.dir))
	}
	if cmd.Flags().Changed("prefix") {
		res = append(res, config.OptExportPrefix(f.prefix))
	}
	if cmd.Flags().Changed("format") {
		res = append(res, config.OptExportFormats(f.formats))
	}
	return res
}

// withFormat returns formats with one more format added, if it is not
// there yet.
func withFormat(formats []string, format string) []string {
	if slices.Contains(formats, format) {
		return formats
	}
	return append(slices.Clone(formats), format)
}

// filePrefix makes a prefix of output files from a name, for example
// "rana_temporaria" from "Rana temporaria".
func filePrefix(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_")
}

// inputPrefix makes a prefix of output files from the path of an input
// file, for example "species" from "data/species.csv".
func inputPrefix(path string) string {
	name := filepath.Base(path)
	return filePrefix(strings.TrimSuffix(name, filepath.Ext(name)))
}
