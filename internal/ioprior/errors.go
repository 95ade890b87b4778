package ioprior

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// PriorityInputError creates an error for an input file with unexpected
// structure.
func PriorityInputError(path string, err error) error {
	msg := `Cannot read species data from <em>%s</em>

<em>How to fix:</em>
  1. Make sure the file is CSV (or TSV with .tsv extension)
  2. The header must have species_name or species column`

	vars := []any{path}
	return &gn.Error{
		Code: errcode.PriorityInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s: %w", path, err),
	}
}

// PriorityEmptyInputError creates an error for an input without species.
func PriorityEmptyInputError(path string) error {
	msg := "No species found in <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.PriorityEmptyInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s has no data rows", path),
	}
}

// PriorityPipelineError creates an error for an unexpected failure of
// the scoring pipeline.
func PriorityPipelineError(cause any) error {
	msg := "Prioritization failed unexpectedly, see the log for details"
	return &gn.Error{
		Code: errcode.PriorityPipelineError,
		Msg:  msg,
		Err:  fmt.Errorf("prioritization panic: %v", cause),
	}
}
