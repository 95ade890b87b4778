package ioharvest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// RootTaxonError creates an error for when the root taxon cannot be
// found.
func RootTaxonError(tsn string, err error) error {
	msg := `Cannot find the taxon with TSN <em>%s</em>

<em>How to fix:</em>
  1. Check the TSN at https://www.itis.gov
  2. Check that ITIS web service is available`

	vars := []any{tsn}
	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("root TSN %s: %w", tsn, err),
	}
}

// NotConfirmedError creates an error for when harvest of the root taxon
// was not confirmed by the user.
func NotConfirmedError(name string) error {
	msg := "Harvest of <em>%s</em> was not confirmed, use --yes flag to proceed"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.HarvestNotConfirmedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("harvest of %s not confirmed", name),
	}
}

// CancelledError creates an error for when harvest is cancelled.
func CancelledError(err error) error {
	msg := "Harvest was cancelled"
	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("harvest cancelled: %w", err),
	}
}
