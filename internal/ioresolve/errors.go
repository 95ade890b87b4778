package ioresolve

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// TaxonHierarchyError creates an error for when descendants of the root
// taxon cannot be received.
func TaxonHierarchyError(name, tsn string, err error) error {
	msg := `Cannot get the hierarchy of <em>%s</em> (TSN %s)

<em>How to fix:</em>
  1. Check that ITIS web service is available
  2. Increase retry.max_attempts in config.yaml`

	vars := []any{name, tsn}
	return &gn.Error{
		Code: errcode.TaxonHierarchyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("children of TSN %s: %w", tsn, err),
	}
}

// CancelledError creates an error for when the descent is cancelled.
func CancelledError(err error) error {
	msg := "Taxonomy descent was cancelled"

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("descent cancelled: %w", err),
	}
}
