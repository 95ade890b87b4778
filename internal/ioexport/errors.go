package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// ExportFormatError creates an error for an unsupported output format.
func ExportFormatError(format string) error {
	msg := "Unknown export format <em>%s</em>, use csv, tsv, html or sqlite"
	vars := []any{format}
	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown export format %q", format),
	}
}

// ExportTableError creates an error for a table that cannot be written.
func ExportTableError(name, path string, err error) error {
	msg := "Cannot export table <em>%s</em> to %s"
	vars := []any{name, path}
	return &gn.Error{
		Code: errcode.ExportTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("export of %s to %s: %w", name, path, err),
	}
}
