package ioentrez

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func SequenceSearchError(term string, err error) error {
	msg := "GenBank search failed for <em>%s</em>"
	vars := []any{term}
	return &gn.Error{
		Code: errcode.SequenceSearchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("esearch %q: %w", term, err),
	}
}

func SequenceFetchError(num int, err error) error {
	msg := "Cannot fetch <em>%d</em> GenBank records"
	vars := []any{num}
	return &gn.Error{
		Code: errcode.SequenceFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("efetch of %d records: %w", num, err),
	}
}

func TaxaByRankError(parent, rank string, err error) error {
	msg := "Cannot get taxa of rank <em>%s</em> for <em>%s</em>"
	vars := []any{rank, parent}
	return &gn.Error{
		Code: errcode.TaxaByRankError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("taxa of %s under %s: %w", rank, parent, err),
	}
}

func DecodeResponseError(method, reason string) error {
	msg := "NCBI returned unexpected data: %s"
	vars := []any{reason}
	return &gn.Error{
		Code: errcode.DecodeResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %s", method, reason),
	}
}
