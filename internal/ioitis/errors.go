package ioitis

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

func TaxonNotFoundError(tsn string) error {
	msg := "Cannot find a taxon with TSN <em>%s</em> in ITIS"
	vars := []any{tsn}
	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no name or rank for TSN %s", tsn),
	}
}

func DecodeResponseError(method, tsn string) error {
	msg := "ITIS returned unreadable data for <em>%s</em>"
	vars := []any{tsn}
	return &gn.Error{
		Code: errcode.DecodeResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s(%s): invalid JSON", method, tsn),
	}
}
