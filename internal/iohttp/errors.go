package iohttp

import (
	"fmt"
	"net/http"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// StatusError is a response with a status code other than 2xx.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

func HTTPRequestError(u string, err error) error {
	msg := "Cannot reach <em>%s</em>"
	vars := []any{u}
	return &gn.Error{
		Code: errcode.HTTPRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request failed: %w", err),
	}
}

func HTTPStatusError(u string, code int) error {
	msg := "Service returned <em>%d</em> for %s"
	vars := []any{code, u}
	return &gn.Error{
		Code: errcode.HTTPStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad response: %w", &StatusError{URL: u, Code: code}),
	}
}
