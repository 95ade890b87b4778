package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
)

// CreateDirError is returned when a config, log or output directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	return fsError(errcode.CreateDirError,
		"Cannot create directory <em>%s</em>", dir,
		fmt.Errorf("cannot create directory: %w", err))
}

// WriteConfigError is returned when the default config.yaml cannot be
// written on the first run.
func WriteConfigError(path string, err error) error {
	return fsError(errcode.WriteConfigError,
		"Cannot write default config to <em>%s</em>", path,
		fmt.Errorf("cannot write config %s: %w", path, err))
}

// ReadFileError is returned when a config, .env or input file exists
// but cannot be read.
func ReadFileError(path string, err error) error {
	return fsError(errcode.ReadFileError,
		"Cannot read <em>%s</em>", path,
		fmt.Errorf("cannot read %s: %w", path, err))
}

func fsError(code gn.ErrorCode, msg, path string, err error) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
