// Package parserpool keeps gnparser instances for concurrent
// normalization of scientific names.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides parsers for concurrent use. There is one pool per
// supported nomenclatural code.
type Pool interface {
	// Parse parses a name string using the given nomenclatural code.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Canonical returns the simple canonical form of a name, for example
	// "Rana temporaria" for "Rana temporaria Linnaeus, 1758". Names that
	// cannot be parsed are returned trimmed, with false.
	Canonical(nameString string, code nomcode.Code) (string, bool)

	// Close releases parsers. The pool cannot be used afterwards.
	Close()
}

type pool struct {
	chans map[nomcode.Code]chan gnparser.GNparser
}

// NewPool creates parsers for botanical and zoological codes, jobsNum of
// each. If jobsNum is 0, runtime.NumCPU() is used.
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	res := &pool{chans: make(map[nomcode.Code]chan gnparser.GNparser)}
	for _, code := range []nomcode.Code{nomcode.Botanical, nomcode.Zoological} {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		res.chans[code] = gnparser.NewPool(cfg, size)
	}
	return res
}

func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	ch, ok := p.chans[code]
	if !ok {
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	defer func() { ch <- parser }()
	return parser.ParseName(nameString), nil
}

func (p *pool) Canonical(nameString string, code nomcode.Code) (string, bool) {
	name := strings.TrimSpace(nameString)
	res, err := p.Parse(name, code)
	if err != nil || !res.Parsed {
		return name, false
	}
	return res.Canonical.Simple, true
}

func (p *pool) Close() {
	for _, ch := range p.chans {
		close(ch)
		for range ch {
		}
	}
}
