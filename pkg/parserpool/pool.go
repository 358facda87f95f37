// Package parserpool keeps a pool of gnparser instances used to
// normalize scientific names of fish species.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool parses scientific names concurrently.
type Pool interface {
	// Parse parses a scientific name with zoological rules.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a name. The second
	// value is false when the name cannot be parsed.
	Canonical(nameString string) (string, bool)

	// Close releases the parsers. The pool cannot be used afterwards.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a pool of jobsNum parsers. If jobsNum is 0, it
// defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)
	return &pool{ch: gnparser.NewPool(cfg, poolSize)}
}

func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

func (p *pool) Canonical(nameString string) (string, bool) {
	res := p.Parse(nameString)
	if !res.Parsed || res.Canonical == nil {
		return "", false
	}
	return res.Canonical.Simple, true
}

func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
		p.ch = nil
	}
}
