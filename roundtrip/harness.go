// Package roundtrip checks that every spelling of every small program parses
// back to that program, under each grammar configuration.
package roundtrip

import (
	"context"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/lazy"
	"github.com/arr-ai/progspace/progspace"
	"github.com/arr-ai/progspace/rope"
)

// DefaultConfigs is the configuration matrix, from most to least restrictive
// on tuples.
func DefaultConfigs() []infix.Config {
	return []infix.Config{
		{},
		{EnableTuples: true},
		{EnableTuples: true, TuplesRequireParens: true},
		{UseParserTuples: true, EnableTuples: true, TuplesRequireParens: true},
	}
}

// Outcome is the result of a case that did not fail.
type Outcome int

const (
	// RoundTripped: the rendering parsed back to the program.
	RoundTripped Outcome = iota
	// Rejected: the configuration disallows the rendering and the parser
	// either refused it or built something else.
	Rejected
)

// Stats counts the work done by a run.
type Stats struct {
	Programs int
	Cases    int
	Rejected int
}

// Harness explores programs breadth-first by depth.
type Harness struct {
	MaxDepth int
	OpCount  int
	// Configs defaults to DefaultConfigs.
	Configs []infix.Config
	// Log defaults to the standard logrus logger.
	Log logrus.FieldLogger
	// CheckWriter also round-trips the canonical infix writer output of
	// each program.
	CheckWriter bool
}

func (h Harness) logger() logrus.FieldLogger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

func (h Harness) configs() []infix.Config {
	if len(h.Configs) == 0 {
		return DefaultConfigs()
	}
	return h.Configs
}

// Run checks every case from depth 0 up to MaxDepth and stops at the first
// failure, which is returned as a *Failure. It also stops when ctx is done.
func (h Harness) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	if h.OpCount < 0 || h.OpCount > len(progspace.CandidateNames) {
		return stats, errors.Errorf("op count %d outside [0, %d]", h.OpCount, len(progspace.CandidateNames))
	}
	configs := h.configs()
	for _, cfg := range configs {
		if err := cfg.Sanity(); err != nil {
			return stats, err
		}
	}

	log := h.logger()
	for depth := 0; depth <= h.MaxDepth; depth++ {
		dlog := log.WithField("depth", depth)
		dlog.Info("exploring")
		progress := newProgress()

		var err error
		progspace.ValidCalculation(h.OpCount, depth).Each(func(program *ast.Node) bool {
			stats.Programs++
			renderings := progspace.CalculationStrings(program)
			if h.CheckWriter {
				renderings = renderings.Concat(func() progspace.Renderings {
					return writerRendering(program)
				})
			}
			renderings.Each(func(r progspace.Rendering) bool {
				for _, cfg := range configs {
					if err = ctx.Err(); err != nil {
						return false
					}
					var outcome Outcome
					if outcome, err = Check(program, r, cfg); err != nil {
						return false
					}
					stats.Cases++
					if outcome == Rejected {
						stats.Rejected++
					}
					if progress.tick() {
						dlog.WithField("cases", stats.Cases).Info("progress")
					}
				}
				return true
			})
			return err == nil
		})
		if err != nil {
			return stats, err
		}
		dlog.WithFields(logrus.Fields{
			"programs": stats.Programs,
			"cases":    stats.Cases,
			"rejected": stats.Rejected,
		}).Info("depth ok")
	}
	return stats, nil
}

// writerRendering is the canonical writer output of program, which never
// omits tuple parentheses.
func writerRendering(program *ast.Node) progspace.Renderings {
	out, err := infix.Write(program)
	if err != nil {
		panic(errors.WrapPrefix(err, "writing generated program", 0))
	}
	return lazy.Single(progspace.Rendering{Text: rope.FromString(out)})
}

// Check parses one rendering of program under cfg and classifies the result.
// A non-nil error is a *Failure unless the program itself is malformed.
func Check(program *ast.Node, r progspace.Rendering, cfg infix.Config) (Outcome, error) {
	expected := program.Clone()
	if err := infix.BuildSymbols(expected); err != nil {
		return 0, errors.WrapPrefix(err, "rebuilding symbol table", 0)
	}

	expectFailure := (!cfg.EnableTuples && ast.Any(expected, infix.TupleOps...)) ||
		(cfg.TuplesRequireParens && r.TupleParensOmitted)

	parsed, err := infix.Parse(r.String(), cfg)
	switch {
	case err != nil && expectFailure:
		return Rejected, nil
	case err != nil:
		return 0, &Failure{Kind: UnexpectedFailure, Config: cfg, Program: expected, Rendering: r, Err: err}
	case expectFailure && expected.Equal(parsed):
		return 0, &Failure{Kind: UnexpectedSuccess, Config: cfg, Program: expected, Rendering: r, Parsed: parsed}
	case expectFailure:
		return Rejected, nil
	case !expected.Equal(parsed):
		return 0, &Failure{Kind: Mismatch, Config: cfg, Program: expected, Rendering: r, Parsed: parsed}
	}
	return RoundTripped, nil
}

// progress reports every 100 cases up to 1000, then every 1000.
type progress struct {
	n int
}

func newProgress() *progress {
	return &progress{}
}

func (p *progress) tick() bool {
	p.n++
	if p.n < 1000 {
		return p.n%100 == 0
	}
	return p.n%1000 == 0
}
