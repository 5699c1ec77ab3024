package roundtrip

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/progspace/ast"
	"github.com/arr-ai/progspace/infix"
	"github.com/arr-ai/progspace/parser"
	"github.com/arr-ai/progspace/progspace"
	"github.com/arr-ai/progspace/rope"
)

var (
	noTuples    = infix.Config{}
	looseTuples = infix.Config{EnableTuples: true}
	parenTuples = infix.Config{EnableTuples: true, TuplesRequireParens: true}
)

func rendering(text string, omitted bool) progspace.Rendering {
	return progspace.Rendering{Text: rope.FromString(text), TupleParensOmitted: omitted}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	one, two := infix.IntLit("1"), infix.IntLit("2")
	pair := infix.Calc(infix.AssignTo("foo", infix.TupleOf(one, two)))
	sum := infix.Calc(infix.AssignTo("foo", infix.BinOp(infix.Add, infix.IntLit("0"), infix.BinOp(infix.Add, one, two))))

	for _, s := range []struct {
		name      string
		program   *ast.Node
		rendering progspace.Rendering
		cfg       infix.Config
		outcome   Outcome
		kind      Kind
		fails     bool
	}{
		{"bare tuple", pair, rendering("foo = 1, 2;", true), looseTuples, RoundTripped, 0, false},
		{"bare tuple needs parens", pair, rendering("foo = 1, 2;", true), parenTuples, Rejected, 0, false},
		{"parenthesised tuple", pair, rendering("foo = (1, 2);", false), parenTuples, RoundTripped, 0, false},
		{"tuples disabled", pair, rendering("foo = (1, 2);", false), noTuples, Rejected, 0, false},
		{"arithmetic", sum, rendering("foo = 0 + (1 + 2);", false), noTuples, RoundTripped, 0, false},
		{"missing omitted flag", pair, rendering("foo = 1, 2;", false), parenTuples, 0, UnexpectedFailure, true},
		{"spurious omitted flag", pair, rendering("foo = (1, 2);", true), parenTuples, 0, UnexpectedSuccess, true},
		{"wrong grouping", sum, rendering("foo = 0 + 1 + 2;", false), looseTuples, 0, Mismatch, true},
	} {
		s := s
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()
			outcome, err := Check(s.program, s.rendering, s.cfg)
			if !s.fails {
				require.NoError(t, err)
				assert.Equal(t, s.outcome, outcome)
				return
			}
			var failure *Failure
			require.True(t, errors.As(err, &failure), "%v", err)
			assert.Equal(t, s.kind, failure.Kind)
			assert.Equal(t, s.cfg, failure.Config)
			assert.Contains(t, failure.Error(), s.kind.String())
			assert.Contains(t, failure.Error(), s.rendering.String())
		})
	}
}

func TestCheckDoesNotTouchProgram(t *testing.T) {
	t.Parallel()

	program := infix.Calc(infix.AssignTo("foo", infix.IntLit("1")), infix.AssignTo("bar", infix.RefTo("foo")))
	_, err := Check(program, rendering("foo = 1;bar = foo;", false), noTuples)
	require.NoError(t, err)
	_, has := program.Lookup("foo")
	assert.False(t, has)
}

func TestFailureReport(t *testing.T) {
	t.Parallel()

	sum := infix.Calc(infix.AssignTo("foo", infix.BinOp(infix.Add, infix.IntLit("0"), infix.BinOp(infix.Add, infix.IntLit("1"), infix.IntLit("2")))))
	_, err := Check(sum, rendering("foo = 0 + 1 + 2;", false), looseTuples)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--- generated")
	assert.Contains(t, err.Error(), "+++ reparsed")

	_, err = Check(sum, rendering("foo = 0 + ;", false), looseTuples)
	var perr *parser.Error
	require.True(t, errors.As(err, &perr), "%v", err)
	assert.Equal(t, "Empty expression", perr.Message)
	assert.Contains(t, err.Error(), "Empty expression")
}

func TestRun(t *testing.T) {
	t.Parallel()

	log, hook := test.NewNullLogger()
	stats, err := Harness{MaxDepth: 1, OpCount: 1, Log: log, CheckWriter: true}.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4+4*2+4*4*7, stats.Programs)
	assert.Greater(t, stats.Rejected, 0)
	assert.Greater(t, stats.Cases, stats.Programs*len(DefaultConfigs()))
	assert.Zero(t, stats.Cases%len(DefaultConfigs()))

	var depthsOK int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "depth ok" {
			depthsOK++
			assert.Equal(t, logrus.InfoLevel, entry.Level)
		}
	}
	assert.Equal(t, 2, depthsOK)
}

func TestRunTwoStatements(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()
	stats, err := Harness{MaxDepth: 0, OpCount: 2, Log: log}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4*5, stats.Programs)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log, _ := test.NewNullLogger()
	stats, err := Harness{MaxDepth: 3, OpCount: 1, Log: log}.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "%v", err)
	assert.Zero(t, stats.Cases)
}

func TestRunRejectsBadSetup(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()
	_, err := Harness{OpCount: len(progspace.CandidateNames) + 1, Log: log}.Run(context.Background())
	assert.Error(t, err)

	_, err = Harness{Configs: []infix.Config{{TuplesRequireParens: true}}, Log: log}.Run(context.Background())
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	p := newProgress()
	var ticks []int
	for i := 1; i <= 3000; i++ {
		if p.tick() {
			ticks = append(ticks, i)
		}
	}
	assert.Equal(t, []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 2000, 3000}, ticks)
}
