package infix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/progspace/ast"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	calc := Calc(
		AssignTo("foo", BinOp(Add, IntLit("0"), BinOp(Multiply, IntLit("1"), IntLit("2")))),
		AssignTo("bar", TupleOf(RefTo("foo"), AppendOf(IntLit("1")), TupleOf())),
		AssignTo("ping", BinOp(TupleIdx, RefTo("bar"), IntLit("0"))),
		PrintOf(`"out"`, RefTo("ping")),
	)
	out, err := Write(calc)
	require.NoError(t, err)
	assert.Equal(t,
		"foo = (0 + (1 * 2));\n"+
			"bar = (foo, append(1,), (,),);\n"+
			"ping = (bar).(0);\n"+
			"print \"out\" ping;\n",
		out)

	for _, cfg := range []Config{looseTuples, parenTuples, parserTuples} {
		reparsed, err := Parse(out, cfg)
		if assert.NoError(t, err, "%v", cfg) {
			assertTree(t, calc, reparsed)
		}
	}
}

func TestWritePostfix(t *testing.T) {
	t.Parallel()

	calc := Calc(
		AssignTo("foo", BinOp(Subtract, BinOp(Add, IntLit("0"), IntLit("1")), IntLit("2"))),
		PrintOf(`"foo"`, BinOp(Divide, RefTo("foo"), IntLit("2"))),
	)
	out, err := WritePostfix(calc)
	require.NoError(t, err)
	assert.Equal(t, "foo 0 1 + 2 - =\n\"foo\" foo 2 / print\n", out)

	_, err = WritePostfix(Calc(AssignTo("foo", TupleOf())))
	assert.Error(t, err)
}

func TestWriteUnknownNode(t *testing.T) {
	t.Parallel()

	_, err := Write(ast.New(ast.NewTag("other", "Thing", 0)))
	assert.Error(t, err)
}

func TestBuildSymbols(t *testing.T) {
	t.Parallel()

	first := AssignTo("foo", IntLit("1"))
	second := AssignTo("foo", BinOp(Add, RefTo("foo"), IntLit("1")))
	calc := Calc(first, second, PrintOf(`"x"`, RefTo("foo")))
	require.NoError(t, BuildSymbols(calc))

	def, ok := calc.Lookup("foo")
	require.True(t, ok)
	assert.Same(t, second, def)
	_, ok = calc.Lookup("bar")
	assert.False(t, ok)

	assert.Error(t, BuildSymbols(Calc(AssignTo("foo", RefTo("bar")))))
	assert.Error(t, BuildSymbols(IntLit("1")))
	assert.Error(t, BuildSymbols(Calc(IntLit("1"))))
}
