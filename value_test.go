package blispr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qexprOf(cells ...Value) *Qexpr {
	q := NewQexpr()
	q.Cells = append(q.Cells, cells...)
	return q
}

func sexprOf(cells ...Value) *Sexpr {
	s := NewSexpr()
	s.Cells = append(s.Cells, cells...)
	return s
}

func TestValueString(t *testing.T) {
	lambda := NewLambda(nil, qexprOf(Sym("x"), Sym("y")), qexprOf(Sym("+"), Sym("x"), Sym("y")))

	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"num", Num(42), "42"},
		{"negative num", Num(-17), "-17"},
		{"sym", Sym("head"), "head"},
		{"empty sexpr", NewSexpr(), "()"},
		{"sexpr", sexprOf(Sym("+"), Num(1), Num(2)), "(+ 1 2)"},
		{"empty qexpr", NewQexpr(), "{}"},
		{"qexpr", qexprOf(Num(1), Num(2), Num(3)), "{1 2 3}"},
		{"nested", sexprOf(Sym("eval"), qexprOf(Sym("+"), Num(1))), "(eval {+ 1})"},
		{"program", NewProgram(), "<toplevel>"},
		{"builtin", NewBuiltin("head", builtinHead), "<builtin: head>"},
		{"lambda", lambda, "(\\ {x y} {+ x y})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		lhs   Value
		rhs   Value
		equal bool
	}{
		{"num num", Num(3), Num(3), true},
		{"num num differ", Num(3), Num(4), false},
		{"num sym", Num(3), Sym("3"), false},
		{"sym sym", Sym("x"), Sym("x"), true},
		{"qexpr deep", qexprOf(Num(1), qexprOf(Num(2))), qexprOf(Num(1), qexprOf(Num(2))), true},
		{"qexpr length", qexprOf(Num(1)), qexprOf(Num(1), Num(2)), false},
		{"sexpr vs qexpr", sexprOf(Num(1)), qexprOf(Num(1)), false},
		{"builtin nominal", NewBuiltin("head", builtinHead), NewBuiltin("head", nil), true},
		{"builtin differ", NewBuiltin("head", builtinHead), NewBuiltin("tail", builtinTail), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.lhs.Equal(tt.rhs))
		})
	}
}

func TestLambdaEqual(t *testing.T) {
	mk := func(captures map[string]Value) *Lambda {
		return NewLambda(captures, qexprOf(Sym("y")), qexprOf(Sym("+"), Sym("x"), Sym("y")))
	}

	assert.True(t, mk(nil).Equal(mk(nil)))
	assert.True(t, mk(map[string]Value{"x": Num(2)}).Equal(mk(map[string]Value{"x": Num(2)})))
	assert.False(t, mk(map[string]Value{"x": Num(2)}).Equal(mk(map[string]Value{"x": Num(3)})))
	assert.False(t, mk(map[string]Value{"x": Num(2)}).Equal(mk(nil)))
}

func TestAddPopLen(t *testing.T) {
	s := NewSexpr()
	require.NoError(t, Add(s, Num(1)))
	require.NoError(t, Add(s, Sym("x")))

	n, err := Len(s)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	v, err := Pop(s, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1)))

	n, err = Len(s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAddToAtomFails(t *testing.T) {
	for _, v := range []Value{Num(1), Sym("x"), NewBuiltin("head", builtinHead)} {
		err := Add(v, Num(2))
		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, ErrNoChildren, lerr.Kind)
	}
}

func TestPopFromAtomFails(t *testing.T) {
	_, err := Pop(Num(1), 0)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrNoChildren, lerr.Kind)
}

func TestJoin(t *testing.T) {
	dst := qexprOf(Num(1), Num(2))
	src := qexprOf(Num(3), Num(4))
	require.NoError(t, Join(dst, src))
	assert.Equal(t, "{1 2 3 4}", dst.String())
	// src is consumed
	assert.Empty(t, src.Cells)

	err := Join(dst, Num(1))
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrNoChildren, lerr.Kind)
}

func TestAccessors(t *testing.T) {
	n, err := AsNum(Num(9))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	var lerr *Error
	_, err = AsNum(Sym("x"))
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrNotANumber, lerr.Kind)

	s, err := AsSym(Sym("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = AsSym(Num(1))
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrWrongType, lerr.Kind)

	_, err = Len(Num(1))
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrNoChildren, lerr.Kind)
}

func TestCopyIsDeep(t *testing.T) {
	orig := qexprOf(Num(1), qexprOf(Num(2)))
	dup := Copy(orig).(*Qexpr)
	require.True(t, orig.Equal(dup))

	// mutating the copy leaves the original alone
	inner := dup.Cells[1].(*Qexpr)
	inner.Cells = append(inner.Cells, Num(99))
	assert.Equal(t, "{1 {2}}", orig.String())
	assert.Equal(t, "{1 {2 99}}", dup.String())
}

func TestCopyLambda(t *testing.T) {
	l := NewLambda(map[string]Value{"x": qexprOf(Num(1))},
		qexprOf(Sym("y")), qexprOf(Sym("x")))
	dup := Copy(l).(*Lambda)
	require.True(t, l.Equal(dup))

	dup.Captures["x"].(*Qexpr).Cells = nil
	assert.Equal(t, "{1}", l.Captures["x"].String())
}
