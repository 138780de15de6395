package blispr

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the fundamental interface for all blispr values.
type Value interface {
	String() string
	Equal(rhs Value) bool
}

// Num is a signed 64-bit integer atom.
type Num int64

// NewNum creates a Num value.
func NewNum(n int64) Num {
	return Num(n)
}

func (n Num) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Num) Equal(rhs Value) bool {
	other, ok := rhs.(Num)
	return ok && other == n
}

// Sym is an identifier atom.
type Sym string

// NewSym creates a Sym value.
func NewSym(s string) Sym {
	return Sym(s)
}

func (s Sym) String() string {
	return string(s)
}

func (s Sym) Equal(rhs Value) bool {
	other, ok := rhs.(Sym)
	return ok && other == s
}

// Sexpr is an ordered sequence of children, evaluated as application.
type Sexpr struct {
	Cells []Value
}

// NewSexpr creates an empty Sexpr.
func NewSexpr() *Sexpr {
	return &Sexpr{}
}

func (s *Sexpr) String() string {
	return "(" + printCells(s.Cells) + ")"
}

func (s *Sexpr) Equal(rhs Value) bool {
	other, ok := rhs.(*Sexpr)
	return ok && equalCells(s.Cells, other.Cells)
}

// Qexpr is an ordered sequence of children, inert under evaluation.
type Qexpr struct {
	Cells []Value
}

// NewQexpr creates an empty Qexpr.
func NewQexpr() *Qexpr {
	return &Qexpr{}
}

func (q *Qexpr) String() string {
	return "{" + printCells(q.Cells) + "}"
}

func (q *Qexpr) Equal(rhs Value) bool {
	other, ok := rhs.(*Qexpr)
	return ok && equalCells(q.Cells, other.Cells)
}

// Program is a sequence of top-level forms. Evaluating it yields the
// result of the last form.
type Program struct {
	Cells []Value
}

// NewProgram creates an empty Program.
func NewProgram() *Program {
	return &Program{}
}

func (p *Program) String() string {
	return "<toplevel>"
}

func (p *Program) Equal(rhs Value) bool {
	other, ok := rhs.(*Program)
	return ok && equalCells(p.Cells, other.Cells)
}

// BuiltinFn is the signature of a pure builtin. It receives the
// argument Sexpr (the children following the function symbol) and
// may consume it.
type BuiltinFn func(args *Sexpr) (Value, error)

// Builtin is a named reference to a function in the builtin table.
// Environment-sensitive builtins carry only the name; the evaluator
// dispatches them by name before consulting Fn.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// NewBuiltin creates a Builtin value.
func NewBuiltin(name string, fn BuiltinFn) Builtin {
	return Builtin{Name: name, Fn: fn}
}

func (b Builtin) String() string {
	return "<builtin: " + b.Name + ">"
}

// Equal is nominal for builtins: two builtins are equal when they
// share a name.
func (b Builtin) Equal(rhs Value) bool {
	other, ok := rhs.(Builtin)
	return ok && other.Name == b.Name
}

// Lambda is a function value with lexical capture. Captures holds
// bindings supplied by prior partial application; Formals is a Qexpr
// of Sym values (possibly with a "&" rest marker); Body is a Qexpr.
type Lambda struct {
	Captures map[string]Value
	Formals  *Qexpr
	Body     *Qexpr
}

// NewLambda creates a Lambda value. A nil captures map is treated as
// empty.
func NewLambda(captures map[string]Value, formals, body *Qexpr) *Lambda {
	if captures == nil {
		captures = make(map[string]Value)
	}
	return &Lambda{Captures: captures, Formals: formals, Body: body}
}

func (l *Lambda) String() string {
	return fmt.Sprintf("(\\ %s %s)", l.Formals, l.Body)
}

// Equal is structural for lambdas: same captures, formals, and body.
func (l *Lambda) Equal(rhs Value) bool {
	other, ok := rhs.(*Lambda)
	if !ok {
		return false
	}
	if len(l.Captures) != len(other.Captures) {
		return false
	}
	for k, v := range l.Captures {
		ov, ok := other.Captures[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return l.Formals.Equal(other.Formals) && l.Body.Equal(other.Body)
}

// container is implemented by the three child-holding variants.
type container interface {
	cells() *[]Value
}

func (s *Sexpr) cells() *[]Value   { return &s.Cells }
func (q *Qexpr) cells() *[]Value   { return &q.Cells }
func (p *Program) cells() *[]Value { return &p.Cells }

// Add appends child to a containing value.
func Add(v, child Value) error {
	c, ok := v.(container)
	if !ok {
		return errNoChildren()
	}
	*c.cells() = append(*c.cells(), child)
	return nil
}

// Pop removes and returns the child at index i.
func Pop(v Value, i int) (Value, error) {
	c, ok := v.(container)
	if !ok {
		return nil, errNoChildren()
	}
	cs := c.cells()
	if i < 0 || i >= len(*cs) {
		return nil, errEmptyList()
	}
	ret := (*cs)[i]
	*cs = append((*cs)[:i], (*cs)[i+1:]...)
	return ret, nil
}

// Join appends every child of src to dst in order. src is consumed.
func Join(dst, src Value) error {
	d, ok := dst.(container)
	if !ok {
		return errNoChildren()
	}
	s, ok := src.(container)
	if !ok {
		return errNoChildren()
	}
	*d.cells() = append(*d.cells(), *s.cells()...)
	*s.cells() = nil
	return nil
}

// Len returns the number of children of a containing value.
func Len(v Value) (int, error) {
	c, ok := v.(container)
	if !ok {
		return 0, errNoChildren()
	}
	return len(*c.cells()), nil
}

// AsNum returns the integer payload of a Num.
func AsNum(v Value) (int64, error) {
	n, ok := v.(Num)
	if !ok {
		return 0, errNotANumber()
	}
	return int64(n), nil
}

// AsSym returns the name of a Sym.
func AsSym(v Value) (string, error) {
	s, ok := v.(Sym)
	if !ok {
		return "", errWrongType("symbol", v)
	}
	return string(s), nil
}

// Copy returns a deep copy of v. Atoms and builtins are immutable
// and shared; containers and lambdas are cloned all the way down.
func Copy(v Value) Value {
	switch t := v.(type) {
	case *Sexpr:
		return &Sexpr{Cells: copyCells(t.Cells)}
	case *Qexpr:
		return &Qexpr{Cells: copyCells(t.Cells)}
	case *Program:
		return &Program{Cells: copyCells(t.Cells)}
	case *Lambda:
		captures := make(map[string]Value, len(t.Captures))
		for k, cv := range t.Captures {
			captures[k] = Copy(cv)
		}
		return &Lambda{
			Captures: captures,
			Formals:  Copy(t.Formals).(*Qexpr),
			Body:     Copy(t.Body).(*Qexpr),
		}
	default:
		return v
	}
}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	ret := make([]Value, len(cells))
	for i, c := range cells {
		ret[i] = Copy(c)
	}
	return ret
}

func printCells(cells []Value) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func equalCells(lhs, rhs []Value) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i, c := range lhs {
		if !c.Equal(rhs[i]) {
			return false
		}
	}
	return true
}

// typeName names a value's variant for error messages.
func typeName(v Value) string {
	switch v.(type) {
	case Num:
		return "number"
	case Sym:
		return "symbol"
	case *Sexpr:
		return "sexpr"
	case *Qexpr:
		return "qexpr"
	case *Program:
		return "toplevel"
	case Builtin, *Lambda:
		return "function"
	}
	return "unknown"
}
