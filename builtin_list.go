package blispr

import (
	"fmt"
	"os"
)

// popQexpr pops the first argument and requires it to be a Qexpr.
func popQexpr(v *Sexpr) (*Qexpr, error) {
	if len(v.Cells) == 0 {
		return nil, errNumArguments(1, 0)
	}
	arg, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	q, ok := arg.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", arg)
	}
	return q, nil
}

// builtinList wraps its arguments in a Qexpr.
func builtinList(v *Sexpr) (Value, error) {
	log.Debugf("builtinList: building list from %s", v)
	q := NewQexpr()
	q.Cells = append(q.Cells, v.Cells...)
	v.Cells = nil
	return q, nil
}

// builtinHead returns the first element of a Qexpr.
func builtinHead(v *Sexpr) (Value, error) {
	q, err := popQexpr(v)
	if err != nil {
		return nil, err
	}
	if len(q.Cells) == 0 {
		return nil, errEmptyList()
	}
	return q.Cells[0], nil
}

// builtinTail returns a new Qexpr with all but the first element.
func builtinTail(v *Sexpr) (Value, error) {
	q, err := popQexpr(v)
	if err != nil {
		return nil, err
	}
	if len(q.Cells) == 0 {
		return nil, errEmptyList()
	}
	ret := NewQexpr()
	ret.Cells = append(ret.Cells, q.Cells[1:]...)
	return ret, nil
}

// builtinInit returns a new Qexpr with all but the last element. An
// empty argument yields the empty Qexpr.
func builtinInit(v *Sexpr) (Value, error) {
	q, err := popQexpr(v)
	if err != nil {
		return nil, err
	}
	ret := NewQexpr()
	if len(q.Cells) > 0 {
		ret.Cells = append(ret.Cells, q.Cells[:len(q.Cells)-1]...)
	}
	return ret, nil
}

// builtinJoin concatenates its Qexpr arguments in order.
func builtinJoin(v *Sexpr) (Value, error) {
	ret := NewQexpr()
	for len(v.Cells) > 0 {
		next, err := Pop(v, 0)
		if err != nil {
			return nil, err
		}
		if _, ok := next.(*Qexpr); !ok {
			return nil, errWrongType("qexpr", next)
		}
		if err := Join(ret, next); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// builtinCons attaches a value to the front of a Qexpr.
func builtinCons(v *Sexpr) (Value, error) {
	if len(v.Cells) != 2 {
		return nil, errNumArguments(2, len(v.Cells))
	}
	elem, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	rest, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	q, ok := rest.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", rest)
	}
	ret := NewQexpr()
	ret.Cells = append(ret.Cells, elem)
	ret.Cells = append(ret.Cells, q.Cells...)
	return ret, nil
}

// builtinLen returns the child count of a Qexpr as a Num.
func builtinLen(v *Sexpr) (Value, error) {
	if len(v.Cells) != 1 {
		return nil, errNumArguments(1, len(v.Cells))
	}
	q, err := popQexpr(v)
	if err != nil {
		return nil, err
	}
	return Num(len(q.Cells)), nil
}

// builtinLambda builds a Lambda from a formals Qexpr and a body
// Qexpr. The fresh lambda has no captures.
func builtinLambda(v *Sexpr) (Value, error) {
	if len(v.Cells) != 2 {
		return nil, errNumArguments(2, len(v.Cells))
	}
	formals, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	body, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}

	fq, ok := formals.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", formals)
	}
	for _, cell := range fq.Cells {
		if _, err := AsSym(cell); err != nil {
			return nil, err
		}
	}
	bq, ok := body.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", body)
	}
	return NewLambda(nil, fq, bq), nil
}

// builtinExit terminates the process with success.
func builtinExit(_ *Sexpr) (Value, error) {
	fmt.Println("Goodbye!")
	os.Exit(0)
	return nil, nil
}
