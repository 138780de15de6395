package blispr

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("blispr")

// Eval fully evaluates v in env.
//
// Programs evaluate their forms left-to-right and yield the last
// result; symbols resolve against the environment chain; Sexprs
// apply their first child to the rest. Everything else is already a
// value.
func Eval(env *Env, v Value) (Value, error) {
	switch t := v.(type) {
	case *Program:
		var last Value = t
		for _, form := range t.Cells {
			res, err := Eval(env, form)
			if err != nil {
				return nil, err
			}
			last = res
		}
		return last, nil
	case Sym:
		res, err := env.Get(string(t))
		if err != nil {
			return nil, err
		}
		log.Debugf("symbol lookup: %s -> %s", t, res)
		return res, nil
	case *Sexpr:
		return evalSexpr(env, t)
	default:
		// Num, Qexpr, Builtin, Lambda: quotation or already a value.
		return v, nil
	}
}

// evalSexpr evaluates every child left-to-right, then applies the
// first as a function to the rest.
func evalSexpr(env *Env, s *Sexpr) (Value, error) {
	if len(s.Cells) == 0 {
		return s, nil
	}

	for i, cell := range s.Cells {
		res, err := Eval(env, cell)
		if err != nil {
			return nil, err
		}
		s.Cells[i] = res
	}

	if len(s.Cells) == 1 {
		return s.Cells[0], nil
	}

	f, err := Pop(s, 0)
	if err != nil {
		return nil, err
	}
	log.Debugf("calling %s on %s", f, s)
	return Apply(env, f, s)
}

// Apply invokes f on the argument Sexpr args. f must be a Builtin or
// a Lambda.
func Apply(env *Env, f Value, args *Sexpr) (Value, error) {
	switch fn := f.(type) {
	case Builtin:
		return applyBuiltin(env, fn, args)
	case *Lambda:
		return applyLambda(env, fn, args)
	default:
		return nil, errWrongType("Function", f)
	}
}

// applyLambda binds formals to args in lock-step. If every formal is
// bound the body runs in a child environment; if some remain, a new
// lambda closed over the bound pairs is returned instead.
func applyLambda(env *Env, l *Lambda, args *Sexpr) (Value, error) {
	formals := Copy(l.Formals).(*Qexpr)
	given := len(args.Cells)
	total := len(formals.Cells)

	bound := make(map[string]Value, len(l.Captures)+given)
	for k, v := range l.Captures {
		bound[k] = Copy(v)
	}

	for len(args.Cells) > 0 {
		if len(formals.Cells) == 0 {
			return nil, errNumArguments(total, given)
		}

		symv, err := Pop(formals, 0)
		if err != nil {
			return nil, err
		}
		name, err := AsSym(symv)
		if err != nil {
			return nil, err
		}

		if name == "&" {
			// Rest parameter: exactly one formal may follow; it
			// receives the remaining args as a Qexpr.
			if len(formals.Cells) != 1 {
				return nil, errFunctionFormat()
			}
			restv, err := Pop(formals, 0)
			if err != nil {
				return nil, err
			}
			restName, err := AsSym(restv)
			if err != nil {
				return nil, err
			}
			rest, err := builtinList(args)
			if err != nil {
				return nil, err
			}
			bound[restName] = rest
			break
		}

		val, err := Pop(args, 0)
		if err != nil {
			return nil, err
		}
		bound[name] = val
	}

	if len(formals.Cells) == 0 {
		// Fully applied: evaluate the body in a child environment
		// seeded with captures and parameters.
		local := NewChildEnv(env)
		for k, v := range bound {
			local.Put(k, v)
		}
		body := NewSexpr()
		for _, cell := range l.Body.Cells {
			body.Cells = append(body.Cells, Copy(cell))
		}
		log.Debugf("evaluating fully applied lambda: %s", body)
		return Eval(local, body)
	}

	// Partial application: the accumulated bindings become the new
	// lambda's captures.
	log.Debugf("partial application, %d formals remain", len(formals.Cells))
	return NewLambda(bound, formals, Copy(l.Body).(*Qexpr)), nil
}
