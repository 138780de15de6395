package blispr

// The builtin table. Pure builtins carry a function pointer; the
// environment-sensitive ones (eval, def, =, printenv) carry only
// their name and are dispatched by the evaluator, which holds the
// current Env.

// registerBuiltins installs every builtin into the root environment.
// Called exactly once, from NewEnv.
func registerBuiltins(e *Env) {
	pure := []struct {
		name string
		fn   BuiltinFn
	}{
		{"cons", builtinCons},
		{"head", builtinHead},
		{"init", builtinInit},
		{"join", builtinJoin},
		{"len", builtinLen},
		{"list", builtinList},
		{"tail", builtinTail},

		{"+", builtinAdd},
		{"add", builtinAdd},
		{"-", builtinSub},
		{"sub", builtinSub},
		{"*", builtinMul},
		{"mul", builtinMul},
		{"/", builtinDiv},
		{"div", builtinDiv},
		{"%", builtinRem},
		{"rem", builtinRem},
		{"^", builtinPow},
		{"pow", builtinPow},
		{"max", builtinMax},
		{"min", builtinMin},

		{"\\", builtinLambda},
		{"exit", builtinExit},
	}
	for _, b := range pure {
		e.Put(b.name, NewBuiltin(b.name, b.fn))
	}

	for _, name := range []string{"eval", "def", "=", "printenv"} {
		e.Put(name, NewBuiltin(name, nil))
	}
}

// applyBuiltin dispatches a builtin call. Environment-sensitive
// names are checked first, everything else goes through the pure
// function pointer.
func applyBuiltin(env *Env, b Builtin, args *Sexpr) (Value, error) {
	switch b.Name {
	case "eval":
		return builtinEval(env, args)
	case "def":
		return builtinVar(env, args, false)
	case "=":
		return builtinVar(env, args, true)
	case "printenv":
		return builtinPrintenv(env, args)
	}
	return b.Fn(args)
}

// builtinEval treats its Qexpr argument as an Sexpr and evaluates it
// in the current environment.
func builtinEval(env *Env, v *Sexpr) (Value, error) {
	if len(v.Cells) != 1 {
		return nil, errNumArguments(1, len(v.Cells))
	}
	arg, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	q, ok := arg.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", arg)
	}
	s := NewSexpr()
	for _, cell := range q.Cells {
		s.Cells = append(s.Cells, Copy(cell))
	}
	log.Debugf("eval: %s", s)
	return Eval(env, s)
}

// builtinVar binds symbols to values: def targets the root
// environment, = (local) targets the current one. Returns the empty
// Sexpr.
func builtinVar(env *Env, v *Sexpr, local bool) (Value, error) {
	if len(v.Cells) == 0 {
		return nil, errNumArguments(1, 0)
	}
	names, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}
	q, ok := names.(*Qexpr)
	if !ok {
		return nil, errWrongType("qexpr", names)
	}

	syms := make([]string, 0, len(q.Cells))
	for _, cell := range q.Cells {
		s, err := AsSym(cell)
		if err != nil {
			return nil, err
		}
		syms = append(syms, s)
	}
	if len(syms) != len(v.Cells) {
		return nil, errNumArguments(len(syms), len(v.Cells))
	}

	for i, name := range syms {
		if local {
			log.Debugf("binding %s to %s in local env", name, v.Cells[i])
			env.Put(name, v.Cells[i])
		} else {
			log.Debugf("binding %s to %s in root env", name, v.Cells[i])
			env.Def(name, v.Cells[i])
		}
	}
	return NewSexpr(), nil
}

// builtinPrintenv evaluates the environment listing so the REPL
// prints the bindings.
func builtinPrintenv(env *Env, _ *Sexpr) (Value, error) {
	return Eval(env, env.ListAll())
}
