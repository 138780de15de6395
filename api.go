package blispr

// Public API - these are the functions external code should use

// ParseString parses a string of zero or more forms into a Program.
func ParseString(input string) (*Program, error) {
	return NewParser(input).ParseProgram()
}

// EvalString parses and evaluates input in env, returning the value
// of the last form.
func EvalString(env *Env, input string) (Value, error) {
	prog, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return Eval(env, prog)
}
