package blispr

// One thin wrapper per operator; a symbol and its word alias (+ and
// add, - and sub, ...) share the same wrapper in the table.

func builtinAdd(a *Sexpr) (Value, error) { return builtinOp(a, "+") }
func builtinSub(a *Sexpr) (Value, error) { return builtinOp(a, "-") }
func builtinMul(a *Sexpr) (Value, error) { return builtinOp(a, "*") }
func builtinDiv(a *Sexpr) (Value, error) { return builtinOp(a, "/") }
func builtinRem(a *Sexpr) (Value, error) { return builtinOp(a, "%") }
func builtinPow(a *Sexpr) (Value, error) { return builtinOp(a, "^") }
func builtinMax(a *Sexpr) (Value, error) { return builtinOp(a, "max") }
func builtinMin(a *Sexpr) (Value, error) { return builtinOp(a, "min") }

// builtinOp applies a binary operation across the argument list as a
// left fold: seed is the first argument, then each remaining
// argument is folded in left-to-right. Every argument must be a Num.
func builtinOp(v *Sexpr, op string) (Value, error) {
	if len(v.Cells) == 0 {
		return nil, errNumArguments(1, 0)
	}

	x, err := Pop(v, 0)
	if err != nil {
		return nil, err
	}

	// No further args and we're doing subtraction: unary negation.
	if op == "-" && len(v.Cells) == 0 {
		n, err := AsNum(x)
		if err != nil {
			return nil, err
		}
		log.Debugf("builtinOp: unary negation of %s", x)
		return Num(-n), nil
	}

	acc, err := AsNum(x)
	if err != nil {
		return nil, err
	}

	for len(v.Cells) > 0 {
		y, err := Pop(v, 0)
		if err != nil {
			return nil, err
		}
		n, err := AsNum(y)
		if err != nil {
			return nil, err
		}
		log.Debugf("builtinOp: %s %d %d", op, acc, n)

		switch op {
		case "+":
			acc += n
		case "-":
			acc -= n
		case "*":
			acc *= n
		case "/":
			if n == 0 {
				return nil, errDivideByZero()
			}
			acc /= n
		case "%":
			if n == 0 {
				return nil, errDivideByZero()
			}
			acc %= n
		case "^":
			// Repeated multiplication. A negative exponent never
			// enters the loop, leaving the identity.
			coll := int64(1)
			for i := int64(0); i < n; i++ {
				coll *= acc
			}
			acc = coll
		case "max":
			if n > acc {
				acc = n
			}
		case "min":
			if n < acc {
				acc = n
			}
		}
	}
	return Num(acc), nil
}
