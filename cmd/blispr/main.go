package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/client9/blispr"
)

func main() {
	var (
		debug bool
		input string
	)
	pflag.BoolVarP(&debug, "debug", "d", false, "enable verbose diagnostic logging to stderr")
	pflag.StringVarP(&input, "input", "i", "", "evaluate the contents of PATH as a single program")
	pflag.Parse()

	if debug {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	env := blispr.NewEnv()

	// if input file passed, eval its contents
	if input != "" {
		if err := runFile(env, input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	repl := NewREPL(env)
	repl.SetDebug(debug)
	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runFile reads the whole file and evaluates it as one program,
// printing the final value on success.
func runFile(env *blispr.Env, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result, err := blispr.EvalString(env, string(content))
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
