package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	"github.com/client9/blispr"
)

const historyFile = "./.blispr-history.txt"

var log = commonlog.GetLogger("blispr.repl")

// REPL represents a Read-Eval-Print Loop over one root environment.
type REPL struct {
	env    *blispr.Env
	input  io.Reader
	output io.Writer
	prompt string
	debug  bool
}

// NewREPL creates a new REPL instance
func NewREPL(env *blispr.Env) *REPL {
	return &REPL{
		env:    env,
		input:  os.Stdin,
		output: os.Stdout,
		prompt: "blispr> ",
	}
}

// NewREPLWithIO creates a new REPL instance with custom input/output
func NewREPLWithIO(env *blispr.Env, input io.Reader, output io.Writer) *REPL {
	return &REPL{
		env:    env,
		input:  input,
		output: output,
		prompt: "blispr> ",
	}
}

// SetPrompt sets the REPL prompt
func (r *REPL) SetPrompt(prompt string) {
	r.prompt = prompt
}

// SetDebug enables printing of each parsed form before evaluation.
func (r *REPL) SetDebug(debug bool) {
	r.debug = debug
}

// isInteractive returns true if the REPL is running in interactive mode
func (r *REPL) isInteractive() bool {
	// Check if input is stdin and if stdin is a terminal
	if r.input == os.Stdin {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	return false
}

// Run starts the REPL loop. An evaluation error never ends the loop;
// interrupt and end-of-input do.
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runScanner()
}

func (r *REPL) runInteractive() error {
	_, _ = fmt.Fprintln(r.output, "Blispr v0.0.1")
	_, _ = fmt.Fprintln(r.output, "Use exit, Ctrl-C, or Ctrl-D to exit prompt")
	if r.debug {
		_, _ = fmt.Fprintln(r.output, "Debug mode enabled")
	}

	rl := readline.NewInstance()
	rl.SetPrompt(r.prompt)

	history, existed, err := openHistory(historyFile)
	if err != nil {
		log.Errorf("history unavailable: %v", err)
	} else {
		if !existed {
			_, _ = fmt.Fprintln(r.output, "No history found.")
		}
		rl.History = history
		defer history.Close()
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrCtrlC) || errors.Is(err, readline.ErrEOF) || errors.Is(err, io.EOF) {
				log.Info("leaving prompt")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			_, _ = fmt.Fprintln(r.output, "Goodbye!")
			return nil
		}
		r.processLine(line)
	}
}

// runScanner handles piped (non-terminal) input: same loop, no
// prompt, no line editing.
func (r *REPL) runScanner() error {
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.processLine(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %v", err)
	}
	return nil
}

// processLine parses and evaluates a single line of input, printing
// either the result or "Error: <message>".
func (r *REPL) processLine(line string) {
	prog, err := blispr.ParseString(line)
	if err != nil {
		_, _ = fmt.Fprintf(r.output, "Error: %v\n", err)
		return
	}
	if r.debug {
		log.Debugf("parsed forms: %v", prog.Cells)
	}

	result, err := blispr.Eval(r.env, prog)
	if err != nil {
		_, _ = fmt.Fprintf(r.output, "Error: %v\n", err)
		return
	}
	_, _ = fmt.Fprintf(r.output, "%s\n", result)
}
