/*
Langfuzz enumerates every sentence a grammar can produce, in a fixed
fair order, and prints them one per line.

It reads a grammar as a JSON document shaped like ast.Grammar — the
textual EBNF dialect described in the engine's design notes is parsed
by an external collaborator, not by this binary.

Usage:

	langfuzz [flags] <grammar.json>

The flags are:

	--json
		JSON-encode each emitted sentence instead of printing it raw.

	-n, --limit N
		Stop after N sentences. 0 (the default) means run until the
		language is exhausted or the output pipe closes.

	--debug
		Trace compilation and label-expansion decisions to stderr.
		Validation is not traced.

Exit codes: 0 on normal termination (including the output pipe closing
under us), 1 on misuse (bad arguments, unreadable file), 2 on a
grammar parse or validation error.
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shadowCow/langfuzz/ast"
	"github.com/shadowCow/langfuzz/generate"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = iota
	exitMisuse
	exitGrammarError
)

// options holds one invocation's parsed flags. A fresh FlagSet per
// call, rather than package-level flag vars, keeps repeated
// invocations (as in tests) from stepping on each other's state.
type options struct {
	json  bool
	limit int
	debug bool
	path  string
}

func parseOptions(args []string, stderr io.Writer) (*options, int) {
	fs := pflag.NewFlagSet("langfuzz", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.BoolVar(&opts.json, "json", false, "JSON-encode each emitted sentence")
	fs.IntVarP(&opts.limit, "limit", "n", 0, "stop after this many sentences (0 = unbounded)")
	fs.BoolVar(&opts.debug, "debug", false, "trace compilation and generation decisions to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, exitMisuse
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: langfuzz [flags] <grammar.json>")
		return nil, exitMisuse
	}
	opts.path = fs.Arg(0)
	return opts, exitSuccess
}

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

// runWithArgs holds everything main would otherwise do directly,
// separating argument handling from os.Exit so tests can exercise it
// without killing the test process.
func runWithArgs(args []string, stdout, stderr io.Writer) int {
	opts, code := parseOptions(args, stderr)
	if opts == nil {
		return code
	}

	data, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "langfuzz: %s\n", err)
		return exitMisuse
	}

	var g ast.Grammar
	if err := json.Unmarshal(data, &g); err != nil {
		fmt.Fprintf(stderr, "langfuzz: malformed grammar: %s\n", err)
		return exitGrammarError
	}

	var genOpts []generate.Option
	if opts.debug {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		genOpts = append(genOpts, generate.WithTraceLogger(slog.New(handler)))
	}

	gen, err := generate.Try(&g, genOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "langfuzz: %s\n", err)
		return exitGrammarError
	}

	return emit(gen, opts, stdout)
}

func emit(gen *generate.Generator, opts *options, stdout io.Writer) int {
	src := gen.Strings()
	for i := 0; opts.limit == 0 || i < opts.limit; i++ {
		sentence, ok := src.Next()
		if !ok {
			break
		}

		line := sentence
		if opts.json {
			encoded, err := json.Marshal(sentence)
			if err != nil {
				// Every sentence is a plain string; Marshal cannot fail.
				panic(err)
			}
			line = string(encoded)
		}

		if _, writeErr := fmt.Fprintln(stdout, line); writeErr != nil {
			// A write failure here is almost always the downstream end
			// of a pipe closing, which we treat as normal termination.
			return exitSuccess
		}
	}
	return exitSuccess
}
