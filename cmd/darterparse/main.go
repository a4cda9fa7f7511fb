/*
Darterparse lexes and parses a source file against a grammar and set of
token rules, and prints the full construction trace: productions,
FIRST/FOLLOW sets, the canonical LR(1) item sets, the ACTION/GOTO table,
any conflicts the configured policy resolved, and the step-by-step parse
trace.

Usage:

	darterparse [flags]

The flags are:

	-v, --version
		Print the current version and exit.

	-r, --rules FILE
		Token rule file to load. Defaults to "rules.txt".

	-g, --grammar FILE
		Grammar file to load. Defaults to "grammar.txt".

	-s, --source FILE
		Source file to parse. Defaults to "source.txt".

	-o, --output FILE
		Write the full trace report here instead of stdout.

	-c, --config FILE
		Optional settings file. Defaults to "darter.toml"; its absence is
		not an error.

	-i, --interactive
		Start an interactive readline-backed REPL: each line entered
		is lexed and parsed against the loaded grammar, with acceptance
		or the resulting syntax error printed immediately.
*/
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/cache"
	"github.com/dekarrin/darter/internal/darter/config"
	"github.com/dekarrin/darter/internal/darter/consoleinit"
	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/lex"
	"github.com/dekarrin/darter/internal/darter/parse"
	"github.com/dekarrin/darter/internal/darter/report"
	"github.com/dekarrin/darter/internal/darter/token"
	"github.com/dekarrin/darter/internal/version"
)

const (
	ExitSuccess = iota
	ExitError
)

var (
	flagVersion   = pflag.BoolP("version", "v", false, "print the version and exit")
	rulesFile     = pflag.StringP("rules", "r", "rules.txt", "token rule file")
	grammarFile   = pflag.StringP("grammar", "g", "grammar.txt", "grammar file")
	sourceFile    = pflag.StringP("source", "s", "source.txt", "source file to parse")
	outputFile    = pflag.StringP("output", "o", "", "write the full trace report here instead of stdout")
	configFile    = pflag.StringP("config", "c", "darter.toml", "optional settings file")
	interactive   = pflag.BoolP("interactive", "i", false, "start an interactive REPL instead of parsing a source file")
)

func main() {
	os.Exit(run())
}

func run() int {
	consoleinit.Init()
	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return ExitSuccess
	}

	cfg := config.Load(*configFile)
	policy := parse.ShiftWins
	if cfg.ConflictPolicy == "reduce-wins" {
		policy = parse.ReduceWins
	}

	ruleData, err := os.ReadFile(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}
	rules, err := lex.LoadRules(bytes.NewReader(ruleData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}
	lexer := lex.NewDFALexer(rules)

	grammarData, err := os.ReadFile(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}
	g, err := grammar.LoadGrammar(bytes.NewReader(grammarData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}

	table := buildTable(g, policy, grammarData, cfg.CacheTables)

	if *interactive {
		runREPL(lexer, table)
		return ExitSuccess
	}

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitError
		}
		defer f.Close()
		out = f
	}

	srcData, err := os.ReadFile(*sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}

	return parseAndReport(out, lexer, table, string(srcData))
}

func buildTable(g *grammar.Grammar, policy parse.ConflictPolicy, grammarData []byte, cacheEnabled bool) *parse.Table {
	if !cacheEnabled {
		return parse.BuildTable(g, policy)
	}

	hash := cache.HashGrammar(grammarData)
	cachePath := *grammarFile + ".darterc"

	aut := automaton.BuildLR1Automaton(g)
	if t, ok := cache.Load(cachePath, hash, aut, policy); ok {
		return t
	}

	t := parse.BuildTable(g, policy)
	cache.Save(cachePath, hash, t)
	return t
}

func parseAndReport(out io.Writer, lexer lex.Lexer, table *parse.Table, src string) int {
	toks, diags := lexer.Lex(src)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "WARN  %d:%d: %s\n", d.Line, d.Col, d.Message)
	}

	fmt.Fprintf(out, "=== RUN %s ===\n", report.RunID())
	fmt.Fprintln(out, "=== PRODUCTIONS ===")
	fmt.Fprintln(out, report.Productions(table.Automaton.Grammar))
	fmt.Fprintln(out, "=== FIRST/FOLLOW ===")
	fmt.Fprintln(out, report.FirstFollowSets(table.Automaton.Grammar, table.Automaton.FirstFollow))
	fmt.Fprintln(out, "=== ITEM SETS ===")
	fmt.Fprintln(out, report.ItemSets(table.Automaton))
	fmt.Fprintln(out, "=== ACTION/GOTO TABLE ===")
	fmt.Fprintln(out, report.ActionGotoTable(table))
	fmt.Fprintln(out, "=== CONFLICTS ===")
	fmt.Fprintln(out, report.Conflicts(table))
	fmt.Fprintln(out, "=== TOKENS ===")
	fmt.Fprintln(out, report.Tokens(toks))

	p := parse.NewParser(table)
	var steps []parse.TraceStep
	p.RegisterTraceListener(func(ts parse.TraceStep) { steps = append(steps, ts) })

	tree, err := p.Parse(token.NewSliceStream(toks))

	fmt.Fprintln(out, "=== PARSE TRACE ===")
	fmt.Fprintln(out, report.Trace(steps))

	if err != nil {
		fmt.Fprintln(out, "=== RESULT ===")
		fmt.Fprintf(out, "REJECTED: %s\n", err)
		return ExitError
	}

	fmt.Fprintln(out, "=== RESULT ===")
	fmt.Fprintln(out, "ACCEPTED")
	fmt.Fprintln(out, tree.String())
	return ExitSuccess
}

func runREPL(lexer lex.Lexer, table *parse.Table) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "darter> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not start interactive session: %s\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		if line == "" {
			continue
		}

		toks, diags := lexer.Lex(line)
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "WARN  %d:%d: %s\n", d.Line, d.Col, d.Message)
		}

		p := parse.NewParser(table)
		tree, err := p.Parse(token.NewSliceStream(toks))
		if err != nil {
			fmt.Printf("REJECTED: %s\n", err)
			continue
		}
		fmt.Println("ACCEPTED")
		fmt.Print(tree.String())
	}
}
