/*
Darterlex tokenizes a source file against a set of declarative token rules
and prints the resulting token list.

Usage:

	darterlex [flags]

The flags are:

	-v, --version
		Print the current version and exit.

	-r, --rules FILE
		Token rule file to load. Defaults to "rules.txt".

	-s, --source FILE
		Source file to tokenize. Defaults to "source.txt".

	-o, --output FILE
		Write the token report here instead of stdout.

	-c, --config FILE
		Optional settings file. Defaults to "darter.toml"; its absence is
		not an error.

	--strategy dfa|regex
		Lexer strategy to use. "dfa" (the default) is the table-driven
		scanner; "regex" is the alternative regexp-backed scanner, the
		only one that can recognize complex-number literals (gated by the
		config file's enable_complex_literals setting).
*/
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/darter/internal/darter/config"
	"github.com/dekarrin/darter/internal/darter/consoleinit"
	"github.com/dekarrin/darter/internal/darter/lex"
	"github.com/dekarrin/darter/internal/darter/report"
	"github.com/dekarrin/darter/internal/version"
)

const (
	ExitSuccess = iota
	ExitError
)

var (
	flagVersion  = pflag.BoolP("version", "v", false, "print the version and exit")
	rulesFile    = pflag.StringP("rules", "r", "rules.txt", "token rule file")
	sourceFile   = pflag.StringP("source", "s", "source.txt", "source file to lex")
	outputFile   = pflag.StringP("output", "o", "", "write the token report here instead of stdout")
	configFile   = pflag.StringP("config", "c", "darter.toml", "optional settings file")
	strategyFlag = pflag.String("strategy", "dfa", "lexer strategy: dfa or regex")
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

	srcData, err := os.ReadFile(*sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitError
	}

	var lexer lex.Lexer
	switch *strategyFlag {
	case "dfa":
		lexer = lex.NewDFALexer(rules)
	case "regex":
		rl, err := lex.NewRegexLexer(rules, cfg.EnableComplexLiterals)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitError
		}
		lexer = rl
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown strategy %q, want \"dfa\" or \"regex\"\n", *strategyFlag)
		return ExitError
	}

	toks, diags := lexer.Lex(string(srcData))

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

	fmt.Fprintln(out, report.Tokens(toks))

	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "WARN  %d:%d: %s\n", d.Line, d.Col, d.Message)
	}

	if len(diags) > 0 {
		return ExitError
	}
	return ExitSuccess
}
