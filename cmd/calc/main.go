package main

// This is a parser and evaluator for arithmetic expressions written in Go.

import (
	"bufio"
	"fmt"
	"os"

	"github.com/letung3105/calc/internal/calc"
	"github.com/spf13/cobra"
)

var showAst bool

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Parse and evaluate arithmetic expressions",
	Long: `Calc parses arithmetic expressions (integers, + - * / %, parentheses,
and unary minus) into syntax trees and evaluates them.

With no arguments, calc reads one expression per line from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		reporter := calc.NewSimpleReporter(os.Stderr)
		interpreter := calc.NewInterpreter(os.Stdout, reporter)
		if len(args) == 0 {
			runPrompt(interpreter, reporter)
			return
		}
		for _, arg := range args {
			run(arg, interpreter, reporter)
		}
		exitIf(reporter.HadError(), 65)
		exitIf(reporter.HadRuntimeError(), 70)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&showAst, "ast", "a", false, "print the parsed tree instead of evaluating it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(64)
	}
}

func run(line string, interpreter *calc.Interpreter, reporter calc.Reporter) {
	expr, err := calc.Parse(line)
	if err != nil {
		reporter.Report(err)
		return
	}
	if showAst {
		printer := new(calc.AstPrinter)
		fmt.Println(printer.Print(expr))
		return
	}
	interpreter.Interpret(expr)
}

// Run the evaluator in REPL mode
func runPrompt(interpreter *calc.Interpreter, reporter calc.Reporter) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), interpreter, reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
