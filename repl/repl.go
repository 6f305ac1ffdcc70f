/*
File: mython-interpreter/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for the Mython
// interpreter: an interactive session with line editing/history via
// readline and colored result/error feedback via fatih/color.
//
// Unlike the teacher's brace-delimited Go-Mix, Mython blocks are
// indentation-delimited, so a single Readline() call cannot be handed
// straight to the parser the way go-mix's REPL does — a `class`/`if`/
// `def` header needs every line of its indented body collected first.
// Start therefore accumulates lines into a block while a header line
// (one ending in `:`) is open, switching to a continuation prompt,
// and only parses/evaluates once the block is closed by a blank line.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rackrossum/mython-interpreter/eval"
	"github.com/rackrossum/mython-interpreter/objects"
	"github.com/rackrossum/mython-interpreter/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	// ContinuationPrompt is shown while a multi-line block is still
	// open (a header line ending in ':' has been entered but its
	// indented body hasn't been closed by a blank line yet).
	ContinuationPrompt string
}

// NewRepl creates a Repl with the given banner/metadata and prompts.
func NewRepl(banner, version, author, line, license, prompt, continuationPrompt string) *Repl {
	return &Repl{
		Banner:             banner,
		Version:            version,
		Author:             author,
		Line:               line,
		License:            license,
		Prompt:             prompt,
		ContinuationPrompt: continuationPrompt,
	}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Mython!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "A line ending in ':' opens a block — close it with a blank line")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-eval-print loop until '.exit', EOF, or a
// readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	var block []string
	inBlock := false

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		line = strings.TrimRight(line, "\r\n")

		if !inBlock && strings.TrimSpace(line) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if inBlock {
			if strings.TrimSpace(line) == "" {
				r.executeWithRecovery(writer, strings.Join(block, "\n")+"\n", evaluator)
				block = nil
				inBlock = false
				rl.SetPrompt(r.Prompt)
				continue
			}
			block = append(block, line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		rl.SaveHistory(line)

		if strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
			block = []string{line}
			inBlock = true
			rl.SetPrompt(r.ContinuationPrompt)
			continue
		}

		r.executeWithRecovery(writer, line+"\n", evaluator)
	}
}

// executeWithRecovery parses and evaluates src, printing parse errors,
// runtime errors, or the resulting value's string form — wrapped in a
// panic boundary so a host-level bug surfaces as a message instead of
// killing the session.
func (r *Repl) executeWithRecovery(writer io.Writer, src string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(src)
	rootNode := par.Parse()

	// Check the lexer's error before the parser's: a tokenization
	// failure (e.g. an unterminated string) usually cascades into
	// several parser expectation errors that are noise next to the
	// root cause.
	if err := par.Lex.Err(); err != nil {
		redColor.Fprintf(writer, "[LEXER ERROR] %s\n", err)
		return
	}
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", err)
		}
		return
	}

	result := evaluator.Eval(rootNode)
	if result == nil {
		return
	}
	if objects.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.ToString())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.ToString())
}
