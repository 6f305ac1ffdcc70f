/*
File: mython-interpreter/cmd/mython/main.go
*/

// Package main is the entry point for the Mython interpreter: REPL
// mode by default, file-execution mode given a path, and a TCP REPL
// server mode for remote sessions.
package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/rackrossum/mython-interpreter/eval"
	"github.com/rackrossum/mython-interpreter/objects"
	"github.com/rackrossum/mython-interpreter/parser"
	"github.com/rackrossum/mython-interpreter/repl"
)

var MODE = "repl"
var VERSION = "v1.0.0"
var AUTHOR = "rackrossum"
var LICENCE = "MIT"
var PROMPT = "mython >>> "
var CONT_PROMPT = "       ... "

var BANNER = `
  ███▄ ▄███▓▓██   ██▓▄▄▄█████▓ ██░ ██  ▒█████   ███▄    █
 ▓██▒▀█▀ ██▒ ▒██  ██▒▓  ██▒ ▓▒▓██░ ██▒▒██▒  ██▒ ██ ▀█   █
 ▓██    ▓██░  ▒██ ██░▒ ▓██░ ▒░▒██▀▀██░▒██░  ██▒▓██  ▀█ ██▒
 ▒██    ▒██    ░ ▐██▓░░ ▓██▓ ░ ░▓█ ░██ ▒██   ██░▓██▒  ▐▌██▒
 ▒██▒   ░██▒   ░ ██▒▓░  ▒██▒ ░ ░▓█▒░██▓░ ████▓▒░▒██░   ▓██░
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on the first command-line argument:
//
//	mython                - start interactive REPL mode
//	mython <filename>     - execute the given Mython source file
//	mython server <port>  - start a TCP REPL server
//	mython --help         - display usage
//	mython --version      - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: mython server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT, CONT_PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

func showHelp() {
	cyanColor.Println("Mython - A Small, Indentation-Delimited Interpreted Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mython                    Start interactive REPL mode")
	yellowColor.Println("  mython <path-to-file>     Execute a Mython file")
	yellowColor.Println("  mython server <port>      Start REPL server on specified port")
	yellowColor.Println("  mython --help             Display this help message")
	yellowColor.Println("  mython --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                     Exit the REPL")
	yellowColor.Println("  A line ending in ':' opens a block; a blank line closes it")
}

func showVersion() {
	cyanColor.Println("Mython - A Small, Indentation-Delimited Interpreted Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName and executes it, with a panic-recovery
// boundary and parse/runtime error reporting.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(fileContent))
}

// startServer listens on port, handing each accepted connection to its
// own REPL session on its own goroutine.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Mython REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT, CONT_PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates source under a panic
// boundary, exiting non-zero on any parse/lex/runtime error.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	rootNode := par.Parse()

	// A lexer error is checked first: once tokenization itself has
	// gone wrong (e.g. an unterminated string), the truncated token
	// stream typically also fails several parser expectations, and
	// those cascading parse errors are noise next to the root cause.
	if err := par.Lex.Err(); err != nil {
		redColor.Fprintf(os.Stderr, "[LEXER ERROR] %s\n", err)
		os.Exit(1)
	}
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(rootNode)

	if result != nil && objects.IsError(result) {
		redColor.Fprintf(os.Stderr, "%s\n", result.ToString())
		os.Exit(1)
	}
}
