package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// printlnFn and printFn are test seams for REPL output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const helpText = `Available commands:
  (l)ist          show all spy cats
  retry           reload the list from the server
  add             add a spy cat
  show <id>       show one spy cat
  edit <id>       change a spy cat's salary
  delete <id>     delete a spy cat
  history [n]     show the last n API calls
  stats           show API latency statistics
  exit | quit     leave the program`

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	List(ctx context.Context) error
	Retry(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	History(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
}

// runREPL reads commands line by line from r and dispatches them to a until
// input ends or the user types "exit" or "quit". The prompt is printed only
// when prompt is true.
//
// Errors returned by the handlers are dropped here: every handler reports its
// own failure to the user.
func runREPL(ctx context.Context, a execIface, prompt bool, r *bufio.Reader) {
	for {
		if prompt {
			printFn("spycats> ")
		}
		line, err := readLine(r)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "add":
			_ = a.Add(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "history":
			_ = a.History(ctx, arg)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd, "(type 'help' for commands)")
		}
	}
}

// readLine returns the next line without its line ending. A final line with
// no newline is returned before io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// interactive reports whether in is a terminal.
func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// Run loads the roster, then runs the REPL on the app's input until it ends.
func (a *App) Run(ctx context.Context) {
	if a.prompt {
		printlnFn("Spy Cats client (type 'help' for commands)")
	}
	_ = a.Load(ctx)
	runREPL(ctx, a, a.prompt, a.reader)
}
