package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) List(ctx context.Context) error  { return f.record("list") }
func (f *fakeExec) Retry(ctx context.Context) error { return f.record("retry") }
func (f *fakeExec) Add(ctx context.Context) error   { return f.record("add") }
func (f *fakeExec) Show(ctx context.Context, arg string) error {
	return f.record("show " + arg)
}
func (f *fakeExec) Edit(ctx context.Context, arg string) error {
	return f.record("edit " + arg)
}
func (f *fakeExec) Delete(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "delete "+arg)
	return fmt.Errorf("handler errors stay inside the REPL")
}
func (f *fakeExec) History(ctx context.Context, arg string) error {
	return f.record("history " + arg)
}
func (f *fakeExec) Stats(ctx context.Context) error { return f.record("stats") }

func captureREPLOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureREPLOutput(t)

	input := strings.Join([]string{
		"help",
		"l",
		"list",
		"",
		"retry",
		"add",
		"show 7",
		"edit 7",
		"delete 7",
		"history",
		"history 5",
		"stats",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, false, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"list", "list", "retry", "add", "show 7", "edit 7", "delete 7", "history ", "history 5", "stats",
	}, exec.calls, "commands after exit are not run")

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Available commands")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
	assert.NotContains(t, joined, "spycats> ", "no prompt for non-terminal input")
}

func TestRunREPL_PromptAndEOF(t *testing.T) {
	out := captureREPLOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, true, bufio.NewReader(strings.NewReader("stats")))

	assert.Equal(t, []string{"stats"}, exec.calls, "last line without newline still runs")
	assert.Equal(t, []string{"spycats> ", "spycats> "}, *out)
}

func TestInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	isTerminal = func(int) bool { return true }
	assert.False(t, interactive(strings.NewReader("")), "only files can be terminals")

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.True(t, interactive(f))

	isTerminal = func(int) bool { return false }
	assert.False(t, interactive(f))
}
