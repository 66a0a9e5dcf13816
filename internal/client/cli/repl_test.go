package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) Open(ctx context.Context) error {
	f.calls = append(f.calls, "open")
	return nil
}
func (f *fakeExec) Forget(ctx context.Context) error {
	f.calls = append(f.calls, "forget")
	return nil
}
func (f *fakeExec) Lookup(ctx context.Context) error {
	f.calls = append(f.calls, "lookup")
	return nil
}
func (f *fakeExec) Exists(ctx context.Context) error {
	f.calls = append(f.calls, "exists")
	return nil
}
func (f *fakeExec) Sweep(ctx context.Context) error {
	f.calls = append(f.calls, "sweep")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"create",
		"open",
		"",
		"lookup",
		"exists",
		"forget",
		"sweep",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, sc)

	want := []string{"create", "open", "lookup", "exists", "forget", "sweep"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("calls order mismatch: got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("create\n"))

	// must return instead of spinning when the input dries up
	runREPL(context.Background(), exec, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "create" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
