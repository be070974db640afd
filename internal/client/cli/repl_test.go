package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// stubExec records which commands were dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }
func (s *stubExec) List(ctx context.Context) error     { return s.record("list") }
func (s *stubExec) Add(ctx context.Context) error      { return s.record("add") }
func (s *stubExec) Toggle(ctx context.Context) error   { return s.record("toggle") }
func (s *stubExec) Delete(ctx context.Context) error   { return s.record("delete") }

func runWithInput(t *testing.T, a execIface, input string) {
	t.Helper()
	replLoop(context.Background(), a, bufio.NewScanner(strings.NewReader(input)))
}

func TestREPL_LoggedOutCommands(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "register\nlogin\nexit\n")

	if len(s.calls) != 2 || s.calls[0] != "register" || s.calls[1] != "login" {
		t.Fatalf("calls = %v", s.calls)
	}
}

func TestREPL_LoggedOutRejectsItemCommands(t *testing.T) {
	orig := printlnFn
	defer func() { printlnFn = orig }()

	var printed []string
	printlnFn = func(a ...any) {
		for _, v := range a {
			if str, ok := v.(string); ok {
				printed = append(printed, str)
			}
		}
	}

	s := &stubExec{}
	runWithInput(t, s, "list\nexit\n")

	if len(s.calls) != 0 {
		t.Fatalf("item command dispatched while logged out: %v", s.calls)
	}
	if len(printed) == 0 || !strings.Contains(printed[0], "Unknown command") {
		t.Fatalf("expected unknown command message, got %v", printed)
	}
}

func TestREPL_LoggedInCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWithInput(t, s, "list\nadd\ntoggle\ndelete\nlogout\nquit\n")

	want := []string{"list", "add", "toggle", "delete", "logout"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", s.calls, want)
		}
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "") // no input at all

	if len(s.calls) != 0 {
		t.Fatalf("calls = %v", s.calls)
	}
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runWithInput(t, s, "\n\nlist\nexit\n")

	if len(s.calls) != 1 || s.calls[0] != "list" {
		t.Fatalf("calls = %v", s.calls)
	}
}
