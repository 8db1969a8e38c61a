package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Home(ctx context.Context) error { f.calls = append(f.calls, "home"); return nil }
func (f *fakeExec) About(ctx context.Context) error {
	f.calls = append(f.calls, "about")
	return nil
}
func (f *fakeExec) Contact(ctx context.Context) error {
	f.calls = append(f.calls, "contact")
	return nil
}
func (f *fakeExec) Products(ctx context.Context) error {
	f.calls = append(f.calls, "products")
	return nil
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show")
	f.arg = id
	return nil
}
func (f *fakeExec) Wish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "wish")
	f.arg = id
	return nil
}
func (f *fakeExec) Unwish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "unwish")
	f.arg = id
	return nil
}
func (f *fakeExec) Wishlist(ctx context.Context) error {
	f.calls = append(f.calls, "wishlist")
	return nil
}
func (f *fakeExec) Checkout(ctx context.Context) error {
	f.calls = append(f.calls, "checkout")
	return nil
}
func (f *fakeExec) Orders(ctx context.Context) error {
	f.calls = append(f.calls, "orders")
	return nil
}
func (f *fakeExec) Feedback(ctx context.Context) error {
	f.calls = append(f.calls, "feedback")
	return nil
}

func TestRunREPL_ShoppingFlow(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"products",
		"show sofa-01",
		"wish sofa-01",
		"w",
		"login",
		"checkout",
		"orders",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"products", "show", "wish", "wishlist", "login", "checkout", "orders"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgCommandsRequireArg(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"show",
		"wish",
		"unwish",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("commands without arguments must not dispatch: %v", exec.calls)
	}
}

func TestRunREPL_PassesArgument(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("unwish lamp-03\nexit\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if exec.arg != "lamp-03" {
		t.Fatalf("arg = %q, want lamp-03", exec.arg)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
}
