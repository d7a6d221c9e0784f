package interpreter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/lexer"
	"github.com/tangzhangming/cubit/internal/parser"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	m.Run()
}

// run 在新解释器中执行 src，返回输出、结果和错误
func run(t *testing.T, src string) (string, Value, error) {
	t.Helper()
	var out bytes.Buffer
	in := New(WithOutput(&out), WithSeed(1))
	v, err := in.Run(src)
	return out.String(), v, err
}

func TestPrintIntegerLiterals(t *testing.T) {
	for _, n := range []string{"0", "7", "42", "1234567890", "9223372036854775807"} {
		out, _, err := run(t, "print "+n)
		if err != nil {
			t.Fatalf("print %s: %v", n, err)
		}
		if out != n+"\n" {
			t.Errorf("print %s: output %q", n, out)
		}
	}
}

func TestRunPrograms(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		output string
		result string
	}{
		{"arithmetic", "let x = 5\nlet y = x * 2\nprint x + y", "15\n", "15"},
		{"if else", "if 1 > 2 { print \"a\" } else { print \"b\" }", "b\n", "'b'"},
		{"while", "let i = 0\nwhile i < 3 { print i\n i = i + 1 }", "0\n1\n2\n", "3"},
		{"append", "let n = [1,2,3]\nappend(n, 4)\nprint n", "[1, 2, 3, 4]\n", "[1, 2, 3, 4]"},
		{"empty program", "", "", "None"},
		{"assignment value", "let a = 1", "", "1"},
		{"if without branch", "if 0 print 1", "", "None"},
		{"while never runs", "while 0 { print 1 }", "", "None"},
		{"shared list", "let a = [1]\nlet b = a\nappend(b, 2)\nprint a", "[1, 2]\n", "[1, 2]"},
		{"reassign", "x = 1\nx = x + 1\nx", "", "2"},
		{"single statement bodies", "let i = 0\nwhile i < 2\n  i = i + 1\nif i == 2 print \"two\" else print \"other\"", "two\n", "'two'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, v, err := run(t, tc.src)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if out != tc.output {
				t.Errorf("output = %q, want %q", out, tc.output)
			}
			if got := v.Repr(); got != tc.result {
				t.Errorf("result = %s, want %s", got, tc.result)
			}
		})
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2", "3"},
		{"7 / 2", "3.5"},
		{"4 / 2", "2.0"},
		{"1 + 2.5", "3.5"},
		{"0.1 + 0.2", "0.30000000000000004"},
		{"10 - 2 - 3", "5"},
		{"-2 * 3", "-6"},
		{"5 - -1", "6"},
		{`"a" + "b"`, "'ab'"},
		{"[1] + [2]", "[1, 2]"},
		{`"ab" * 3`, "'ababab'"},
		{`3 * "ab"`, "'ababab'"},
		{`"a" * 0`, "''"},
		{"[0] * 3", "[0, 0, 0]"},
		{"[] * 4611686018427387904", "[]"},
		{`"" * 9223372036854775807`, "''"},
		{"(1 < 2) + 1", "2"},
		{"1 == 1.0", "True"},
		{`"1" == 1`, "False"},
		{"[1, 2] == [1, 2]", "True"},
		{"[1, 2] < [1, 3]", "True"},
		{"[1, 2] < [1, 2, 0]", "True"},
		{`"abc" < "abd"`, "True"},
		{"3 >= 3", "True"},
		{"2 != 2", "False"},
		{"1 < 2 < 3", "True"},
		{"3 > 2 > 1", "False"},
		{`"abc"[1]`, "'b'"},
		{`"héllo"[1]`, "'é'"},
		{"[1, 2, 3][-1]", "3"},
		{"[1, 2, 3][1.9]", "2"},
		{"[[1, 2], [3]][0][1]", "2"},
		{"9223372036854775807 + 1", "-9223372036854775808"},
	}

	for _, tc := range tests {
		_, v, err := run(t, tc.src)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		if got := v.Repr(); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		src string
		key string
		msg string
	}{
		{"print 5 / 0", i18n.ErrDivisionByZero, "Division by zero"},
		{"print 1 / 0.0", i18n.ErrDivisionByZero, "Division by zero"},
		{"print 1 / (1 < 0)", i18n.ErrDivisionByZero, "Division by zero"},
		{"print undefined_var", i18n.ErrUndefinedVariable, "Undefined variable: undefined_var"},
		{"foo(1)", i18n.ErrUndefinedFunction, "Undefined function: foo"},
		{`1 + "a"`, i18n.ErrUnsupportedOperand, "unsupported operand type(s) for +: 'int' and 'str'"},
		{`"a" - "b"`, i18n.ErrUnsupportedOperand, "unsupported operand type(s) for -: 'str' and 'str'"},
		{`"a" * 1.5`, i18n.ErrUnsupportedOperand, "unsupported operand type(s) for *: 'str' and 'float'"},
		{"[1] / 2", i18n.ErrUnsupportedOperand, "unsupported operand type(s) for /: 'list' and 'int'"},
		{`1 < "a"`, i18n.ErrUnorderable, "'<' not supported between instances of 'int' and 'str'"},
		{"[1, 2][5]", i18n.ErrIndexOutOfRange, "Index out of range"},
		{`""[0]`, i18n.ErrIndexOutOfRange, "Index out of range"},
		{"5[0]", i18n.ErrNotSubscriptable, "'int' object is not subscriptable"},
		{`[1]["a"]`, i18n.ErrIndexNotNumber, "indices must be numbers, not str"},
		{`print "ab" * 9223372036854775807`, i18n.ErrRepeatTooLarge, "repeated str is too large"},
		{"print [1, 2] * 4611686018427387904", i18n.ErrRepeatTooLarge, "repeated list is too large"},
		{`"a" * 100000000000`, i18n.ErrRepeatTooLarge, "repeated str is too large"},
		{"3 * [1, 2, 3] * 100000000", i18n.ErrRepeatTooLarge, "repeated list is too large"},
	}

	for _, tc := range tests {
		_, _, err := run(t, tc.src)
		var rtErr *RuntimeError
		if !errors.As(err, &rtErr) {
			t.Errorf("%s: expected RuntimeError, got %v", tc.src, err)
			continue
		}
		if rtErr.Key != tc.key {
			t.Errorf("%s: key = %s, want %s", tc.src, rtErr.Key, tc.key)
		}
		if err.Error() != tc.msg {
			t.Errorf("%s: message = %q, want %q", tc.src, err.Error(), tc.msg)
		}
	}
}

func TestAppendOnNonList(t *testing.T) {
	_, _, err := run(t, "let s = \"abc\"\nappend(s, 1)")
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if rtErr.Function != "append" {
		t.Errorf("function = %q", rtErr.Function)
	}
	if err.Error() != "append: first argument must be a list, got str" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestOutputBeforeErrorIsKept(t *testing.T) {
	out, _, err := run(t, "print 1\nprint 2\nprint x")
	if err == nil {
		t.Fatal("expected error")
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q", out)
	}
}

func TestSyntaxErrorsRunNothing(t *testing.T) {
	out, _, err := run(t, "print 1\n@")
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("expected LexError, got %v", err)
	}
	if out != "" {
		t.Errorf("output = %q", out)
	}

	out, _, err = run(t, "print 1\nlet = 2")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError, got %v", err)
	}
	if out != "" {
		t.Errorf("output = %q", out)
	}
}

func TestOutputProducedResetsEachRun(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	if _, err := in.Run("print 1"); err != nil {
		t.Fatal(err)
	}
	if !in.OutputProduced() {
		t.Error("OutputProduced() = false after print")
	}

	if _, err := in.Run("1 + 1"); err != nil {
		t.Fatal(err)
	}
	if in.OutputProduced() {
		t.Error("OutputProduced() = true without print")
	}
}

func TestVariablesPersistAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out))

	in.Set("n", NewInt(3))
	if _, err := in.Run("let total = n * 2"); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Run("print total + 1"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "7\n" {
		t.Errorf("output = %q", out.String())
	}

	if got := strings.Join(in.Vars(), ","); got != "n,total" {
		t.Errorf("Vars() = %s", got)
	}
	if v, ok := in.Get("total"); !ok || v.AsInt() != 6 {
		t.Errorf("Get(total) = %v, %v", v, ok)
	}
	if _, ok := in.Get("missing"); ok {
		t.Error("Get(missing) reported a value")
	}
}

func TestRunContextCancelled(t *testing.T) {
	in := New(WithOutput(&bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := in.RunContext(ctx, "while 1 { }")
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) || rtErr.Key != i18n.ErrCancelled {
		t.Fatalf("expected cancellation error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error does not wrap context.Canceled: %v", err)
	}

	// 取消只影响那一次运行
	if v, err := in.Run("let i = 0\nwhile i < 3 { i = i + 1 }"); err != nil || v.AsInt() != 3 {
		t.Errorf("Run after cancel = %v, %v", v, err)
	}
}

func TestRunContextTimeout(t *testing.T) {
	in := New(WithOutput(&bytes.Buffer{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := in.RunContext(ctx, "let i = 0\nwhile 1 { i = i + 1 }")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if v, ok := in.Get("i"); !ok || v.AsInt() == 0 {
		t.Errorf("loop never ran: %v", v)
	}
}

func TestInterpretersAreIsolated(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup

	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			var out bytes.Buffer
			in := New(WithOutput(&out))
			src := fmt.Sprintf("let id = %d\nlet i = 0\nwhile i < 500 { i = i + 1 }\nprint id", id)
			if _, err := in.Run(src); err != nil {
				t.Errorf("worker %d: %v", id, err)
				return
			}
			if got := out.String(); got != fmt.Sprintf("%d\n", id) {
				t.Errorf("worker %d: output %q", id, got)
			}
			if v, _ := in.Get("id"); v.AsInt() != int64(id) {
				t.Errorf("worker %d: id = %s", id, v.Repr())
			}
		}(id)
	}
	wg.Wait()

	// 新的解释器看不到其他实例的变量
	_, _, err := run(t, "print id")
	if err == nil {
		t.Error("fresh interpreter sees a binding from another instance")
	}
}

func TestEvaluateNil(t *testing.T) {
	v, err := New().Evaluate(nil)
	if err != nil || !v.IsNone() {
		t.Errorf("Evaluate(nil) = %v, %v", v, err)
	}
}
