package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tangzhangming/cubit/internal/config"
	"github.com/tangzhangming/cubit/internal/history"
	"github.com/tangzhangming/cubit/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	m.Run()
}

func runREPL(cfg config.ReplConfig, input string) string {
	var out bytes.Buffer
	newREPL(cfg, strings.NewReader(input), &out).loop()
	return out.String()
}

func TestREPLSession(t *testing.T) {
	input := strings.Join([]string{
		"let x = 5",
		`print "hi"`,
		`let s = "a"`,
		"vars",
		"print y",
		"",
		"exit",
		"print 99",
	}, "\n") + "\n"

	got := runREPL(config.ReplConfig{Prompt: "> ", Echo: true}, input)
	want := "> => 5\n" +
		"> hi\n" +
		"> => a\n" +
		"> s = 'a'\nx = 5\n" +
		"> Error: Undefined variable: y\n" +
		"> " +
		"> Goodbye!\n"
	if got != want {
		t.Errorf("session output:\n%q\nwant:\n%q", got, want)
	}
}

func TestREPLEchoDisabled(t *testing.T) {
	got := runREPL(config.ReplConfig{Prompt: "> "}, "1 + 2\nquit\n")
	if got != "> > Goodbye!\n" {
		t.Errorf("output = %q", got)
	}
}

func TestREPLExitsOnEOF(t *testing.T) {
	got := runREPL(config.ReplConfig{Prompt: "> ", Echo: true}, "let x = 1")
	if got != "> => 1\n\nGoodbye!\n" {
		t.Errorf("output = %q", got)
	}

	got = runREPL(config.ReplConfig{Prompt: "> ", Echo: true}, "")
	if got != "> \nGoodbye!\n" {
		t.Errorf("empty input output = %q", got)
	}
}

func TestREPLSharesInputWithProgram(t *testing.T) {
	input := "let n = input(\"name? \")\nbob\nprint n\nquit\n"
	got := runREPL(config.ReplConfig{Prompt: "> ", Echo: true}, input)
	want := "> name? => bob\n> bob\n> Goodbye!\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestREPLNoVars(t *testing.T) {
	got := runREPL(config.ReplConfig{Prompt: "> "}, "vars\n")
	if !strings.Contains(got, "No variables defined") {
		t.Errorf("output = %q", got)
	}
}

func TestREPLSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.cbor")
	cfg := config.ReplConfig{Prompt: "> ", Echo: true}

	got := runREPL(cfg, "let a = 1\nlet b = [2.0, \"x\"]\n:save "+path+"\n")
	if !strings.Contains(got, "Saved 2 variable(s) to "+path) {
		t.Errorf("save output = %q", got)
	}

	got = runREPL(cfg, ":load "+path+"\nvars\n")
	if !strings.Contains(got, "Loaded 2 variable(s) from "+path) {
		t.Errorf("load output = %q", got)
	}
	if !strings.Contains(got, "a = 1\nb = [2.0, 'x']\n") {
		t.Errorf("vars after load = %q", got)
	}
}

func TestREPLCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{":save", "Usage: :save FILE"},
		{":load", "Usage: :load FILE"},
		{":load " + filepath.Join(t.TempDir(), "missing"), "Error: File '"},
		{":save " + filepath.Join(t.TempDir(), "no", "such", "dir"), "Error: cannot write file"},
		{"help", "REPL Commands:"},
	}
	for _, tc := range tests {
		got := runREPL(config.ReplConfig{Prompt: "> "}, tc.line+"\n")
		if !strings.Contains(got, tc.want) {
			t.Errorf("%q: output = %q, want it to contain %q", tc.line, got, tc.want)
		}
	}
}

func TestRunSource(t *testing.T) {
	var out bytes.Buffer
	err := runSource("let x = 5\nlet y = x * 2\nprint x + y\n", strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("runSource: %v", err)
	}
	if out.String() != "15\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	err = runSource("print 1\nprint 1 / 0\n", strings.NewReader(""), &out)
	if err == nil || err.Error() != "Division by zero" {
		t.Errorf("err = %v", err)
	}
	if out.String() != "1\n" {
		t.Errorf("partial output = %q", out.String())
	}
}

func TestServeReturnsListenErrorAndClosesHistory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.History = filepath.Join(t.TempDir(), "runs.db")

	if err := serve(cfg, "127.0.0.1:99999"); err == nil {
		t.Fatal("expected listen error")
	}

	store, err := history.Open(cfg.Server.History)
	if err != nil {
		t.Fatalf("reopen history: %v", err)
	}
	defer store.Close()
	if n, err := store.Count(context.Background()); err != nil || n != 0 {
		t.Errorf("Count() = %d, %v", n, err)
	}
}
