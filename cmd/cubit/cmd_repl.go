package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tangzhangming/cubit/internal/config"
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/interpreter"
	"github.com/tangzhangming/cubit/internal/snapshot"
)

// replCmd 启动交互式环境
func replCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	fmt.Println(i18n.T(i18n.MsgReplBanner, version))
	fmt.Println(i18n.T(i18n.MsgReplHint))
	fmt.Println()

	newREPL(cfg.Repl, os.Stdin, os.Stdout).loop()
}

// repl 交互式环境，一个解释器贯穿整个会话
type repl struct {
	in     *interpreter.Interpreter
	reader *bufio.Reader
	out    io.Writer
	prompt string
	echo   bool
}

func newREPL(cfg config.ReplConfig, r io.Reader, w io.Writer) *repl {
	// input() 和提示符共用同一个缓冲读取器
	reader := bufio.NewReader(r)
	return &repl{
		in: interpreter.New(
			interpreter.WithInput(reader),
			interpreter.WithOutput(w),
		),
		reader: reader,
		out:    w,
		prompt: cfg.Prompt,
		echo:   cfg.Echo,
	}
}

// loop 读取并执行每一行，直到 exit、quit 或输入结束
func (r *repl) loop() {
	for {
		fmt.Fprint(r.out, r.prompt)

		line, err := r.reader.ReadString('\n')
		if line != "" && !r.handle(strings.TrimSpace(line)) {
			fmt.Fprintln(r.out, i18n.T(i18n.MsgReplGoodbye))
			return
		}
		if err != nil {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, i18n.T(i18n.MsgReplGoodbye))
			return
		}
	}
}

// handle 处理一行输入，返回 false 表示退出
func (r *repl) handle(line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "":
		return true
	case "exit", "quit":
		if arg == "" {
			return false
		}
	case "help":
		if arg == "" {
			fmt.Fprintln(r.out, i18n.T(i18n.MsgReplHelp))
			return true
		}
	case "vars":
		if arg == "" {
			r.printVars()
			return true
		}
	case ":save":
		r.save(arg)
		return true
	case ":load":
		r.load(arg)
		return true
	}

	r.eval(line)
	return true
}

func (r *repl) eval(line string) {
	result, err := r.in.Run(line)
	if err != nil {
		fmt.Fprintln(r.out, i18n.T(i18n.ErrRunError, err))
		return
	}
	if r.echo && !result.IsNone() && !r.in.OutputProduced() {
		fmt.Fprintf(r.out, "=> %s\n", result.String())
	}
}

func (r *repl) printVars() {
	names := r.in.Vars()
	if len(names) == 0 {
		fmt.Fprintln(r.out, i18n.T(i18n.MsgReplNoVars))
		return
	}
	for _, name := range names {
		v, _ := r.in.Get(name)
		fmt.Fprintf(r.out, "%s = %s\n", name, v.Repr())
	}
}

func (r *repl) save(path string) {
	if path == "" {
		fmt.Fprintln(r.out, i18n.T(i18n.MsgReplUsageSave))
		return
	}
	n, err := snapshot.Save(path, r.in)
	if err != nil {
		var serr *snapshot.Error
		if !errors.As(err, &serr) {
			err = errors.New(i18n.T(i18n.ErrCannotWriteFile, path, err))
		}
		fmt.Fprintln(r.out, i18n.T(i18n.ErrRunError, err))
		return
	}
	fmt.Fprintln(r.out, i18n.T(i18n.MsgReplSaved, n, path))
}

func (r *repl) load(path string) {
	if path == "" {
		fmt.Fprintln(r.out, i18n.T(i18n.MsgReplUsageLoad))
		return
	}
	names, err := snapshot.Load(path, r.in)
	if err != nil {
		var serr *snapshot.Error
		if errors.As(err, &serr) {
			fmt.Fprintln(r.out, i18n.T(i18n.ErrRunError, err))
		} else {
			fmt.Fprintln(r.out, i18n.T(i18n.ErrCannotReadFile, path, err))
		}
		return
	}
	fmt.Fprintln(r.out, i18n.T(i18n.MsgReplLoaded, len(names), path))
}
