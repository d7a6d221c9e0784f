package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tangzhangming/cubit/internal/config"
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/interpreter"
)

// runCmd 运行 cubit 源文件
func runCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgRunArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)
	source, err := os.ReadFile(input)
	if err != nil {
		printError(i18n.T(i18n.ErrCannotReadFile, input, err))
		os.Exit(1)
	}

	if *verbose {
		printInfo(i18n.T(i18n.MsgRunning, input))
	}

	start := time.Now()
	if err := runSource(string(source), os.Stdin, os.Stdout); err != nil {
		log.Debugf("%s failed: %s", input, err)
		printError(i18n.T(i18n.ErrRunError, err))
		os.Exit(1)
	}

	if *verbose {
		printInfo(i18n.T(i18n.MsgFinished, time.Since(start).Round(time.Microsecond)))
	}
}

// runSource 用新的解释器运行一段源代码
func runSource(source string, stdin io.Reader, stdout io.Writer) error {
	in := interpreter.New(
		interpreter.WithInput(stdin),
		interpreter.WithOutput(stdout),
	)
	_, err := in.Run(source)
	return err
}
