package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/tangzhangming/cubit/internal/config"
	"github.com/tangzhangming/cubit/internal/i18n"
)

const version = "1.0.0"

var log = commonlog.GetLogger("cubit.cli")

func main() {
	// 初始化国际化
	i18n.Init()

	cfg := loadConfig()

	if len(os.Args) < 2 {
		replCmd(cfg, nil)
		return
	}

	switch os.Args[1] {
	case "run":
		runCmd(cfg, os.Args[2:])
	case "repl":
		replCmd(cfg, os.Args[2:])
	case "serve":
		serveCmd(cfg, os.Args[2:])
	case "version":
		fmt.Println("cubit version", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// cubit FILE 等同于 cubit run FILE
		if info, err := os.Stat(os.Args[1]); err == nil && !info.IsDir() {
			runCmd(cfg, os.Args[1:])
			return
		}
		printError(i18n.T(i18n.MsgUnknownCommand, os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

// loadConfig 加载配置并初始化语言和日志
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg, path, err := config.FindAndLoad(cwd)
	if err != nil {
		printError(i18n.T(i18n.ErrCannotLoadConfig, err))
		os.Exit(1)
	}

	if lang := i18n.ParseLanguage(cfg.Language); lang != "" {
		i18n.SetLanguage(lang)
	}

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logFile)

	if path != "" {
		log.Info(i18n.T(i18n.MsgUsingConfig, path))
	} else {
		log.Debug(i18n.T(i18n.MsgNoConfig))
	}
	return cfg
}

func printUsage() {
	fmt.Println(i18n.T(i18n.MsgUsage))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgCommands))
	fmt.Println(i18n.T(i18n.MsgCmdRun))
	fmt.Println(i18n.T(i18n.MsgCmdRepl))
	fmt.Println(i18n.T(i18n.MsgCmdServe))
	fmt.Println(i18n.T(i18n.MsgCmdVersion))
	fmt.Println(i18n.T(i18n.MsgCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgUseHelp))
}

// 辅助打印函数
func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func printInfo(msg string) {
	fmt.Println(msg)
}
