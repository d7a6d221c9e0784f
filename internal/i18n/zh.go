package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer and parser errors
	ErrUnexpectedChar:  "第 %[2]d 行第 %[3]d 列: 无法识别的字符 '%[1]s'",
	ErrExpectedToken:   "第 %[3]d 行第 %[4]d 列: 期望 %[1]s, 实际是 %[2]s",
	ErrUnexpectedToken: "第 %[2]d 行第 %[3]d 列: 意外的 token %[1]s",

	// Runtime errors
	ErrUndefinedVariable:  "未定义的变量: %s",
	ErrUndefinedFunction:  "未定义的函数: %s",
	ErrDivisionByZero:     "除数为零",
	ErrUnsupportedOperand: "运算符 %s 不支持的操作数类型: '%s' 和 '%s'",
	ErrUnorderable:        "'%s' 不支持 '%s' 与 '%s' 之间的比较",
	ErrNotSubscriptable:   "'%s' 类型的值不支持下标访问",
	ErrIndexNotNumber:     "下标必须是数字, 实际是 %s",
	ErrIndexOutOfRange:    "下标越界",
	ErrCancelled:          "执行被取消: %v",
	ErrBuiltinFailed:      "%s: %s",
	ErrRepeatTooLarge:     "重复后的 %s 过大",
	ErrIO:                 "I/O 错误: %v",

	// Built-in argument errors
	ErrArgCount:       "需要 %d 个参数, 实际 %d 个",
	ErrArgCountRange:  "需要 %d 到 %d 个参数, 实际 %d 个",
	ErrArgCountMin:    "至少需要 %d 个参数, 实际 %d 个",
	ErrNotList:        "第一个参数必须是列表, 实际是 %s",
	ErrNotNumber:      "参数必须是数字, 实际是 %s",
	ErrNotInteger:     "参数必须是整数, 实际是 %s",
	ErrNotSequence:    "参数必须是列表或字符串, 实际是 %s",
	ErrMathDomain:     "数学定义域错误",
	ErrEmptySequence:  "参数是空序列",
	ErrValueNotInList: "列表中没有该值",
	ErrPopEmpty:       "不能从空列表中弹出",
	ErrPopIndex:       "pop 下标越界",
	ErrBadInt:         "无法转换为整数: '%s'",
	ErrBadFloat:       "无法转换为浮点数: '%s'",
	ErrNotConvertible: "无法将 %s 转换为 %s",
	ErrEmptyRange:     "randint(%d, %d) 的范围为空",
	ErrEmptySeparator: "分隔符为空",
	ErrInputEOF:       "读取输入时遇到 EOF",

	// CLI - Usage and help
	MsgUsage:          "用法: cubit <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdRun:         "  run      运行 cubit 源文件",
	MsgCmdRepl:        "  repl     启动交互式解释器",
	MsgCmdServe:       "  serve    启动 HTTP 执行接口",
	MsgCmdVersion:     "  version  打印版本信息",
	MsgCmdHelp:        "  help     打印帮助信息",
	MsgUseHelp:        "使用 \"cubit <命令> -h\" 获取命令的详细信息。",
	MsgUnknownCommand: "未知命令: %s",

	// CLI - Run command
	MsgRunUsage:       "用法: cubit run [选项] <文件>",
	MsgRunDescription: "使用全新的解释器运行 cubit 源文件。",
	MsgRunArgInput:    "  <文件>    源文件",
	MsgRunOptVerbose:  "详细输出",

	// CLI - Serve command
	MsgServeUsage:       "用法: cubit serve [选项]",
	MsgServeDescription: "提供 POST /execute 接口，每个请求使用独立的解释器。",
	MsgServeOptAddr:     "监听地址（覆盖 cubit.toml 和 PORT）",

	// CLI - Common errors
	ErrInputRequired:    "错误: 需要指定输入文件",
	ErrCannotLoadConfig: "无法加载配置: %v",
	ErrCannotReadFile:   "错误: 文件 '%s' 不存在 (%v)",
	ErrCannotWriteFile:  "无法写入文件 %s: %v",
	ErrRunError:         "错误: %v",

	// CLI - Info messages
	MsgUsingConfig: "使用配置: %s",
	MsgNoConfig:    "未找到 cubit.toml，使用默认配置",
	MsgRunning:     "正在运行 %s",
	MsgFinished:    "运行结束，耗时 %s",

	// REPL
	MsgReplBanner: "Cubit 编程语言 v%s",
	MsgReplHint:   "输入 'exit' 或 'quit' 退出，'help' 查看帮助",
	MsgReplHelp: `
Cubit 编程语言 - 帮助
=====================

基本语法:
  - 变量: let x = 10 或 x = 10
  - 算术: +, -, *, /
  - 比较: ==, !=, <, >, <=, >=
  - 输出: print 表达式
  - 注释: # 这是注释
  - 列表: let xs = [1, 2, 3]; print xs[0]

控制流:
  - 条件: if 条件 { ... } else { ... }
  - 循环: while 条件 { ... }

内置函数:
  数学:    sqrt, pow, abs, min, max, floor, ceil, round, sin, cos, tan
  字符串:  len, upper, lower, split, join, strip, replace, startswith, endswith
  列表:    append, pop, insert, remove, reverse, sort
  随机:    random, randint, choice, shuffle
  类型:    int, float, str
  输入:    input

REPL 命令:
  help         - 显示帮助
  vars         - 显示所有变量
  :save 文件   - 保存变量到文件
  :load 文件   - 从文件加载变量
  exit         - 退出
  quit         - 退出
`,
	MsgReplGoodbye:   "再见！",
	MsgReplNoVars:    "尚未定义任何变量",
	MsgReplSaved:     "已保存 %d 个变量到 %s",
	MsgReplLoaded:    "已从 %[2]s 加载 %[1]d 个变量",
	MsgReplUsageSave: "用法: :save 文件",
	MsgReplUsageLoad: "用法: :load 文件",

	// Server
	MsgServerWelcome:    "欢迎使用 Cubit 编程语言 API",
	MsgServerListening:  "正在监听 %s",
	MsgServerStopped:    "服务已停止",
	ErrBadRequest:       "请求体无效: %v",
	ErrMethodNotAllowed: "不支持的请求方法",
	ErrHistoryDisabled:  "未启用执行历史",
	ErrHistoryFailed:    "无法读取执行历史: %v",
	ErrOutputLimit:      "输出超过 %d 字节的上限",
	ErrBadLimit:         "无效的 limit 参数 %q",

	// Snapshots
	ErrSnapshotDecode: "快照无效: %v",
	ErrSnapshotKind:   "快照无效: 未知的值类型 %d",
	ErrSnapshotCycle:  "无法保存 %s: 列表包含自身",
}
