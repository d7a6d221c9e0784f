package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer and parser errors
	ErrUnexpectedChar:  "Unexpected character '%s' at line %d, column %d",
	ErrExpectedToken:   "Expected %s, got %s at line %d, column %d",
	ErrUnexpectedToken: "Unexpected token %s at line %d, column %d",

	// Runtime errors
	ErrUndefinedVariable:  "Undefined variable: %s",
	ErrUndefinedFunction:  "Undefined function: %s",
	ErrDivisionByZero:     "Division by zero",
	ErrUnsupportedOperand: "unsupported operand type(s) for %s: '%s' and '%s'",
	ErrUnorderable:        "'%s' not supported between instances of '%s' and '%s'",
	ErrNotSubscriptable:   "'%s' object is not subscriptable",
	ErrIndexNotNumber:     "indices must be numbers, not %s",
	ErrIndexOutOfRange:    "Index out of range",
	ErrCancelled:          "execution cancelled: %v",
	ErrBuiltinFailed:      "%s: %s",
	ErrRepeatTooLarge:     "repeated %s is too large",
	ErrIO:                 "I/O error: %v",

	// Built-in argument errors
	ErrArgCount:       "expected %d argument(s), got %d",
	ErrArgCountRange:  "expected %d to %d arguments, got %d",
	ErrArgCountMin:    "expected at least %d argument(s), got %d",
	ErrNotList:        "first argument must be a list, got %s",
	ErrNotNumber:      "argument must be a number, got %s",
	ErrNotInteger:     "argument must be an integer, got %s",
	ErrNotSequence:    "argument must be a list or string, got %s",
	ErrMathDomain:     "math domain error",
	ErrEmptySequence:  "arg is an empty sequence",
	ErrValueNotInList: "value not in list",
	ErrPopEmpty:       "pop from empty list",
	ErrPopIndex:       "pop index out of range",
	ErrBadInt:         "invalid literal for int(): '%s'",
	ErrBadFloat:       "could not convert string to float: '%s'",
	ErrNotConvertible: "cannot convert %s to %s",
	ErrEmptyRange:     "empty range for randint(%d, %d)",
	ErrEmptySeparator: "empty separator",
	ErrInputEOF:       "EOF when reading a line",

	// CLI - Usage and help
	MsgUsage:          "Usage: cubit <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdRun:         "  run      Run a cubit source file",
	MsgCmdRepl:        "  repl     Start the interactive shell",
	MsgCmdServe:       "  serve    Serve the HTTP execution API",
	MsgCmdVersion:     "  version  Print version information",
	MsgCmdHelp:        "  help     Print this help message",
	MsgUseHelp:        "Use \"cubit <command> -h\" for more information about a command.",
	MsgUnknownCommand: "Unknown command: %s",

	// CLI - Run command
	MsgRunUsage:       "Usage: cubit run [options] <file>",
	MsgRunDescription: "Run a cubit source file with a fresh interpreter.",
	MsgRunArgInput:    "  <file>    Source file",
	MsgRunOptVerbose:  "Verbose output",

	// CLI - Serve command
	MsgServeUsage:       "Usage: cubit serve [options]",
	MsgServeDescription: "Serve POST /execute; every request gets its own interpreter.",
	MsgServeOptAddr:     "Listen address (overrides cubit.toml and PORT)",

	// CLI - Common errors
	ErrInputRequired:    "Error: input file is required",
	ErrCannotLoadConfig: "cannot load config: %v",
	ErrCannotReadFile:   "Error: File '%s' not found (%v)",
	ErrCannotWriteFile:  "cannot write file %s: %v",
	ErrRunError:         "Error: %v",

	// CLI - Info messages
	MsgUsingConfig: "Using config: %s",
	MsgNoConfig:    "No cubit.toml found, using defaults",
	MsgRunning:     "Running %s",
	MsgFinished:    "Finished in %s",

	// REPL
	MsgReplBanner: "Cubit Programming Language v%s",
	MsgReplHint:   "Type 'exit' or 'quit' to exit, 'help' for help",
	MsgReplHelp: `
Cubit Programming Language - Help
=================================

Basic Syntax:
  - Variables: let x = 10 or x = 10
  - Arithmetic: +, -, *, /
  - Comparison: ==, !=, <, >, <=, >=
  - Print: print expression
  - Comments: # This is a comment
  - Lists: let xs = [1, 2, 3]; print xs[0]

Control Flow:
  - If statement: if condition { ... } else { ... }
  - While loop: while condition { ... }

Built-in Functions:
  Math:    sqrt, pow, abs, min, max, floor, ceil, round, sin, cos, tan
  String:  len, upper, lower, split, join, strip, replace, startswith, endswith
  List:    append, pop, insert, remove, reverse, sort
  Random:  random, randint, choice, shuffle
  Type:    int, float, str
  Input:   input

REPL Commands:
  help         - Show this help
  vars         - Show all variables
  :save FILE   - Save variables to FILE
  :load FILE   - Load variables from FILE
  exit         - Exit the REPL
  quit         - Exit the REPL
`,
	MsgReplGoodbye:   "Goodbye!",
	MsgReplNoVars:    "No variables defined",
	MsgReplSaved:     "Saved %d variable(s) to %s",
	MsgReplLoaded:    "Loaded %d variable(s) from %s",
	MsgReplUsageSave: "Usage: :save FILE",
	MsgReplUsageLoad: "Usage: :load FILE",

	// Server
	MsgServerWelcome:    "Welcome to Cubit Programming Language API",
	MsgServerListening:  "Listening on %s",
	MsgServerStopped:    "Server stopped",
	ErrBadRequest:       "invalid request body: %v",
	ErrMethodNotAllowed: "method not allowed",
	ErrHistoryDisabled:  "execution history is disabled",
	ErrHistoryFailed:    "cannot read execution history: %v",
	ErrOutputLimit:      "output limit of %d bytes exceeded",
	ErrBadLimit:         "invalid limit %q",

	// Snapshots
	ErrSnapshotDecode: "invalid snapshot: %v",
	ErrSnapshotKind:   "invalid snapshot: unknown value kind %d",
	ErrSnapshotCycle:  "cannot save %s: list contains itself",
}
