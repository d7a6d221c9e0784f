package i18n

// Message keys for lexer and parser errors
const (
	ErrUnexpectedChar  = "lexer.unexpected_char"   // args: char, line, column
	ErrExpectedToken   = "parser.expected_token"   // args: expected, got, line, column
	ErrUnexpectedToken = "parser.unexpected_token" // args: got, line, column
)

// Message keys for runtime errors
const (
	ErrUndefinedVariable  = "runtime.undefined_variable"  // args: name
	ErrUndefinedFunction  = "runtime.undefined_function"  // args: name
	ErrDivisionByZero     = "runtime.division_by_zero"
	ErrUnsupportedOperand = "runtime.unsupported_operand" // args: op, leftType, rightType
	ErrUnorderable        = "runtime.unorderable"         // args: op, leftType, rightType
	ErrNotSubscriptable   = "runtime.not_subscriptable"   // args: type
	ErrIndexNotNumber     = "runtime.index_not_number"    // args: type
	ErrIndexOutOfRange    = "runtime.index_out_of_range"
	ErrCancelled          = "runtime.cancelled"        // args: error
	ErrBuiltinFailed      = "runtime.builtin_failed"   // args: function, message
	ErrRepeatTooLarge     = "runtime.repeat_too_large" // args: type
	ErrIO                 = "runtime.io"               // args: error

	// Built-in argument errors
	ErrArgCount       = "builtin.arg_count"       // args: want, got
	ErrArgCountRange  = "builtin.arg_count_range" // args: min, max, got
	ErrArgCountMin    = "builtin.arg_count_min"   // args: min, got
	ErrNotList        = "builtin.not_list"        // args: type
	ErrNotNumber      = "builtin.not_number"      // args: type
	ErrNotInteger     = "builtin.not_integer"     // args: type
	ErrNotSequence    = "builtin.not_sequence"    // args: type
	ErrMathDomain     = "builtin.math_domain"
	ErrEmptySequence  = "builtin.empty_sequence"
	ErrValueNotInList = "builtin.value_not_in_list"
	ErrPopEmpty       = "builtin.pop_empty"
	ErrPopIndex       = "builtin.pop_index"
	ErrBadInt         = "builtin.bad_int"   // args: text
	ErrBadFloat       = "builtin.bad_float" // args: text
	ErrNotConvertible = "builtin.not_convertible" // args: from, to
	ErrEmptyRange     = "builtin.empty_range"     // args: low, high
	ErrEmptySeparator = "builtin.empty_separator"
	ErrInputEOF       = "builtin.input_eof"
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdRepl        = "cli.cmd_repl"
	MsgCmdServe       = "cli.cmd_serve"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunArgInput    = "cli.run_arg_input"
	MsgRunOptVerbose  = "cli.run_opt_verbose"

	// Serve command
	MsgServeUsage       = "cli.serve_usage"
	MsgServeDescription = "cli.serve_description"
	MsgServeOptAddr     = "cli.serve_opt_addr"

	// Common errors
	ErrInputRequired    = "cli.input_required"
	ErrCannotLoadConfig = "cli.cannot_load_config" // args: error
	ErrCannotReadFile   = "cli.cannot_read_file"   // args: path, error
	ErrCannotWriteFile  = "cli.cannot_write_file"  // args: path, error
	ErrRunError         = "cli.run_error"          // args: error

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
	MsgRunning     = "cli.running" // args: path
	MsgFinished    = "cli.finished" // args: duration
)

// Message keys for the REPL
const (
	MsgReplBanner    = "repl.banner" // args: version
	MsgReplHint      = "repl.hint"
	MsgReplHelp      = "repl.help"
	MsgReplGoodbye   = "repl.goodbye"
	MsgReplNoVars    = "repl.no_vars"
	MsgReplSaved     = "repl.saved"  // args: count, path
	MsgReplLoaded    = "repl.loaded" // args: count, path
	MsgReplUsageSave = "repl.usage_save"
	MsgReplUsageLoad = "repl.usage_load"
)

// Message keys for the HTTP server, history and snapshots
const (
	MsgServerWelcome    = "server.welcome"
	MsgServerListening  = "server.listening" // args: addr
	MsgServerStopped    = "server.stopped"
	ErrBadRequest       = "server.bad_request" // args: error
	ErrMethodNotAllowed = "server.method_not_allowed"
	ErrHistoryDisabled  = "server.history_disabled"
	ErrHistoryFailed    = "server.history_failed" // args: error
	ErrOutputLimit      = "server.output_limit"   // args: bytes
	ErrBadLimit         = "server.bad_limit"      // args: value

	ErrSnapshotDecode = "snapshot.decode" // args: error
	ErrSnapshotKind   = "snapshot.kind"   // args: kind
	ErrSnapshotCycle  = "snapshot.cycle"  // args: name
)
