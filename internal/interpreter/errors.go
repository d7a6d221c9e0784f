package interpreter

import (
	"github.com/tangzhangming/cubit/internal/i18n"
)

// RuntimeError 求值期间的错误
// Function 不为空时错误来自该内置函数。
type RuntimeError struct {
	Key      string
	Args     []any
	Function string
	Err      error
}

func (e *RuntimeError) Error() string {
	msg := i18n.T(e.Key, e.Args...)
	if e.Function != "" {
		return i18n.T(i18n.ErrBuiltinFailed, e.Function, msg)
	}
	return msg
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// newError 创建运行时错误
func newError(key string, args ...any) *RuntimeError {
	return &RuntimeError{Key: key, Args: args}
}
