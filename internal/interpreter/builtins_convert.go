package interpreter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// builtinInt 转换为整数：浮点数向零截断，字符串按十进制解析
func builtinInt(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}

	v := args[0]
	switch v.kind {
	case KindInt, KindBool:
		return NewInt(v.i), nil
	case KindFloat:
		n, err := floatToInt(v.f)
		if err != nil {
			return None, err
		}
		return NewInt(n), nil
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return None, newError(i18n.ErrBadInt, v.s)
		}
		return NewInt(n), nil
	}
	return None, newError(i18n.ErrNotConvertible, v.TypeName(), "int")
}

func builtinFloat(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}

	v := args[0]
	switch v.kind {
	case KindInt, KindBool, KindFloat:
		return NewFloat(v.toFloat()), nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return None, newError(i18n.ErrBadFloat, v.s)
		}
		if math.IsNaN(f) && !strings.EqualFold(strings.TrimSpace(v.s), "nan") {
			return None, newError(i18n.ErrBadFloat, v.s)
		}
		return NewFloat(f), nil
	}
	return None, newError(i18n.ErrNotConvertible, v.TypeName(), "float")
}

func builtinStr(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	return NewString(args[0].String()), nil
}

// builtinInput 输出可选的提示，读取一行输入，不含行尾换行
func builtinInput(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 0, 1); err != nil {
		return None, err
	}
	if len(args) == 1 {
		if _, err := fmt.Fprint(in.out, args[0].String()); err != nil {
			return None, err
		}
	}
	if in.in == nil {
		return None, newError(i18n.ErrInputEOF)
	}

	line, err := in.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return None, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return None, newError(i18n.ErrInputEOF)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return NewString(line), nil
}
