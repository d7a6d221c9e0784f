package interpreter

import (
	"strings"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// len 对列表返回元素个数，其余值返回 str() 之后的字符数
func builtinLen(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	if args[0].kind == KindList {
		return NewInt(int64(len(args[0].l.Elements))), nil
	}
	return NewInt(int64(runeLen(args[0].String()))), nil
}

// stringFunc 单参数字符串函数，参数先转换为字符串
func stringFunc(fn func(string) string) builtinFunc {
	return func(in *Interpreter, args []Value) (Value, error) {
		if err := checkArgs(args, 1); err != nil {
			return None, err
		}
		return NewString(fn(args[0].String())), nil
	}
}

var (
	builtinUpper = stringFunc(strings.ToUpper)
	builtinLower = stringFunc(strings.ToLower)
)

// strip(s) 去掉两端空白；strip(s, chars) 去掉两端属于 chars 的字符
func builtinStrip(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 1, 2); err != nil {
		return None, err
	}
	s := args[0].String()
	if len(args) == 2 {
		return NewString(strings.Trim(s, args[1].String())), nil
	}
	return NewString(strings.TrimSpace(s)), nil
}

// split(s) 按空白切分；split(s, sep) 按 sep 切分
func builtinSplit(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 1, 2); err != nil {
		return None, err
	}

	var parts []string
	s := args[0].String()
	if len(args) == 2 {
		sep := args[1].String()
		if sep == "" {
			return None, newError(i18n.ErrEmptySeparator)
		}
		parts = strings.Split(s, sep)
	} else {
		parts = strings.Fields(s)
	}

	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = NewString(p)
	}
	return newListOwned(elems), nil
}

// join(list, sep) 用 sep 连接元素，sep 默认为空；也接受 join(sep, list)
func builtinJoin(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 1, 2); err != nil {
		return None, err
	}

	listArg, sep := args[0], ""
	if len(args) == 2 {
		sep = args[1].String()
		if args[0].kind != KindList && args[1].kind == KindList {
			listArg, sep = args[1], args[0].String()
		}
	}
	list, err := argList(listArg)
	if err != nil {
		return None, err
	}

	parts := make([]string, len(list.Elements))
	for i, e := range list.Elements {
		parts[i] = e.String()
	}
	return NewString(strings.Join(parts, sep)), nil
}

func builtinReplace(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 3); err != nil {
		return None, err
	}
	return NewString(strings.ReplaceAll(args[0].String(), args[1].String(), args[2].String())), nil
}

// predicateFunc 双参数字符串判断函数
func predicateFunc(fn func(s, part string) bool) builtinFunc {
	return func(in *Interpreter, args []Value) (Value, error) {
		if err := checkArgs(args, 2); err != nil {
			return None, err
		}
		return NewBool(fn(args[0].String(), args[1].String())), nil
	}
}

var (
	builtinStartsWith = predicateFunc(strings.HasPrefix)
	builtinEndsWith   = predicateFunc(strings.HasSuffix)
)
