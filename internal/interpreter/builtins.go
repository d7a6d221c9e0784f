package interpreter

import (
	"math"
	"sort"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// builtinFunc 内置函数，错误由调用方补上函数名
type builtinFunc func(in *Interpreter, args []Value) (Value, error)

// builtins 内置函数表
var builtins = map[string]builtinFunc{
	// 数学
	"sqrt":  builtinSqrt,
	"pow":   builtinPow,
	"abs":   builtinAbs,
	"min":   builtinMin,
	"max":   builtinMax,
	"floor": builtinFloor,
	"ceil":  builtinCeil,
	"round": builtinRound,
	"sin":   mathFunc(math.Sin),
	"cos":   mathFunc(math.Cos),
	"tan":   mathFunc(math.Tan),

	// 字符串
	"len":        builtinLen,
	"upper":      builtinUpper,
	"lower":      builtinLower,
	"strip":      builtinStrip,
	"split":      builtinSplit,
	"join":       builtinJoin,
	"replace":    builtinReplace,
	"startswith": builtinStartsWith,
	"endswith":   builtinEndsWith,

	// 列表
	"append":  builtinAppend,
	"pop":     builtinPop,
	"insert":  builtinInsert,
	"remove":  builtinRemove,
	"reverse": builtinReverse,
	"sort":    builtinSort,

	// 随机数
	"random":  builtinRandom,
	"randint": builtinRandint,
	"choice":  builtinChoice,
	"shuffle": builtinShuffle,

	// 类型转换与输入
	"int":   builtinInt,
	"float": builtinFloat,
	"str":   builtinStr,
	"input": builtinInput,
}

// Builtins 返回所有内置函数名，按字母排序
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkArgs 检查参数个数
func checkArgs(args []Value, n int) error {
	if len(args) != n {
		return newError(i18n.ErrArgCount, n, len(args))
	}
	return nil
}

// checkArgsRange 检查参数个数在 [lo, hi] 之间
func checkArgsRange(args []Value, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return newError(i18n.ErrArgCountRange, lo, hi, len(args))
	}
	return nil
}

// checkArgsMin 检查参数个数至少为 n
func checkArgsMin(args []Value, n int) error {
	if len(args) < n {
		return newError(i18n.ErrArgCountMin, n, len(args))
	}
	return nil
}

// argList 第一个参数必须是列表
func argList(v Value) (*List, error) {
	if v.kind != KindList {
		return nil, newError(i18n.ErrNotList, v.TypeName())
	}
	return v.l, nil
}

// argNumber 参数必须是数值
func argNumber(v Value) (float64, error) {
	if !v.isNumber() {
		return 0, newError(i18n.ErrNotNumber, v.TypeName())
	}
	return v.toFloat(), nil
}

// argInt 参数必须是整数，值为整数的浮点数也可以
func argInt(v Value) (int64, error) {
	switch {
	case v.isIntegral():
		return v.i, nil
	case v.kind == KindFloat && v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0):
		return int64(v.f), nil
	}
	return 0, newError(i18n.ErrNotInteger, v.TypeName())
}

// elements 列表元素或字符串的字符
func elements(v Value) ([]Value, error) {
	switch v.kind {
	case KindList:
		return v.l.Elements, nil
	case KindString:
		chars := make([]Value, 0, len(v.s))
		for _, r := range v.s {
			chars = append(chars, NewString(string(r)))
		}
		return chars, nil
	}
	return nil, newError(i18n.ErrNotSequence, v.TypeName())
}
