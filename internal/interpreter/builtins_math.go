package interpreter

import (
	"math"

	"github.com/tangzhangming/cubit/internal/i18n"
)

func mathFunc(fn func(float64) float64) builtinFunc {
	return func(in *Interpreter, args []Value) (Value, error) {
		if err := checkArgs(args, 1); err != nil {
			return None, err
		}
		x, err := argNumber(args[0])
		if err != nil {
			return None, err
		}
		return NewFloat(fn(x)), nil
	}
}

func builtinSqrt(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	x, err := argNumber(args[0])
	if err != nil {
		return None, err
	}
	if x < 0 {
		return None, newError(i18n.ErrMathDomain)
	}
	return NewFloat(math.Sqrt(x)), nil
}

// builtinPow 整数的非负整数次幂得到整数，其余得到浮点数
func builtinPow(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 2); err != nil {
		return None, err
	}
	base, err := argNumber(args[0])
	if err != nil {
		return None, err
	}
	exp, err := argNumber(args[1])
	if err != nil {
		return None, err
	}

	if args[0].isIntegral() && args[1].isIntegral() && args[1].i >= 0 {
		result, b := int64(1), args[0].i
		for e := args[1].i; e > 0; e >>= 1 {
			if e&1 == 1 {
				result *= b
			}
			b *= b
		}
		return NewInt(result), nil
	}
	return NewFloat(math.Pow(base, exp)), nil
}

func builtinAbs(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	v := args[0]
	switch {
	case v.isIntegral():
		if v.i < 0 {
			return NewInt(-v.i), nil
		}
		return NewInt(v.i), nil
	case v.kind == KindFloat:
		return NewFloat(math.Abs(v.f)), nil
	}
	return None, newError(i18n.ErrNotNumber, v.TypeName())
}

func builtinMin(in *Interpreter, args []Value) (Value, error) {
	return extreme(args, "<", func(c int) bool { return c < 0 })
}

func builtinMax(in *Interpreter, args []Value) (Value, error) {
	return extreme(args, ">", func(c int) bool { return c > 0 })
}

// extreme min/max 共用：一个参数时取其元素，多个参数时在参数之间比较
func extreme(args []Value, op string, better func(int) bool) (Value, error) {
	if err := checkArgsMin(args, 1); err != nil {
		return None, err
	}

	items := args
	if len(args) == 1 {
		var err error
		if items, err = elements(args[0]); err != nil {
			return None, err
		}
	}
	if len(items) == 0 {
		return None, newError(i18n.ErrEmptySequence)
	}

	best := items[0]
	for _, item := range items[1:] {
		c, ok := compare(item, best)
		if !ok {
			return None, newError(i18n.ErrUnorderable, op, item.TypeName(), best.TypeName())
		}
		if better(c) {
			best = item
		}
	}
	return best, nil
}

// floatToInt 浮点数截断为整数，无穷和 NaN 不能转换
func floatToInt(f float64) (int64, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, newError(i18n.ErrNotConvertible, formatFloat(f), "int")
	}
	return int64(f), nil
}

func roundingFunc(fn func(float64) float64) builtinFunc {
	return func(in *Interpreter, args []Value) (Value, error) {
		if err := checkArgs(args, 1); err != nil {
			return None, err
		}
		if args[0].isIntegral() {
			return NewInt(args[0].i), nil
		}
		x, err := argNumber(args[0])
		if err != nil {
			return None, err
		}
		n, err := floatToInt(fn(x))
		if err != nil {
			return None, err
		}
		return NewInt(n), nil
	}
}

var (
	builtinFloor = roundingFunc(math.Floor)
	builtinCeil  = roundingFunc(math.Ceil)
)

// builtinRound round(x) 四舍六入五取偶得到整数；round(x, n) 保留 n 位小数
func builtinRound(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 1, 2); err != nil {
		return None, err
	}
	if len(args) == 1 {
		return roundingFunc(math.RoundToEven)(in, args)
	}

	x, err := argNumber(args[0])
	if err != nil {
		return None, err
	}
	digits, err := argInt(args[1])
	if err != nil {
		return None, err
	}

	var rounded float64
	scale := math.Pow(10, float64(digits))
	switch {
	case math.IsInf(x, 0) || math.IsNaN(x):
		rounded = x
	case scale == 0:
		// 位数太小，所有有限值都舍入为 0
		rounded = math.Copysign(0, x)
	case math.IsInf(scale, 1) || math.IsInf(x*scale, 0):
		rounded = x
	default:
		rounded = math.RoundToEven(x*scale) / scale
	}
	if args[0].isIntegral() {
		n, err := floatToInt(rounded)
		if err != nil {
			return None, err
		}
		return NewInt(n), nil
	}
	return NewFloat(rounded), nil
}
