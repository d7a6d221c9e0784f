package interpreter

import (
	"math"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// builtinRandom 返回 [0, 1) 内的浮点数
func builtinRandom(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 0); err != nil {
		return None, err
	}
	return NewFloat(in.rand.Float64()), nil
}

// builtinRandint 返回 [a, b] 内的整数，包含两端
func builtinRandint(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 2); err != nil {
		return None, err
	}
	a, err := argInt(args[0])
	if err != nil {
		return None, err
	}
	b, err := argInt(args[1])
	if err != nil {
		return None, err
	}
	if a > b {
		return None, newError(i18n.ErrEmptyRange, a, b)
	}

	span := uint64(b) - uint64(a)
	switch {
	case span == math.MaxUint64:
		return NewInt(int64(in.rand.Uint64())), nil
	case span >= math.MaxInt64:
		return NewInt(a + int64(in.rand.Uint64()%(span+1))), nil
	}
	return NewInt(a + in.rand.Int63n(int64(span)+1)), nil
}

// builtinChoice 从列表或字符串中随机取一个元素
func builtinChoice(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	items, err := elements(args[0])
	if err != nil {
		return None, err
	}
	if len(items) == 0 {
		return None, newError(i18n.ErrEmptySequence)
	}
	return items[in.rand.Intn(len(items))], nil
}

// builtinShuffle 原地打乱列表
func builtinShuffle(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}
	in.rand.Shuffle(len(list.Elements), func(i, j int) {
		list.Elements[i], list.Elements[j] = list.Elements[j], list.Elements[i]
	})
	return None, nil
}
