package interpreter

import (
	"slices"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// 列表函数原地修改第一个参数，除 pop 外都返回 None

func builtinAppend(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 2); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}
	list.Elements = append(list.Elements, args[1])
	return None, nil
}

// builtinPop pop(list) 移除最后一个元素，pop(list, i) 移除第 i 个，返回被移除的元素
func builtinPop(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgsRange(args, 1, 2); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}
	if len(list.Elements) == 0 {
		return None, newError(i18n.ErrPopEmpty)
	}

	i := int64(-1)
	if len(args) == 2 {
		if i, err = argInt(args[1]); err != nil {
			return None, err
		}
	}
	pos, ok := normalizeIndex(i, len(list.Elements))
	if !ok {
		return None, newError(i18n.ErrPopIndex)
	}

	v := list.Elements[pos]
	list.Elements = slices.Delete(list.Elements, pos, pos+1)
	return v, nil
}

// builtinInsert insert(list, i, x)，越界的下标被截到两端
func builtinInsert(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 3); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}
	i, err := argInt(args[1])
	if err != nil {
		return None, err
	}

	n := int64(len(list.Elements))
	if i < 0 {
		i = max(i+n, 0)
	}
	i = min(i, n)
	list.Elements = slices.Insert(list.Elements, int(i), args[2])
	return None, nil
}

// builtinRemove 移除第一个等于 x 的元素
func builtinRemove(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 2); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}

	for i, e := range list.Elements {
		if Equal(e, args[1]) {
			list.Elements = slices.Delete(list.Elements, i, i+1)
			return None, nil
		}
	}
	return None, newError(i18n.ErrValueNotInList)
}

func builtinReverse(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}
	slices.Reverse(list.Elements)
	return None, nil
}

// builtinSort 稳定升序排序，元素不可比较时列表保持不变
func builtinSort(in *Interpreter, args []Value) (Value, error) {
	if err := checkArgs(args, 1); err != nil {
		return None, err
	}
	list, err := argList(args[0])
	if err != nil {
		return None, err
	}

	sorted := slices.Clone(list.Elements)
	var sortErr error
	slices.SortStableFunc(sorted, func(a, b Value) int {
		c, ok := compare(a, b)
		if !ok && sortErr == nil {
			sortErr = newError(i18n.ErrUnorderable, "<", a.TypeName(), b.TypeName())
		}
		return c
	})
	if sortErr != nil {
		return None, sortErr
	}

	list.Elements = sorted
	return None, nil
}
