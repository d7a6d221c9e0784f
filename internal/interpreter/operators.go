package interpreter

import (
	"strings"

	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/parser"
)

func (in *Interpreter) evalBinary(expr *parser.BinaryExpr) (Value, error) {
	left, err := in.Evaluate(expr.Left)
	if err != nil {
		return None, err
	}
	right, err := in.Evaluate(expr.Right)
	if err != nil {
		return None, err
	}
	return binaryOp(expr.Operator, left, right)
}

// binaryOp 计算二元运算
func binaryOp(op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		return add(left, right)
	case "-":
		if left.isNumber() && right.isNumber() {
			return arith(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
		}
	case "*":
		return multiply(left, right)
	case "/":
		if right.isNumber() && right.toFloat() == 0 {
			return None, newError(i18n.ErrDivisionByZero)
		}
		if left.isNumber() && right.isNumber() {
			return NewFloat(left.toFloat() / right.toFloat()), nil
		}
	case "==":
		return NewBool(Equal(left, right)), nil
	case "!=":
		return NewBool(!Equal(left, right)), nil
	case "<", ">", "<=", ">=":
		return order(op, left, right)
	}
	return None, unsupported(op, left, right)
}

func unsupported(op string, left, right Value) *RuntimeError {
	return newError(i18n.ErrUnsupportedOperand, op, left.TypeName(), right.TypeName())
}

// arith 数值运算：两边都是整数（或 bool）时得到整数，否则得到浮点数
func arith(left, right Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) Value {
	if left.isIntegral() && right.isIntegral() {
		return NewInt(intOp(left.i, right.i))
	}
	return NewFloat(floatOp(left.toFloat(), right.toFloat()))
}

func add(left, right Value) (Value, error) {
	switch {
	case left.isNumber() && right.isNumber():
		return arith(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	case left.kind == KindString && right.kind == KindString:
		return NewString(left.s + right.s), nil
	case left.kind == KindList && right.kind == KindList:
		elems := make([]Value, 0, len(left.l.Elements)+len(right.l.Elements))
		elems = append(elems, left.l.Elements...)
		elems = append(elems, right.l.Elements...)
		return newListOwned(elems), nil
	}
	return None, unsupported("+", left, right)
}

// maxSequenceLen 重复运算结果的长度上限（字节数或元素数）
const maxSequenceLen = 1 << 26

func multiply(left, right Value) (Value, error) {
	if left.isNumber() && right.isNumber() {
		return arith(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
	}

	// 序列重复：str * int、int * str、list * int、int * list
	seq, count := left, right
	if right.isSequence() {
		seq, count = right, left
	}
	if !seq.isSequence() || !count.isIntegral() {
		return None, unsupported("*", left, right)
	}

	n := max(count.i, 0)
	size := int64(len(seq.s))
	if seq.kind == KindList {
		size = int64(len(seq.l.Elements))
	}
	if size == 0 {
		n = 0
	} else if n > maxSequenceLen/size {
		return None, newError(i18n.ErrRepeatTooLarge, seq.TypeName())
	}
	if seq.kind == KindString {
		return NewString(strings.Repeat(seq.s, int(n))), nil
	}
	elems := make([]Value, 0, size*n)
	for i := int64(0); i < n; i++ {
		elems = append(elems, seq.l.Elements...)
	}
	return newListOwned(elems), nil
}

func order(op string, left, right Value) (Value, error) {
	c, ok := compare(left, right)
	if !ok {
		return None, newError(i18n.ErrUnorderable, op, left.TypeName(), right.TypeName())
	}

	switch op {
	case "<":
		return NewBool(c < 0), nil
	case ">":
		return NewBool(c > 0), nil
	case "<=":
		return NewBool(c <= 0), nil
	}
	return NewBool(c >= 0), nil
}

// indexValue 下标访问，负数下标从末尾计数
func indexValue(x, idx Value) (Value, error) {
	if !x.isSequence() {
		return None, newError(i18n.ErrNotSubscriptable, x.TypeName())
	}
	if !idx.isNumber() {
		return None, newError(i18n.ErrIndexNotNumber, idx.TypeName())
	}

	i := idx.i
	if idx.kind == KindFloat {
		i = int64(idx.f)
	}

	if x.kind == KindList {
		pos, ok := normalizeIndex(i, len(x.l.Elements))
		if !ok {
			return None, newError(i18n.ErrIndexOutOfRange)
		}
		return x.l.Elements[pos], nil
	}

	runes := []rune(x.s)
	pos, ok := normalizeIndex(i, len(runes))
	if !ok {
		return None, newError(i18n.ErrIndexOutOfRange)
	}
	return NewString(string(runes[pos])), nil
}

// normalizeIndex 把可能为负的下标转换为 [0, n) 内的位置
func normalizeIndex(i int64, n int) (int, bool) {
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		return 0, false
	}
	return int(i), true
}
