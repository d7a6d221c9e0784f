package interpreter

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind 运行时值的类型标签
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindList
)

// typeNames 错误消息里使用的类型名
var typeNames = map[Kind]string{
	KindNone:   "NoneType",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "str",
	KindBool:   "bool",
	KindList:   "list",
}

func (k Kind) String() string { return typeNames[k] }

// List 可变列表，多个变量可以引用同一个 List
type List struct {
	Elements []Value
}

// Value 运行时值
// 零值是 None。List 按引用共享，其余按值复制。
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	l    *List
}

// None 空值
var None = Value{}

// NewInt 创建整数
func NewInt(n int64) Value { return Value{kind: KindInt, i: n} }

// NewFloat 创建浮点数
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewString 创建字符串
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewBool 创建布尔值
func NewBool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.i = 1
	}
	return v
}

// NewList 创建新列表，元素切片被复制
func NewList(elems ...Value) Value {
	return Value{kind: KindList, l: &List{Elements: append([]Value{}, elems...)}}
}

// newListOwned 创建新列表，直接使用 elems
func newListOwned(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindList, l: &List{Elements: elems}}
}

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsNone() bool     { return v.kind == KindNone }
func (v Value) AsInt() int64     { return v.i }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsString() string { return v.s }
func (v Value) AsBool() bool     { return v.kind == KindBool && v.i != 0 }
func (v Value) AsList() *List    { return v.l }
func (v Value) TypeName() string { return v.kind.String() }
func (v Value) isNumber() bool   { return v.kind == KindInt || v.kind == KindFloat || v.kind == KindBool }
func (v Value) isIntegral() bool { return v.kind == KindInt || v.kind == KindBool }
func (v Value) isSequence() bool { return v.kind == KindString || v.kind == KindList }

// toFloat 数值转换为 float64，bool 视为 0/1
func (v Value) toFloat() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

// Truthy 真值判断：None、false、0、0.0、""、[] 为假
func (v Value) Truthy() bool {
	switch v.kind {
	case KindInt, KindBool:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindList:
		return len(v.l.Elements) > 0
	}
	return false
}

// String 显示形式，print 和 str() 使用
func (v Value) String() string {
	if v.kind == KindString {
		return v.s
	}
	return v.Repr()
}

// Repr 表示形式，字符串带单引号，列表元素使用 Repr
func (v Value) Repr() string {
	if v.kind == KindList {
		var sb strings.Builder
		writeListRepr(&sb, v.l, map[*List]bool{})
		return sb.String()
	}
	return v.scalarRepr()
}

func (v Value) scalarRepr() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return quoteString(v.s)
	case KindBool:
		if v.i != 0 {
			return "True"
		}
		return "False"
	}
	return "None"
}

// writeListRepr 写出列表，引用自身的列表写成 [...]
func writeListRepr(sb *strings.Builder, l *List, seen map[*List]bool) {
	if seen[l] {
		sb.WriteString("[...]")
		return
	}
	seen[l] = true
	defer delete(seen, l)

	sb.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e.kind == KindList {
			writeListRepr(sb, e.l, seen)
		} else {
			sb.WriteString(e.scalarRepr())
		}
	}
	sb.WriteByte(']')
}

// Interface 转换为 Go 原生值：nil、int64、float64、string、bool、[]any
// 引用自身的列表在循环处转换为 nil。
func (v Value) Interface() any {
	return v.toInterface(map[*List]bool{})
}

func (v Value) toInterface(seen map[*List]bool) any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.i != 0
	case KindList:
		if seen[v.l] {
			return nil
		}
		seen[v.l] = true
		defer delete(seen, v.l)

		out := make([]any, len(v.l.Elements))
		for i, e := range v.l.Elements {
			out[i] = e.toInterface(seen)
		}
		return out
	}
	return nil
}

// formatFloat 浮点数格式：整数值保留 .0，过大或过小时使用指数形式
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

// quoteString 单引号字符串，内容含单引号而不含双引号时改用双引号
func quoteString(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteByte(quote)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// runeLen 字符串的字符数
func runeLen(s string) int { return utf8.RuneCountInString(s) }

// Equal 结构相等：数值跨 int/float/bool 比较，其他类型不同即不等
func Equal(a, b Value) bool {
	if a.isNumber() && b.isNumber() {
		if a.isIntegral() && b.isIntegral() {
			return a.i == b.i
		}
		return a.toFloat() == b.toFloat()
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNone:
		return true
	case KindString:
		return a.s == b.s
	case KindList:
		if a.l == b.l {
			return true
		}
		if len(a.l.Elements) != len(b.l.Elements) {
			return false
		}
		for i := range a.l.Elements {
			if !Equal(a.l.Elements[i], b.l.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// compare 比较大小，返回 -1/0/1
// 支持数值、字符串、列表（按字典序）；其他组合返回 ok=false。
func compare(a, b Value) (int, bool) {
	switch {
	case a.isNumber() && b.isNumber():
		if a.isIntegral() && b.isIntegral() {
			return cmpOrdered(a.i, b.i), true
		}
		return cmpOrdered(a.toFloat(), b.toFloat()), true
	case a.kind == KindString && b.kind == KindString:
		return strings.Compare(a.s, b.s), true
	case a.kind == KindList && b.kind == KindList:
		ae, be := a.l.Elements, b.l.Elements
		for i := 0; i < len(ae) && i < len(be); i++ {
			if Equal(ae[i], be[i]) {
				continue
			}
			return compare(ae[i], be[i])
		}
		return cmpOrdered(len(ae), len(be)), true
	}
	return 0, false
}

func cmpOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
