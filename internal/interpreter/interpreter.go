// Package interpreter evaluates cubit programs.
//
// An Interpreter owns its variable table, output sink and random source.
// Instances share no state, so separate goroutines may each run their own.
// A single Interpreter is not safe for concurrent use.
package interpreter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/parser"
)

// Interpreter 解释器
type Interpreter struct {
	vars   map[string]Value
	out    io.Writer
	in     *bufio.Reader
	rand   *rand.Rand
	ctx    context.Context
	output bool
}

// Option 解释器选项
type Option func(*Interpreter)

// WithOutput 设置 print 的输出目标，默认 os.Stdout
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithInput 设置 input() 的读取来源，默认没有输入
func WithInput(r io.Reader) Option {
	return func(in *Interpreter) { in.in = bufio.NewReader(r) }
}

// WithRand 设置随机数来源
func WithRand(r *rand.Rand) Option {
	return func(in *Interpreter) { in.rand = r }
}

// WithSeed 使用固定种子的随机数来源
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New 创建解释器
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		vars: make(map[string]Value),
		out:  os.Stdout,
		ctx:  context.Background(),
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.rand == nil {
		in.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return in
}

// Run 运行源代码，返回最后一条语句的值
func (in *Interpreter) Run(source string) (Value, error) {
	return in.RunContext(context.Background(), source)
}

// RunContext 运行源代码，ctx 取消后 while 循环在下一次迭代前停止
func (in *Interpreter) RunContext(ctx context.Context, source string) (Value, error) {
	in.output = false

	program, err := parser.ParseSource(source)
	if err != nil {
		return None, err
	}

	in.ctx = ctx
	defer func() { in.ctx = context.Background() }()

	return in.Evaluate(program)
}

// OutputProduced 上一次 Run 期间是否执行过 print
func (in *Interpreter) OutputProduced() bool {
	return in.output
}

// Vars 返回已定义的变量名，按字母排序
func (in *Interpreter) Vars() []string {
	names := make([]string, 0, len(in.vars))
	for name := range in.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get 读取变量
func (in *Interpreter) Get(name string) (Value, bool) {
	v, ok := in.vars[name]
	return v, ok
}

// Set 设置变量
func (in *Interpreter) Set(name string, v Value) {
	in.vars[name] = v
}

// Evaluate 对 AST 节点求值
func (in *Interpreter) Evaluate(node parser.Node) (Value, error) {
	switch n := node.(type) {
	case nil:
		return None, nil

	// 语句
	case *parser.BlockStmt:
		return in.evalBlock(n)
	case *parser.AssignStmt:
		v, err := in.Evaluate(n.Value)
		if err != nil {
			return None, err
		}
		in.vars[n.Name] = v
		return v, nil
	case *parser.PrintStmt:
		return in.evalPrint(n)
	case *parser.ExpressionStmt:
		return in.Evaluate(n.Expression)
	case *parser.IfStmt:
		return in.evalIf(n)
	case *parser.WhileStmt:
		return in.evalWhile(n)

	// 表达式
	case *parser.NumberLiteral:
		switch v := n.Value.(type) {
		case int64:
			return NewInt(v), nil
		case float64:
			return NewFloat(v), nil
		}
		return None, nil
	case *parser.StringLiteral:
		return NewString(n.Value), nil
	case *parser.Identifier:
		v, ok := in.vars[n.Value]
		if !ok {
			return None, newError(i18n.ErrUndefinedVariable, n.Value)
		}
		return v, nil
	case *parser.BinaryExpr:
		return in.evalBinary(n)
	case *parser.ListLiteral:
		elems, err := in.evalExpressions(n.Elements)
		if err != nil {
			return None, err
		}
		return newListOwned(elems), nil
	case *parser.IndexExpr:
		x, err := in.Evaluate(n.X)
		if err != nil {
			return None, err
		}
		idx, err := in.Evaluate(n.Index)
		if err != nil {
			return None, err
		}
		return indexValue(x, idx)
	case *parser.CallExpr:
		return in.evalCall(n)
	}

	panic(fmt.Sprintf("interpreter: unknown node type %T", node))
}

func (in *Interpreter) evalBlock(block *parser.BlockStmt) (Value, error) {
	result := None
	for _, stmt := range block.Statements {
		v, err := in.Evaluate(stmt)
		if err != nil {
			return None, err
		}
		result = v
	}
	return result, nil
}

func (in *Interpreter) evalPrint(stmt *parser.PrintStmt) (Value, error) {
	v, err := in.Evaluate(stmt.Value)
	if err != nil {
		return None, err
	}
	if _, err := fmt.Fprintln(in.out, v.String()); err != nil {
		return None, err
	}
	in.output = true
	return v, nil
}

func (in *Interpreter) evalIf(stmt *parser.IfStmt) (Value, error) {
	cond, err := in.Evaluate(stmt.Condition)
	if err != nil {
		return None, err
	}
	if cond.Truthy() {
		return in.Evaluate(stmt.Consequence)
	}
	if stmt.Alternative != nil {
		return in.Evaluate(stmt.Alternative)
	}
	return None, nil
}

func (in *Interpreter) evalWhile(stmt *parser.WhileStmt) (Value, error) {
	result := None
	for {
		if err := in.ctx.Err(); err != nil {
			return None, &RuntimeError{Key: i18n.ErrCancelled, Args: []any{err}, Err: err}
		}

		cond, err := in.Evaluate(stmt.Condition)
		if err != nil {
			return None, err
		}
		if !cond.Truthy() {
			return result, nil
		}

		if result, err = in.Evaluate(stmt.Body); err != nil {
			return None, err
		}
	}
}

func (in *Interpreter) evalExpressions(exprs []parser.Expression) ([]Value, error) {
	values := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := in.Evaluate(e)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (in *Interpreter) evalCall(call *parser.CallExpr) (Value, error) {
	fn, ok := builtins[call.Function]
	if !ok {
		return None, newError(i18n.ErrUndefinedFunction, call.Function)
	}

	args, err := in.evalExpressions(call.Arguments)
	if err != nil {
		return None, err
	}

	v, err := fn(in, args)
	if err != nil {
		re, ok := err.(*RuntimeError)
		if !ok {
			re = &RuntimeError{Key: i18n.ErrIO, Args: []any{err}, Err: err}
		}
		if re.Function == "" {
			re.Function = call.Function
		}
		return None, re
	}
	return v, nil
}
