package parser

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/cubit/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// NumberLiteral 数字字面量，Value 为 int64 或 float64
type NumberLiteral struct {
	Token lexer.Token
	Value any
}

func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) String() string {
	switch v := n.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return n.Token.Literal
}

// StringLiteral 字符串字面量
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) String() string       { return strconv.Quote(s.Value) }

// Identifier 变量引用
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) String() string       { return i.Value }

// BinaryExpr 二元表达式
type BinaryExpr struct {
	Token    lexer.Token // 运算符 token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// ListLiteral 列表字面量 [a, b, c]
type ListLiteral struct {
	Token    lexer.Token // [ token
	Elements []Expression
}

func (l *ListLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) String() string {
	return "[" + joinNodes(l.Elements) + "]"
}

// CallExpr 内置函数调用
type CallExpr struct {
	Token     lexer.Token // 函数名 token
	Function  string
	Arguments []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) String() string {
	return c.Function + "(" + joinNodes(c.Arguments) + ")"
}

// IndexExpr 下标访问 x[i]
type IndexExpr struct {
	Token lexer.Token // [ token
	X     Expression
	Index Expression
}

func (i *IndexExpr) TokenLiteral() string { return i.Token.Literal }
func (i *IndexExpr) expressionNode()      {}
func (i *IndexExpr) String() string       { return i.X.String() + "[" + i.Index.String() + "]" }

// AssignStmt 赋值语句，let 可省略
type AssignStmt struct {
	Token lexer.Token // let 或变量名 token
	Name  string
	Value Expression
}

func (a *AssignStmt) TokenLiteral() string { return a.Token.Literal }
func (a *AssignStmt) statementNode()       {}
func (a *AssignStmt) String() string       { return a.Name + " = " + a.Value.String() }

// PrintStmt print 语句
type PrintStmt struct {
	Token lexer.Token
	Value Expression
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) statementNode()       {}
func (p *PrintStmt) String() string       { return "print " + p.Value.String() }

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStmt) statementNode()       {}
func (e *ExpressionStmt) String() string       { return e.Expression.String() }

// BlockStmt 代码块，程序的根节点也是 BlockStmt
type BlockStmt struct {
	Token      lexer.Token // { token，根节点为第一个 token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) statementNode()       {}
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// IfStmt if 语句
type IfStmt struct {
	Token       lexer.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement // 可选
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) statementNode()       {}
func (i *IfStmt) String() string {
	s := "if " + i.Condition.String() + " " + i.Consequence.String()
	if i.Alternative != nil {
		s += " else " + i.Alternative.String()
	}
	return s
}

// WhileStmt while 循环
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) statementNode()       {}
func (w *WhileStmt) String() string {
	return "while " + w.Condition.String() + " " + w.Body.String()
}

func joinNodes(nodes []Expression) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
