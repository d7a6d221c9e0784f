package parser

import (
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/lexer"
)

// ParseError 语法错误：token 与语法期望不符
// Expected 为空表示当前位置不能开始一个表达式。
type ParseError struct {
	Expected string
	Got      string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return i18n.T(i18n.ErrUnexpectedToken, e.Got, e.Line, e.Column)
	}
	return i18n.T(i18n.ErrExpectedToken, e.Expected, e.Got, e.Line, e.Column)
}

// Parser 语法分析器
// 递归下降，优先级从低到高：比较 < 加减 < 乘除 < 基本表达式。
type Parser struct {
	tokens    []lexer.Token
	pos       int
	curToken  lexer.Token
	peekToken lexer.Token
}

// New 创建一个新的语法分析器，tokens 必须以 TOKEN_EOF 结尾
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TOKEN_EOF {
		tokens = append(tokens, lexer.Token{Type: lexer.TOKEN_EOF, Line: 1, Column: 1})
	}
	p := &Parser{tokens: tokens}
	p.sync()
	return p
}

// sync 根据 pos 刷新 curToken 和 peekToken
func (p *Parser) sync() {
	last := len(p.tokens) - 1
	p.curToken = p.tokens[min(p.pos, last)]
	p.peekToken = p.tokens[min(p.pos+1, last)]
}

// nextToken 前进到下一个 token，停在 EOF 上
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.sync()
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expect 期望当前 token 类型，匹配则消费并返回它
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	tok := p.curToken
	if tok.Type != t {
		return tok, p.expectedError(lexer.TokenTypeName(t))
	}
	p.nextToken()
	return tok, nil
}

func (p *Parser) expectedError(expected string) *ParseError {
	return &ParseError{
		Expected: expected,
		Got:      lexer.TokenTypeName(p.curToken.Type),
		Line:     p.curToken.Line,
		Column:   p.curToken.Column,
	}
}

// skipNewlines 跳过换行
func (p *Parser) skipNewlines() {
	for p.curTokenIs(lexer.TOKEN_NEWLINE) {
		p.nextToken()
	}
}

// skipStatementEnd 跳过语句结尾的分号和换行
func (p *Parser) skipStatementEnd() {
	for p.curTokenIs(lexer.TOKEN_SEMICOLON) || p.curTokenIs(lexer.TOKEN_NEWLINE) {
		p.nextToken()
	}
}

// ParseProgram 解析整个程序，返回根代码块
func (p *Parser) ParseProgram() (*BlockStmt, error) {
	program := &BlockStmt{Token: p.curToken}
	p.skipNewlines()

	for !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}

	return program, nil
}

// parseStatement 解析语句，空语句返回 nil
func (p *Parser) parseStatement() (Statement, error) {
	p.skipNewlines()

	switch p.curToken.Type {
	case lexer.TOKEN_PRINT:
		return p.parsePrintStmt()
	case lexer.TOKEN_LET:
		return p.parseAssignStmt()
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStmt()
	case lexer.TOKEN_IDENT:
		if p.peekTokenIs(lexer.TOKEN_ASSIGN) {
			return p.parseAssignStmt()
		}
		return p.parseExpressionStmt()
	case lexer.TOKEN_LBRACE:
		return p.parseBlockStmt()
	case lexer.TOKEN_SEMICOLON, lexer.TOKEN_NEWLINE:
		p.nextToken()
		return nil, nil
	default:
		return p.parseExpressionStmt()
	}
}

// parseExpressionStmt 解析表达式语句
func (p *Parser) parseExpressionStmt() (Statement, error) {
	token := p.curToken
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipStatementEnd()
	return &ExpressionStmt{Token: token, Expression: expr}, nil
}

// parsePrintStmt 解析 print 语句
func (p *Parser) parsePrintStmt() (Statement, error) {
	token, err := p.expect(lexer.TOKEN_PRINT)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipStatementEnd()
	return &PrintStmt{Token: token, Value: value}, nil
}

// parseAssignStmt 解析赋值语句：let NAME = EXPR 或 NAME = EXPR
func (p *Parser) parseAssignStmt() (Statement, error) {
	token := p.curToken
	if p.curTokenIs(lexer.TOKEN_LET) {
		p.nextToken()
	}

	name, err := p.expect(lexer.TOKEN_IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipStatementEnd()

	return &AssignStmt{Token: token, Name: name.Literal, Value: value}, nil
}

// parseCondition 解析 if/while 的条件，括号可选
func (p *Parser) parseCondition() (Expression, error) {
	hasParen := p.curTokenIs(lexer.TOKEN_LPAREN)
	if hasParen {
		p.nextToken()
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if hasParen {
		if _, err := p.expect(lexer.TOKEN_RPAREN); err != nil {
			return nil, err
		}
	}
	return cond, nil
}

// parseBody 解析 if/while/else 的主体：代码块或者单条语句
func (p *Parser) parseBody() (Statement, error) {
	p.skipNewlines()
	if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		return nil, p.expectedError("statement")
	}
	return p.parseStatement()
}

// parseIfStmt 解析 if 语句，else 与最近的 if 结合
func (p *Parser) parseIfStmt() (Statement, error) {
	token, err := p.expect(lexer.TOKEN_IF)
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Token: token}

	if stmt.Condition, err = p.parseCondition(); err != nil {
		return nil, err
	}
	if stmt.Consequence, err = p.parseBody(); err != nil {
		return nil, err
	}

	p.skipNewlines()
	if p.curTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		if stmt.Alternative, err = p.parseBody(); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// parseWhileStmt 解析 while 循环
func (p *Parser) parseWhileStmt() (Statement, error) {
	token, err := p.expect(lexer.TOKEN_WHILE)
	if err != nil {
		return nil, err
	}
	stmt := &WhileStmt{Token: token}

	if stmt.Condition, err = p.parseCondition(); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseBlockStmt 解析 { ... } 代码块
func (p *Parser) parseBlockStmt() (Statement, error) {
	token, err := p.expect(lexer.TOKEN_LBRACE)
	if err != nil {
		return nil, err
	}
	block := &BlockStmt{Token: token}
	p.skipNewlines()

	for !p.curTokenIs(lexer.TOKEN_RBRACE) && !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}

	if _, err := p.expect(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseExpression 解析表达式，入口是优先级最低的比较运算
func (p *Parser) parseExpression() (Expression, error) {
	return p.parseComparison()
}

// 各优先级层的运算符
var (
	comparisonOps = map[lexer.TokenType]bool{
		lexer.TOKEN_EQ:     true,
		lexer.TOKEN_NOT_EQ: true,
		lexer.TOKEN_LT:     true,
		lexer.TOKEN_GT:     true,
		lexer.TOKEN_LT_EQ:  true,
		lexer.TOKEN_GT_EQ:  true,
	}
	additiveOps = map[lexer.TokenType]bool{
		lexer.TOKEN_PLUS:  true,
		lexer.TOKEN_MINUS: true,
	}
	multiplicativeOps = map[lexer.TokenType]bool{
		lexer.TOKEN_ASTERISK: true,
		lexer.TOKEN_SLASH:    true,
	}
)

// parseBinary 左结合地解析一层二元运算
func (p *Parser) parseBinary(ops map[lexer.TokenType]bool, operand func() (Expression, error)) (Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for ops[p.curToken.Type] {
		opToken := p.curToken
		p.nextToken()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: opToken, Left: left, Operator: opToken.Literal, Right: right}
	}
	return left, nil
}

// parseComparison 解析比较运算，a < b < c 按 (a < b) < c 处理
func (p *Parser) parseComparison() (Expression, error) {
	return p.parseBinary(comparisonOps, p.parseAdditive)
}

// parseAdditive 解析加减
func (p *Parser) parseAdditive() (Expression, error) {
	return p.parseBinary(additiveOps, p.parseMultiplicative)
}

// parseMultiplicative 解析乘除
func (p *Parser) parseMultiplicative() (Expression, error) {
	return p.parseBinary(multiplicativeOps, p.parsePrimary)
}

// parsePrimary 解析基本表达式及其后缀下标
func (p *Parser) parsePrimary() (Expression, error) {
	var left Expression
	token := p.curToken

	switch token.Type {
	case lexer.TOKEN_NUMBER:
		p.nextToken()
		left = &NumberLiteral{Token: token, Value: token.Value}
	case lexer.TOKEN_STRING:
		p.nextToken()
		left = &StringLiteral{Token: token, Value: token.Literal}
	case lexer.TOKEN_IDENT:
		p.nextToken()
		if p.curTokenIs(lexer.TOKEN_LPAREN) {
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			left = &CallExpr{Token: token, Function: token.Literal, Arguments: args}
		} else {
			left = &Identifier{Token: token, Value: token.Literal}
		}
	case lexer.TOKEN_LPAREN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TOKEN_RPAREN); err != nil {
			return nil, err
		}
		left = expr
	case lexer.TOKEN_MINUS:
		// 一元负号：-x 转换为 0 - x，直接递归到 parsePrimary，所以 -2 * 3 是 (0 - 2) * 3
		p.nextToken()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		zero := &NumberLiteral{Token: lexer.Token{Type: lexer.TOKEN_NUMBER, Literal: "0", Value: int64(0), Line: token.Line, Column: token.Column}, Value: int64(0)}
		return &BinaryExpr{Token: token, Left: zero, Operator: "-", Right: operand}, nil
	case lexer.TOKEN_LBRACKET:
		list, err := p.parseListLiteral()
		if err != nil {
			return nil, err
		}
		left = list
	default:
		return nil, p.expectedError("")
	}

	return p.parseIndexSuffix(left)
}

// parseIndexSuffix 解析紧跟的下标访问，可以连续：m[0][1]
func (p *Parser) parseIndexSuffix(left Expression) (Expression, error) {
	for p.curTokenIs(lexer.TOKEN_LBRACKET) {
		token := p.curToken
		p.nextToken()
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TOKEN_RBRACKET); err != nil {
			return nil, err
		}
		left = &IndexExpr{Token: token, X: left, Index: index}
	}
	return left, nil
}

// parseCallArguments 解析调用参数 (a, b, ...)，括号内允许换行
func (p *Parser) parseCallArguments() ([]Expression, error) {
	if _, err := p.expect(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	return p.parseExpressionList(lexer.TOKEN_RPAREN)
}

// parseListLiteral 解析列表字面量 [a, b, ...]
func (p *Parser) parseListLiteral() (Expression, error) {
	token, err := p.expect(lexer.TOKEN_LBRACKET)
	if err != nil {
		return nil, err
	}
	elements, err := p.parseExpressionList(lexer.TOKEN_RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ListLiteral{Token: token, Elements: elements}, nil
}

// parseExpressionList 解析逗号分隔的表达式直到 end，并消费 end
func (p *Parser) parseExpressionList(end lexer.TokenType) ([]Expression, error) {
	exprs := []Expression{}

	p.skipNewlines()
	if p.curTokenIs(end) {
		p.nextToken()
		return exprs, nil
	}

	for {
		p.skipNewlines()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		p.skipNewlines()
		if !p.curTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
	}

	if _, err := p.expect(end); err != nil {
		return nil, err
	}
	return exprs, nil
}

// Parse 解析 token 序列
func Parse(tokens []lexer.Token) (*BlockStmt, error) {
	return New(tokens).ParseProgram()
}

// ParseSource 词法分析并解析源代码
func ParseSource(input string) (*BlockStmt, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
