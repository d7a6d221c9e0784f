package lexer

import "fmt"

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_EOF TokenType = iota
	TOKEN_NEWLINE

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_NUMBER // 整数或浮点数
	TOKEN_STRING // 字符串

	// 运算符
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }

	// 关键字
	TOKEN_PRINT // print
	TOKEN_LET   // let
	TOKEN_IF    // if
	TOKEN_ELSE  // else
	TOKEN_WHILE // while
)

// Token 表示一个词法单元
//
// Value 只对 TOKEN_NUMBER 有意义：整数为 int64，带小数点的为 float64。
// TOKEN_STRING 的 Literal 是去掉引号、处理过 \" 之后的内容。
type Token struct {
	Type    TokenType
	Literal string
	Value   any
	Line    int
	Column  int
}

func (t Token) String() string {
	if t.Type == TOKEN_NEWLINE || t.Type == TOKEN_EOF {
		return fmt.Sprintf("%s@%d:%d", TokenTypeName(t.Type), t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%q)@%d:%d", TokenTypeName(t.Type), t.Literal, t.Line, t.Column)
}

var keywords = map[string]TokenType{
	"print": TOKEN_PRINT,
	"let":   TOKEN_LET,
	"if":    TOKEN_IF,
	"else":  TOKEN_ELSE,
	"while": TOKEN_WHILE,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:       "EOF",
	TOKEN_NEWLINE:   "NEWLINE",
	TOKEN_IDENT:     "IDENTIFIER",
	TOKEN_NUMBER:    "NUMBER",
	TOKEN_STRING:    "STRING",
	TOKEN_ASSIGN:    "=",
	TOKEN_PLUS:      "+",
	TOKEN_MINUS:     "-",
	TOKEN_ASTERISK:  "*",
	TOKEN_SLASH:     "/",
	TOKEN_EQ:        "==",
	TOKEN_NOT_EQ:    "!=",
	TOKEN_LT:        "<",
	TOKEN_GT:        ">",
	TOKEN_LT_EQ:     "<=",
	TOKEN_GT_EQ:     ">=",
	TOKEN_COMMA:     ",",
	TOKEN_SEMICOLON: ";",
	TOKEN_LPAREN:    "(",
	TOKEN_RPAREN:    ")",
	TOKEN_LBRACKET:  "[",
	TOKEN_RBRACKET:  "]",
	TOKEN_LBRACE:    "{",
	TOKEN_RBRACE:    "}",
	TOKEN_PRINT:     "print",
	TOKEN_LET:       "let",
	TOKEN_IF:        "if",
	TOKEN_ELSE:      "else",
	TOKEN_WHILE:     "while",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t TokenType) String() string { return TokenTypeName(t) }
