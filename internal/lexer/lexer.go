package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tangzhangming/cubit/internal/i18n"
)

// LexError 词法错误：遇到无法识别的字符
type LexError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return i18n.T(i18n.ErrUnexpectedChar, string(e.Char), e.Line, e.Column)
}

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前字符所在行
	column  int  // 当前字符所在列
	eof     bool // 已读到输入末尾
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
// 行列号描述的是 l.ch 的位置，列号按 rune 计数。
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		if !l.eof {
			l.eof = true
			l.column++
		}
		l.ch = 0
		l.pos = len(l.input)
		return
	}
	l.ch = l.input[l.readPos]
	if !isContinuation(l.ch) {
		l.column++
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.eof
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() (Token, error) {
	for {
		l.skipWhitespace()
		if l.ch == '#' && !l.atEOF() {
			l.skipComment()
			continue
		}
		if l.ch == '!' && l.peekChar() != '=' && !l.atEOF() {
			// 单独的 ! 不产生 token
			l.readChar()
			continue
		}
		break
	}

	line, col := l.line, l.column

	if l.atEOF() {
		return Token{Type: TOKEN_EOF, Line: line, Column: col}, nil
	}

	var tok Token
	switch l.ch {
	case '\n':
		tok = l.newToken(TOKEN_NEWLINE, "\n")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_EQ, Literal: "==", Line: line, Column: col}
		} else {
			tok = l.newToken(TOKEN_ASSIGN, "=")
		}
	case '!':
		l.readChar()
		tok = Token{Type: TOKEN_NOT_EQ, Literal: "!=", Line: line, Column: col}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: line, Column: col}
		} else {
			tok = l.newToken(TOKEN_LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: line, Column: col}
		} else {
			tok = l.newToken(TOKEN_GT, ">")
		}
	case '+':
		tok = l.newToken(TOKEN_PLUS, "+")
	case '-':
		tok = l.newToken(TOKEN_MINUS, "-")
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, "*")
	case '/':
		tok = l.newToken(TOKEN_SLASH, "/")
	case ',':
		tok = l.newToken(TOKEN_COMMA, ",")
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, ";")
	case '(':
		tok = l.newToken(TOKEN_LPAREN, "(")
	case ')':
		tok = l.newToken(TOKEN_RPAREN, ")")
	case '[':
		tok = l.newToken(TOKEN_LBRACKET, "[")
	case ']':
		tok = l.newToken(TOKEN_RBRACKET, "]")
	case '{':
		tok = l.newToken(TOKEN_LBRACE, "{")
	case '}':
		tok = l.newToken(TOKEN_RBRACE, "}")
	case '"':
		tok = Token{Type: TOKEN_STRING, Literal: l.readString(), Line: line, Column: col}
		return tok, nil
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return Token{Type: LookupIdent(ident), Literal: ident, Line: line, Column: col}, nil
		}
		if isDigit(l.ch) {
			return l.readNumber(line, col), nil
		}
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, &LexError{Char: r, Line: line, Column: col}
	}

	l.readChar()
	return tok, nil
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal, Line: l.line, Column: l.column}
}

// skipWhitespace 跳过空白字符（换行符是语句结束符，不跳过）
func (l *Lexer) skipWhitespace() {
	for (l.ch == ' ' || l.ch == '\t' || l.ch == '\r') && !l.atEOF() {
		l.readChar()
	}
}

// skipComment 跳过 # 注释，停在换行符上
func (l *Lexer) skipComment() {
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for (isLetter(l.ch) || isDigit(l.ch)) && !l.atEOF() {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取数字，最多一个小数点
func (l *Lexer) readNumber(line, col int) Token {
	pos := l.pos
	hasDot := false
	for !l.atEOF() && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if hasDot {
				break
			}
			hasDot = true
		}
		l.readChar()
	}
	lit := l.input[pos:l.pos]
	tok := Token{Type: TOKEN_NUMBER, Literal: lit, Line: line, Column: col}
	if !hasDot {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			tok.Value = n
			return tok
		}
		// 超出 int64 范围时退化为浮点数
	}
	f, _ := strconv.ParseFloat(lit, 64)
	tok.Value = f
	return tok
}

// readString 读取双引号字符串，只识别 \" 转义
func (l *Lexer) readString() string {
	var sb strings.Builder
	l.readChar() // 跳过开头的 "
	for !l.atEOF() && l.ch != '"' {
		if l.ch == '\\' && l.peekChar() == '"' {
			l.readChar()
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // 跳过结尾的 "
	return sb.String()
}

// isLetter 判断是否为字母或下划线
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isDigit 判断是否为数字
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isContinuation(ch byte) bool {
	return ch&0xC0 == 0x80
}

// Tokenize 将输入字符串转换为 token 列表，最后一个总是 TOKEN_EOF
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens, nil
}
