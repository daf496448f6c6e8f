package scanners

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/contra/tokens"
)

type Scanner struct {
	source    string
	start     int
	startLine int
	current   int
	line      int
	tokens    []tokens.Token
	errors    Errors
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

func Scan(source string) ([]tokens.Token, Errors) {
	return NewScanner(source).ScanTokens()
}

// ScanTokens returns the whole token sequence, always terminated by a single EOF token,
// and the lexical errors met on the way.
func (s *Scanner) ScanTokens() ([]tokens.Token, Errors) {
	s.start = 0
	s.current = 0
	s.line = 1
	s.tokens = nil
	s.errors = nil

	for !s.isAtEnd() {
		// at the beginning of the next lexeme
		s.start = s.current
		s.startLine = s.line
		s.scanToken()
	}

	s.tokens = append(s.tokens, tokens.Token{
		Kind:   tokens.EOF,
		Line:   s.line,
		Offset: len(s.source),
	})
	return s.tokens, s.errors
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	char := s.advance()

	switch char {
	case '(':
		s.addToken(tokens.LeftParen)
	case ')':
		s.addToken(tokens.RightParen)
	case '{':
		s.addToken(tokens.LeftBrace)
	case '}':
		s.addToken(tokens.RightBrace)
	case ',':
		s.addToken(tokens.Comma)
	case '.':
		s.addToken(tokens.Dot)
	case '-':
		s.addToken(tokens.Minus)
	case '+':
		s.addToken(tokens.Plus)
	case ';':
		s.addToken(tokens.Semicolon)
	case '*':
		s.addToken(tokens.Star)

	case '!':
		s.addToken(s.either('=', tokens.BangEqual, tokens.Bang))
	case '=':
		s.addToken(s.either('=', tokens.EqualEqual, tokens.Equal))
	case '<':
		s.addToken(s.either('=', tokens.LessEqual, tokens.Less))
	case '>':
		s.addToken(s.either('=', tokens.GreaterEqual, tokens.Greater))

	case '/':
		if s.match('/') {
			s.lineComment()
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(tokens.Slash)
		}

	// ignore whitespace
	case ' ', '\r', '\t':

	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			s.error(s.line, fmt.Sprintf("Unexpected character: %c", char))
		}
	}
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return '\000'
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return '\000'
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) either(expected rune, matched tokens.Kind, otherwise tokens.Kind) tokens.Kind {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

func (s *Scanner) lineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	s.error(s.startLine, "Unterminated multi-line comment.")
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\\' {
			// the escaped rune never closes the string
			s.advance()
			if s.isAtEnd() {
				break
			}
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.error(s.startLine, "Unterminated string.")
		return
	}

	s.advance() // closing '"'
	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(tokens.String, tokens.StringLiteral(value))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a trailing dot is left for member access
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	s.addTokenWithLiteral(tokens.Number, tokens.NumberLiteral(s.source[s.start:s.current]))
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	s.addToken(tokens.LookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) addToken(kind tokens.Kind) {
	s.addTokenWithLiteral(kind, tokens.Literal{})
}

func (s *Scanner) addTokenWithLiteral(kind tokens.Kind, literal tokens.Literal) {
	s.tokens = append(s.tokens, tokens.Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Line:    s.startLine,
		Offset:  s.start,
		Literal: literal,
	})
}

func (s *Scanner) error(line int, message string) {
	s.errors = append(s.errors, &Error{
		Line:    line,
		Message: message,
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
