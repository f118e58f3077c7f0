package lexer

// Scanner performs lexical analysis on Simia source. It owns its input
// buffer and a byte cursor; it is not safe for concurrent use.
type Scanner struct {
	source  []byte
	pos     int  // index of the current byte
	readPos int  // index of the next byte to read
	ch      byte // current byte, 0 once the buffer is exhausted
}

// NewScanner creates a scanner for the given source and primes the
// cursor so ch holds the first byte.
func NewScanner(source string) *Scanner {
	s := &Scanner{source: []byte(source)}
	s.readChar()
	return s
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = []byte(source)
	s.pos = 0
	s.readPos = 0
	s.ch = 0
	s.readChar()
}

// Next returns the next token, advancing the cursor past it. Once the
// buffer is exhausted it keeps returning EOF on every call.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	var kind Kind
	switch s.ch {
	case '=':
		if s.peek() == '=' {
			s.readChar()
			kind = KindEq
		} else {
			kind = KindAssign
		}
	case '!':
		if s.peek() == '=' {
			s.readChar()
			kind = KindNotEq
		} else {
			kind = KindBang
		}
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindAsterisk
	case '/':
		kind = KindSlash
	case '<':
		kind = KindLT
	case '>':
		kind = KindGT
	case ',':
		kind = KindComma
	case ';':
		kind = KindSemicolon
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '{':
		kind = KindLBrace
	case '}':
		kind = KindRBrace
	case 0:
		// A zero ch means end of buffer, unless the cursor still
		// points inside the source: then it is a literal NUL byte,
		// classified like any other out-of-alphabet byte.
		if s.pos >= len(s.source) {
			return Token{Kind: KindEOF}
		}
		kind = KindIllegal
	default:
		switch {
		case isDigit(s.ch):
			// readNumber leaves the cursor on the first non-digit,
			// so no trailing readChar here.
			return Token{Kind: KindInt, Literal: s.readNumber()}
		case isLetter(s.ch):
			ident := s.readIdentifier()
			if kw := LookupKind(ident); kw != KindIdent {
				return Token{Kind: kw}
			}
			return Token{Kind: KindIdent, Literal: ident}
		default:
			kind = KindIllegal
		}
	}

	tok := Token{Kind: kind}
	if kind == KindIllegal {
		tok.Literal = string(s.source[s.pos : s.pos+1])
	}
	s.readChar()
	return tok
}

// peek returns the byte after the current one without advancing,
// or 0 at end of buffer.
func (s *Scanner) peek() byte {
	if s.readPos >= len(s.source) {
		return 0
	}
	return s.source[s.readPos]
}

func (s *Scanner) readChar() {
	if s.readPos >= len(s.source) {
		s.ch = 0
	} else {
		s.ch = s.source[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

// readIdentifier consumes the maximal run of letters and underscores
// starting at the current byte.
func (s *Scanner) readIdentifier() string {
	start := s.pos
	for isLetter(s.ch) {
		s.readChar()
	}
	return string(s.source[start:s.pos])
}

// readNumber consumes the maximal run of ASCII digits starting at the
// current byte.
func (s *Scanner) readNumber() string {
	start := s.pos
	for isDigit(s.ch) {
		s.readChar()
	}
	return string(s.source[start:s.pos])
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
