package query

import (
	"strings"
	"unicode"
)

// scanner walks statement text rune by rune.
type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) ch() rune {
	return s.input[s.pos]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// Tokenize converts statement text into an ordered slice of tokens.
//
// Scanning is left to right with one rule per character class: a run of
// letters or underscores is one token, a run of digits is one token, a
// single-quoted span is one token holding the interior, a parenthesized span
// is one token holding the interior, and any other run of symbol characters
// is one token. Whitespace and commas separate tokens without producing one,
// and statement terminators (;) are stripped before scanning.
//
// Example:
//
//	Tokenize("SELECT * FROM clients WHERE name = 'Alen';")
//	// ["SELECT", "*", "FROM", "clients", "WHERE", "name", "=", "Alen"]
func Tokenize(text string) []string {
	s := &scanner{input: []rune(strings.ReplaceAll(text, ";", ""))}

	var tokens []string
	for !s.eof() {
		var tok string
		switch ch := s.ch(); {
		case isWordRune(ch):
			tok = s.readWord()
		case unicode.IsDigit(ch):
			tok = s.readNumber()
		case ch == '\'':
			tok = s.readQuoted()
		case ch == '(':
			tok = s.readGroup()
		case unicode.IsSpace(ch) || ch == ',':
			s.pos++
			continue
		default:
			tok = s.readSymbol()
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// readWord reads a run of letters and underscores. Case is preserved.
func (s *scanner) readWord() string {
	var result strings.Builder
	for !s.eof() && isWordRune(s.ch()) {
		result.WriteRune(s.ch())
		s.pos++
	}
	return result.String()
}

// readNumber reads a run of decimal digits.
func (s *scanner) readNumber() string {
	var result strings.Builder
	for !s.eof() && unicode.IsDigit(s.ch()) {
		result.WriteRune(s.ch())
		s.pos++
	}
	return result.String()
}

// readQuoted reads a single-quoted span and returns the interior without the
// quotes. An unterminated quote consumes to the end of the input.
func (s *scanner) readQuoted() string {
	var result strings.Builder
	s.pos++ // skip opening quote
	for !s.eof() && s.ch() != '\'' {
		result.WriteRune(s.ch())
		s.pos++
	}
	s.pos++ // skip closing quote
	return result.String()
}

// readGroup reads a parenthesized span and returns the interior without the
// outer parentheses. Nested parentheses are kept intact inside the span, so
// a grouped boolean condition survives as a single token and an INSERT
// column or value list arrives as one comma-separated token.
func (s *scanner) readGroup() string {
	var result strings.Builder
	depth := 1
	s.pos++ // skip opening parenthesis
	for !s.eof() {
		switch s.ch() {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
		result.WriteRune(s.ch())
		s.pos++
	}
	s.pos++ // skip closing parenthesis
	return result.String()
}

// readSymbol reads a run of characters not covered by the other rules,
// stopping at the first alphanumeric or whitespace character. Operators
// such as =, > and < come out of this rule.
func (s *scanner) readSymbol() string {
	var result strings.Builder
	for !s.eof() {
		ch := s.ch()
		if isWordRune(ch) || unicode.IsDigit(ch) || unicode.IsSpace(ch) {
			break
		}
		result.WriteRune(ch)
		s.pos++
	}
	return result.String()
}
