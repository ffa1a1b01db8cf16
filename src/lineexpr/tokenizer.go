package lineexpr

import (
	"strings"
)

// Tokenizer splits an expression on spaces, one token per call to Next.
// Only the space character separates tokens; tabs and newlines are part of
// the words they appear in.
type Tokenizer struct {
	input   string
	current Token
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input:   input,
		current: Token{Kind: TokenUnknown},
	}
}

// Next advances to the next token and returns it.
//
// Once the input is exhausted the returned token has kind TokenEndOfInput
// and keeps the Text of the token before it (empty for an empty
// expression). Callers reporting an error at the end of the input rely on
// this to show the last word that was read.
func (t *Tokenizer) Next() Token {
	t.input = strings.TrimLeft(t.input, " ")
	if t.input == "" {
		t.current.Kind = TokenEndOfInput
		return t.current
	}

	word := t.input
	if end := strings.IndexByte(t.input, ' '); end >= 0 {
		word = t.input[:end]
	}
	t.input = t.input[len(word):]

	t.current = classify(word)
	return t.current
}

// Current returns the last token returned by Next without advancing.
func (t *Tokenizer) Current() Token {
	return t.current
}

func classify(word string) Token {
	switch word {
	case "(":
		return Token{Kind: TokenOpenParen, Text: "("}
	case ")":
		return Token{Kind: TokenCloseParen, Text: ")"}
	case `\(`:
		// escaped open paren, searched for literally
		return Token{Kind: TokenIdentifier, Text: "("}
	case "and":
		return Token{Kind: TokenAnd, Text: "and"}
	case "or":
		return Token{Kind: TokenOr, Text: "or"}
	case "not":
		return Token{Kind: TokenNot, Text: "not"}
	default:
		return Token{Kind: TokenIdentifier, Text: word}
	}
}
