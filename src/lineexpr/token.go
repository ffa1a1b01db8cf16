package lineexpr

import "fmt"

type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenIdentifier
	TokenAnd
	TokenOr
	TokenNot
	TokenOpenParen
	TokenCloseParen
	TokenEndOfInput
)

// Token is a single word of an expression. For keywords Text is the keyword
// itself; for the escaped open paren `\(` it is the literal "(".
type Token struct {
	Kind TokenKind
	Text string
}

func (k TokenKind) String() string {
	switch k {
	case TokenUnknown:
		return "UNKNOWN"
	case TokenIdentifier:
		return "ID"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenOpenParen:
		return "OPEN_PAREN"
	case TokenCloseParen:
		return "CLOSE_PAREN"
	case TokenEndOfInput:
		return "END_OF"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
