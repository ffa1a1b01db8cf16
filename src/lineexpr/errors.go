package lineexpr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoCloseParen = errors.New("missing a closing parenthesis")
	// ErrUnknown means the parser broke one of its own invariants. It is a
	// bug, not a problem with the expression.
	ErrUnknown = errors.New("unknown parse error")

	ErrEvaluation = errors.New("evaluation failed")
	// ErrEvalUnknown is reserved; Eval never returns it.
	ErrEvalUnknown = errors.New("unknown evaluation error")

	ErrNotParsed = errors.New("expression has not been parsed")
)

type ParseErrorKind int

const (
	InvalidToken ParseErrorKind = iota + 1
	NoCloseParen
	Unknown
)

// ParseError is returned by Parse. Token is the token the parser was looking
// at when it gave up.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token

	cause error
}

func newParseError(kind ParseErrorKind, token Token) error {
	return &ParseError{Kind: kind, Token: token}
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("%s: %q", ErrInvalidToken, e.Token.Text)
	case NoCloseParen:
		return ErrNoCloseParen.Error()
	default:
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", ErrUnknown, e.cause)
		}
		return ErrUnknown.Error()
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case InvalidToken:
		return ErrInvalidToken
	case NoCloseParen:
		return ErrNoCloseParen
	default:
		return ErrUnknown
	}
}

// EvalError is returned by Eval when the tree has a shape the evaluator
// doesn't understand.
type EvalError struct {
	Reason string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEvaluation, e.Reason)
}

func (e *EvalError) Unwrap() error {
	return ErrEvaluation
}

// UnknownIdentifierError is returned when an identifier in the tree is
// missing from the identifier map.
type UnknownIdentifierError struct {
	Identifier string
}

// NewUnknownIdentifierError creates a new UnknownIdentifierError for the given identifier.
func NewUnknownIdentifierError(identifier string) error {
	return &UnknownIdentifierError{Identifier: identifier}
}

func (e UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier: %s", e.Identifier)
}

func (e UnknownIdentifierError) Unwrap() error {
	return ErrEvaluation
}
