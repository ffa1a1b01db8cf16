package lineexpr

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/samber/lo"
)

const (
	precedenceOr  = 0
	precedenceAnd = 1
)

// Parser turns one expression into a Tree and evaluates lines against it.
//
// A Parser is not safe for concurrent use: Eval rewrites the identifier map
// on every call. Give each goroutine its own Parser built from the same
// expression instead.
type Parser struct {
	expression string
	tokenizer  *Tokenizer
	tree       *Tree

	// identifier text -> whether the last evaluated line contains it
	identifiers map[string]bool

	parsed   bool
	parseErr error
}

func NewParser(expression string) *Parser {
	p := &Parser{
		expression:  expression,
		tokenizer:   NewTokenizer(expression),
		tree:        newTree(),
		identifiers: make(map[string]bool),
	}
	p.tokenizer.Next()
	return p
}

// Parse builds the expression tree. Only the first call does any work,
// later calls return the same result.
func (p *Parser) Parse() error {
	if p.parsed || p.parseErr != nil {
		return p.parseErr
	}

	if err := p.parseExpr(p.tree.Root(), precedenceOr); err != nil {
		slog.Debug("failed to parse expression", "expression", p.expression, "error", err)
		p.parseErr = err
		return err
	}

	slog.Debug("parsed expression",
		"expression", p.expression,
		"tree", p.tree.String(),
		"nodes", p.tree.Len(),
		"identifiers", len(p.identifiers),
	)
	p.parsed = true
	return nil
}

// CurrentToken returns the token the tokenizer stopped at. After a failed
// Parse this is the offending token.
func (p *Parser) CurrentToken() Token {
	return p.tokenizer.Current()
}

// Tree returns the parsed tree. It must not be modified.
func (p *Parser) Tree() *Tree {
	return p.tree
}

func (p *Parser) Expression() string {
	return p.expression
}

// Identifiers returns a copy of the identifier map as of the last call to
// Eval. Before the first Eval every value is false.
func (p *Parser) Identifiers() map[string]bool {
	return maps.Clone(p.identifiers)
}

// IdentifierNames returns the identifiers of the expression, sorted.
func (p *Parser) IdentifierNames() []string {
	names := lo.Keys(p.identifiers)
	slices.Sort(names)
	return names
}

// parseExpr reads one operand and the operator after it, then continues the
// chain it belongs to. node is the container being filled and precedence the
// level of its operators. An "and" met at the "or" level opens a nested
// chain; an "or" met at the "and" level closes the chain and carries on in
// its parent.
func (p *Parser) parseExpr(node NodeID, precedence int) error {
	operand, err := p.parsePrimary()
	if err != nil {
		return err
	}

	next := p.tokenizer.Next()
	if next.Kind == TokenEndOfInput || next.Kind == TokenCloseParen {
		return p.check(p.tree.appendOperand(node, operand))
	}

	var newPrecedence int
	switch next.Kind {
	case TokenOr:
		newPrecedence = precedenceOr
	case TokenAnd:
		newPrecedence = precedenceAnd
	default:
		return newParseError(InvalidToken, next)
	}

	switch {
	case precedence == newPrecedence:
		if err := p.tree.appendOperand(node, operand); err != nil {
			return p.check(err)
		}
		if err := p.tree.appendOperator(node, next); err != nil {
			return p.check(err)
		}
		p.tokenizer.Next()
		return p.parseExpr(node, precedence)

	case precedence == precedenceAnd:
		if err := p.tree.appendOperand(node, operand); err != nil {
			return p.check(err)
		}
		parent, ok := p.tree.Parent(node)
		if !ok {
			return newParseError(Unknown, next)
		}
		if err := p.tree.appendOperator(parent, next); err != nil {
			return p.check(err)
		}
		p.tokenizer.Next()
		return p.parseExpr(parent, precedenceOr)

	default:
		chain := p.tree.newExpr()
		if err := p.tree.appendOperand(node, chain); err != nil {
			return p.check(err)
		}
		if err := p.tree.appendOperand(chain, operand); err != nil {
			return p.check(err)
		}
		if err := p.tree.appendOperator(chain, next); err != nil {
			return p.check(err)
		}
		p.tokenizer.Next()
		return p.parseExpr(chain, precedenceAnd)
	}
}

// parsePrimary reads the operand at the current token. It leaves the
// tokenizer on the operand's last token.
func (p *Parser) parsePrimary() (NodeID, error) {
	current := p.tokenizer.Current()
	switch current.Kind {
	case TokenIdentifier, TokenAnd, TokenOr, TokenCloseParen:
		// keywords and a stray ")" are searched for literally
		return p.identifier(current), nil
	case TokenNot:
		return p.parseNegation(current)
	case TokenOpenParen:
		return p.parseGroup()
	default:
		return noNode, newParseError(InvalidToken, current)
	}
}

func (p *Parser) parseNegation(not Token) (NodeID, error) {
	operand := p.tokenizer.Next()
	switch operand.Kind {
	case TokenIdentifier, TokenNot, TokenAnd, TokenOr, TokenCloseParen:
		negation, err := p.tree.newNegation(not, p.identifier(operand))
		return negation, p.check(err)

	case TokenOpenParen:
		if p.tokenizer.Next().Kind == TokenEndOfInput {
			return p.unterminatedNotGroup(operand), nil
		}

		group := p.tree.newExpr()
		if err := p.parseExpr(group, precedenceOr); err != nil {
			return noNode, err
		}
		if p.tokenizer.Current().Kind != TokenCloseParen {
			return noNode, newParseError(NoCloseParen, p.tokenizer.Current())
		}

		negation, err := p.tree.newNegation(not, group)
		return negation, p.check(err)

	case TokenEndOfInput:
		return p.trailingNotLiteral(not), nil

	default:
		return noNode, newParseError(InvalidToken, operand)
	}
}

// trailingNotLiteral handles a "not" that ends the expression: it is the
// identifier "not" rather than a negation of nothing.
func (p *Parser) trailingNotLiteral(not Token) NodeID {
	return p.identifier(Token{Kind: TokenIdentifier, Text: not.Text})
}

// unterminatedNotGroup handles "not (" at the end of the expression. The
// negation is dropped and the "(" is searched for literally.
func (p *Parser) unterminatedNotGroup(openParen Token) NodeID {
	return p.identifier(Token{Kind: TokenIdentifier, Text: openParen.Text})
}

func (p *Parser) parseGroup() (NodeID, error) {
	group := p.tree.newExpr()

	p.tokenizer.Next()
	if err := p.parseExpr(group, precedenceOr); err != nil {
		return noNode, err
	}
	if p.tokenizer.Current().Kind != TokenCloseParen {
		return noNode, newParseError(NoCloseParen, p.tokenizer.Current())
	}

	return group, nil
}

func (p *Parser) identifier(token Token) NodeID {
	if _, ok := p.identifiers[token.Text]; !ok {
		p.identifiers[token.Text] = false
	}
	return p.tree.newIdentifier(token)
}

// check turns a broken tree invariant into an Unknown parse error.
func (p *Parser) check(err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{
		Kind:  Unknown,
		Token: p.tokenizer.Current(),
		cause: err,
	}
}
