package lineexpr

import (
	"fmt"
	"strings"
)

// Eval reports whether line matches the parsed expression. Each identifier
// is true when it occurs anywhere in line, case-sensitively.
//
// Every operand of a chain is evaluated, even once the result is decided.
func (p *Parser) Eval(line string) (bool, error) {
	if !p.parsed {
		return false, ErrNotParsed
	}

	for identifier := range p.identifiers {
		p.identifiers[identifier] = strings.Contains(line, identifier)
	}

	return p.fold(p.tree.Root())
}

func (p *Parser) fold(id NodeID) (bool, error) {
	n := &p.tree.nodes[id]

	switch {
	case len(n.Children) == 1:
		return p.fold(n.Children[0])

	case n.Kind == NodeIdentifier:
		value, ok := p.identifiers[n.Token.Text]
		if !ok {
			return false, NewUnknownIdentifierError(n.Token.Text)
		}
		return value, nil

	case len(n.Children) == 2:
		return p.foldNegation(n)

	case n.Kind == NodeExpr && len(n.Children) >= 3 && len(n.Children)%2 == 1:
		return p.foldChain(n)

	default:
		return false, &EvalError{Reason: fmt.Sprintf("don't know how to handle %s node with %d children", n.Kind, len(n.Children))}
	}
}

func (p *Parser) foldNegation(n *Node) (bool, error) {
	not, operand := p.tree.nodes[n.Children[0]], p.tree.nodes[n.Children[1]]
	if not.Kind != NodeNot || (operand.Kind != NodeExpr && operand.Kind != NodeIdentifier) {
		return false, &EvalError{Reason: fmt.Sprintf("cannot negate %s with %s", operand.Kind, not.Kind)}
	}

	value, err := p.fold(n.Children[1])
	if err != nil {
		return false, fmt.Errorf("failed evaluating negated expression: %w", err)
	}
	return !value, nil
}

func (p *Parser) foldChain(n *Node) (bool, error) {
	result, err := p.fold(n.Children[0])
	if err != nil {
		return false, fmt.Errorf("failed evaluating first operand: %w", err)
	}

	for i := 1; i < len(n.Children); i += 2 {
		operator := p.tree.nodes[n.Children[i]]
		if operator.Kind != NodeOperator {
			return false, &EvalError{Reason: fmt.Sprintf("expected an operator at position %d, got %s", i, operator.Kind)}
		}

		value, err := p.fold(n.Children[i+1])
		if err != nil {
			return false, fmt.Errorf("failed evaluating operand %d: %w", i/2+1, err)
		}

		switch operator.Token.Kind {
		case TokenAnd:
			result = result && value
		case TokenOr:
			result = result || value
		default:
			return false, &EvalError{Reason: fmt.Sprintf("unknown operator %s", operator.Token)}
		}
	}

	return result, nil
}
