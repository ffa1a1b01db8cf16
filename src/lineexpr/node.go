package lineexpr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type NodeKind int

const (
	NodeUnknown NodeKind = iota
	// NodeExpr is a container: a group, a negation or an operator chain.
	NodeExpr
	// NodeIdentifier is a literal searched for in the line.
	NodeIdentifier
	// NodeNot marks the container it starts as a negation.
	NodeNot
	// NodeOperator sits between two operands of a chain.
	NodeOperator
)

func (k NodeKind) String() string {
	switch k {
	case NodeExpr:
		return "EXPR"
	case NodeIdentifier:
		return "ID"
	case NodeNot:
		return "NOT"
	case NodeOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// NodeID is the position of a node in its Tree.
type NodeID int

const noNode NodeID = -1

// Node is one entry of a Tree. Containers have children and no token,
// every other kind has a token and no children.
type Node struct {
	Kind     NodeKind
	Token    Token
	Parent   NodeID
	Children []NodeID
}

// Tree owns every node of a parsed expression. Nodes refer to each other by
// NodeID, so the parent links used while parsing never own anything.
//
// The containers only grow through appendOperand, appendOperator and
// newNegation, which keep each one in one of three shapes:
//
//	[operand]                                 group
//	[not, operand]                            negation
//	[operand, op, operand, op, operand, ...]  chain, every op the same
type Tree struct {
	nodes []Node
	root  NodeID
}

func newTree() *Tree {
	t := &Tree{}
	t.root = t.newExpr()
	return t
}

// Root returns the implicit top level container.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns a copy of the node with the given id, for inspecting a
// parsed tree.
func (t *Tree) Node(id NodeID) Node {
	n := t.nodes[id]
	n.Children = slices.Clone(n.Children)
	return n
}

// Parent returns the container holding id, if it has been attached to one.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	parent := t.nodes[id].Parent
	return parent, parent != noNode
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) add(kind NodeKind, token Token) NodeID {
	t.nodes = append(t.nodes, Node{
		Kind:   kind,
		Token:  token,
		Parent: noNode,
	})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) newExpr() NodeID {
	return t.add(NodeExpr, Token{})
}

func (t *Tree) newIdentifier(token Token) NodeID {
	return t.add(NodeIdentifier, token)
}

// newNegation builds the container [not, operand].
func (t *Tree) newNegation(not Token, operand NodeID) (NodeID, error) {
	if not.Kind != TokenNot {
		return noNode, fmt.Errorf("negation needs a not token, got %s", not)
	}

	negation := t.newExpr()
	if err := t.attach(negation, t.add(NodeNot, not)); err != nil {
		return noNode, err
	}
	if err := t.attach(negation, operand); err != nil {
		return noNode, err
	}
	return negation, nil
}

// appendOperand adds an operand to a group or chain. Operands go at even
// positions only.
func (t *Tree) appendOperand(container, operand NodeID) error {
	if err := t.checkChain(container); err != nil {
		return err
	}
	if len(t.nodes[container].Children)%2 != 0 {
		return fmt.Errorf("container %d expects an operator, got an operand", container)
	}
	return t.attach(container, operand)
}

// appendOperator adds an operator after the last operand of a chain. All
// operators of one chain are the same.
func (t *Tree) appendOperator(container NodeID, operator Token) error {
	if operator.Kind != TokenAnd && operator.Kind != TokenOr {
		return fmt.Errorf("%s is not an operator", operator)
	}
	if err := t.checkChain(container); err != nil {
		return err
	}

	children := t.nodes[container].Children
	if len(children)%2 != 1 {
		return fmt.Errorf("container %d expects an operand, got %s", container, operator)
	}
	if len(children) > 1 {
		if first := t.nodes[children[1]].Token; first.Kind != operator.Kind {
			return fmt.Errorf("container %d chains %s, cannot add %s", container, first, operator)
		}
	}

	return t.attach(container, t.add(NodeOperator, operator))
}

func (t *Tree) checkChain(container NodeID) error {
	n := t.nodes[container]
	if n.Kind != NodeExpr {
		return fmt.Errorf("node %d is a %s, not a container", container, n.Kind)
	}
	if len(n.Children) > 0 && t.nodes[n.Children[0]].Kind == NodeNot {
		return fmt.Errorf("container %d is a negation", container)
	}
	return nil
}

func (t *Tree) attach(parent, child NodeID) error {
	if child == t.root {
		return fmt.Errorf("the root cannot be a child")
	}
	if t.nodes[child].Parent != noNode {
		return fmt.Errorf("node %d already belongs to %d", child, t.nodes[child].Parent)
	}

	t.nodes[child].Parent = parent
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	return nil
}

// String renders the tree with one pair of parentheses per container and
// quoted identifiers, e.g. `("dog" or ("cat" and "pig"))`.
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, t.root)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, id NodeID) {
	n := t.nodes[id]
	switch n.Kind {
	case NodeExpr:
		sb.WriteByte('(')
		for i, child := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			t.write(sb, child)
		}
		sb.WriteByte(')')
	case NodeIdentifier:
		sb.WriteString(strconv.Quote(n.Token.Text))
	default:
		sb.WriteString(n.Token.Text)
	}
}
