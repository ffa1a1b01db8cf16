package lineexpr

import (
	"fmt"
	"strings"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Dot describes the parsed tree as a Graphviz digraph titled label. Render
// it with e.g. `dot -Tsvg`.
func (p *Parser) Dot(label string) string {
	var sb strings.Builder

	sb.WriteString("digraph tree {\n")
	fmt.Fprintf(&sb, "\tlabel=\"%s\"\n", dotEscaper.Replace(label))
	sb.WriteString("\tlabelloc=\"t\";\n")
	sb.WriteString("\tfontname=\"Helvetica,Arial,sans-serif\"\n")
	p.dotLabels(&sb, p.tree.Root())
	p.dotEdges(&sb, p.tree.Root())
	sb.WriteString("}\n")

	return sb.String()
}

func (p *Parser) dotLabels(sb *strings.Builder, id NodeID) {
	n := p.tree.nodes[id]
	if n.Kind == NodeExpr {
		fmt.Fprintf(sb, "\t%d [label=\"EXPR\" shape=\"box\"]\n", id)
	} else {
		fmt.Fprintf(sb, "\t%d [label=\"%s\" shape=\"plain\" fontsize=\"18\" fontcolor=\"orangered3\"]\n", id, dotEscaper.Replace(n.Token.Text))
	}

	for _, child := range n.Children {
		p.dotLabels(sb, child)
	}
}

func (p *Parser) dotEdges(sb *strings.Builder, id NodeID) {
	n := p.tree.nodes[id]
	if n.Parent != noNode {
		fmt.Fprintf(sb, "\t%d -> %d\n", n.Parent, id)
	}

	for _, child := range n.Children {
		p.dotEdges(sb, child)
	}
}
