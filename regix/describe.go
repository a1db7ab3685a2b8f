package regix

import (
	"fmt"
	"strings"
)

// Tree dump for debugging: one node kind per line, children indented one
// level deeper. The exact wording is not a contract, only the shape.

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func (n literal) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "literal %q\n", n.Char)
}

func (n anyChar) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("any\n")
}

func (n digitClass) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("digit\n")
}

func (n spaceClass) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("space\n")
}

func (n letterClass) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("letter\n")
}

func (n *sequence) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("sequence\n")
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}

func (n *capture) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "group %d\n", n.ID)
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}

func (n *repeat) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "repeat min=%d\n", n.Min)
	n.Child.dump(sb, depth+1)
}

func (n *optional) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("optional\n")
	n.Child.dump(sb, depth+1)
}

func (n *alternation) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("alternation\n")
	n.Left.dump(sb, depth+1)
	n.Right.dump(sb, depth+1)
}

func (n *negation) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("negation\n")
	n.Child.dump(sb, depth+1)
}
