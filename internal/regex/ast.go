// Package regex parses the pattern surface used by lexical specifications
// into an AST and hands it to the automata package for Thompson
// construction. Node is a closed tagged-variant type switched on Kind
// rather than a set of dynamically dispatched node types.
package regex

// Kind tags the variant a Node holds. The zero value is KindLiteral.
type Kind int

const (
	KindLiteral Kind = iota
	KindEpsilon
	KindConcat
	KindUnion
	KindStar
	KindPlus
)

// Node is a single AST node. Only the fields relevant to Kind are
// populated: Char for KindLiteral, Left for KindStar/KindPlus, Left and
// Right for KindConcat/KindUnion.
type Node struct {
	Kind  Kind
	Char  rune
	Left  *Node
	Right *Node
}

func NewLiteral(c rune) *Node     { return &Node{Kind: KindLiteral, Char: c} }
func NewEpsilon() *Node           { return &Node{Kind: KindEpsilon} }
func NewConcat(l, r *Node) *Node  { return &Node{Kind: KindConcat, Left: l, Right: r} }
func NewUnion(l, r *Node) *Node   { return &Node{Kind: KindUnion, Left: l, Right: r} }
func NewStar(operand *Node) *Node { return &Node{Kind: KindStar, Left: operand} }
func NewPlus(operand *Node) *Node { return &Node{Kind: KindPlus, Left: operand} }
