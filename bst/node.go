package bst

import "io"
import "fmt"
import "strings"

const (
	ndBlack uint8 = 0x1
)

// Node defines a node in the tree. A node exclusively owns its left
// and right sub-trees.
type Node[K, V any] struct {
	left  *Node[K, V]
	right *Node[K, V]
	key   K
	value V
	flags uint8
}

// Newnode create a detached node for {key,value}. Color bit is zero,
// that is, red. Plain trees ignore the color.
func Newnode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value}
}

// Key return entry key.
func (nd *Node[K, V]) Key() K {
	return nd.key
}

// Value return entry value.
func (nd *Node[K, V]) Value() V {
	return nd.value
}

// Left child, nil if missing.
func (nd *Node[K, V]) Left() *Node[K, V] {
	return nd.left
}

// Right child, nil if missing.
func (nd *Node[K, V]) Right() *Node[K, V] {
	return nd.right
}

// Setleft replace the left sub-tree.
func (nd *Node[K, V]) Setleft(left *Node[K, V]) *Node[K, V] {
	nd.left = left
	return nd
}

// Setright replace the right sub-tree.
func (nd *Node[K, V]) Setright(right *Node[K, V]) *Node[K, V] {
	nd.right = right
	return nd
}

//---- color

// Isblack return true for black nodes. Missing nodes are black.
func (nd *Node[K, V]) Isblack() bool {
	if nd == nil {
		return true
	}
	return (nd.flags & ndBlack) == ndBlack
}

// Isred return true for red nodes. Missing nodes are not red.
func (nd *Node[K, V]) Isred() bool {
	if nd == nil {
		return false
	}
	return !nd.Isblack()
}

// Setblack color this node black.
func (nd *Node[K, V]) Setblack() *Node[K, V] {
	nd.flags |= ndBlack
	return nd
}

// Setred color this node red.
func (nd *Node[K, V]) Setred() *Node[K, V] {
	nd.flags &= ^ndBlack
	return nd
}

// Togglelink flip the color of this node.
func (nd *Node[K, V]) Togglelink() *Node[K, V] {
	nd.flags ^= ndBlack
	return nd
}

// Copycolor color this node same as src.
func (nd *Node[K, V]) Copycolor(src *Node[K, V]) *Node[K, V] {
	if src.Isblack() {
		return nd.Setblack()
	}
	return nd.Setred()
}

//---- maintanence methods.

func (nd *Node[K, V]) repr() string {
	return fmt.Sprintf("%v %v", nd.key, nd.Isblack())
}

func (nd *Node[K, V]) pprint(w io.Writer, prefix string) {
	if nd == nil {
		fmt.Fprintf(w, "%v\n", nil)
		return
	}
	fmt.Fprintf(w, "%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Fprintf(w, "%vleft: ", prefix)
	nd.left.pprint(w, prefix)
	fmt.Fprintf(w, "%vright: ", prefix)
	nd.right.pprint(w, prefix)
}

func (nd *Node[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *Node[K, V]) string {
		if childnd.Isred() {
			return "red"
		}
		return "black"
	}

	key := fmt.Sprintf("%v", nd.key)
	lines := []string{
		fmt.Sprintf("  %q [label=\"{%s}\"];\n", key, key),
	}
	fmsg := "  %q -> %q [color=%v];\n"
	if nd.left != nil {
		lkey := fmt.Sprintf("%v", nd.left.key)
		lines = append(lines, fmt.Sprintf(fmsg, key, lkey, whatcolor(nd.left)))
	}
	if nd.right != nil {
		rkey := fmt.Sprintf("%v", nd.right.key)
		lines = append(lines, fmt.Sprintf(fmsg, key, rkey, whatcolor(nd.right)))
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
