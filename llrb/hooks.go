package llrb

import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/bst"

// llrbhooks implement bst.Hooks for 2-3 variant of LLRB tree.
type llrbhooks[K, V any] struct {
	compare api.Comparator[K]
	stats   *llrbstats
}

func (h *llrbhooks[K, V]) Compare(nodekey, key K) int {
	return h.compare(nodekey, key)
}

// Newnode is always red, as if a key is added to an existing 2-node.
func (h *llrbhooks[K, V]) Newnode(key K, value V) *bst.Node[K, V] {
	return bst.Newnode(key, value).Setred()
}

func (h *llrbhooks[K, V]) Oninserted(nd *bst.Node[K, V]) *bst.Node[K, V] {
	return h.walkuprot23(nd)
}

// rotation routines for 2-3 algorithm

func (h *llrbhooks[K, V]) walkuprot23(nd *bst.Node[K, V]) *bst.Node[K, V] {
	if nd.Right().Isred() && !nd.Left().Isred() {
		nd = h.rotateleft(nd)
	}
	if nd.Left().Isred() && nd.Left().Left().Isred() {
		nd = h.rotateright(nd)
	}
	if nd.Left().Isred() && nd.Right().Isred() {
		h.flip(nd)
	}
	return nd
}

func (h *llrbhooks[K, V]) rotateleft(nd *bst.Node[K, V]) *bst.Node[K, V] {
	y := nd.Right()
	if y.Isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.Setright(y.Left())
	y.Setleft(nd)
	y.Copycolor(nd)
	nd.Setred()
	h.stats.n_rotatelefts++
	return y
}

func (h *llrbhooks[K, V]) rotateright(nd *bst.Node[K, V]) *bst.Node[K, V] {
	x := nd.Left()
	if x.Isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.Setleft(x.Right())
	x.Setright(nd)
	x.Copycolor(nd)
	nd.Setred()
	h.stats.n_rotaterights++
	return x
}

// REQUIRE: Left and Right children must be present
func (h *llrbhooks[K, V]) flip(nd *bst.Node[K, V]) {
	nd.Left().Togglelink()
	nd.Right().Togglelink()
	nd.Togglelink()
	h.stats.n_flips++
}
