package bst

import "github.com/bnclabs/llrbtree/api"

// Hooks customize how a tree compares keys, constructs nodes and
// restructures itself while inserting. All hooks are called from
// within the insert path, they shall not call back into the tree.
type Hooks[K, V any] interface {
	// Compare nodekey with key, return negative if nodekey sort before
	// key, zero if equal, positive if nodekey sort after key.
	Compare(nodekey, key K) int

	// Newnode construct a node for a missing key.
	Newnode(key K, value V) *Node[K, V]

	// Oninserted is called, bottom up, on every node whose child
	// sub-tree was inserted into. Returned node replaces nd as the
	// root of that sub-tree.
	Oninserted(nd *Node[K, V]) *Node[K, V]
}

type plainhooks[K, V any] struct {
	compare api.Comparator[K]
}

// Defaulthooks for a plain binary search tree ordered by compare.
func Defaulthooks[K, V any](compare api.Comparator[K]) Hooks[K, V] {
	if compare == nil {
		panic("Defaulthooks(): nil comparator")
	}
	return &plainhooks[K, V]{compare: compare}
}

func (h *plainhooks[K, V]) Compare(nodekey, key K) int {
	return h.compare(nodekey, key)
}

// Newnode is black, plain trees have no red links.
func (h *plainhooks[K, V]) Newnode(key K, value V) *Node[K, V] {
	return Newnode(key, value).Setblack()
}

func (h *plainhooks[K, V]) Oninserted(nd *Node[K, V]) *Node[K, V] {
	return nd
}
