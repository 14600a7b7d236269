package bst

import "fmt"

// Validate walk the full tree to confirm the sort order and entry
// count, panic on failure.
func (t *BST[K, V]) Validate() {
	if err := t.validate(); err != nil {
		panic(fmt.Errorf("Validate(): %v", err))
	}
}

func (t *BST[K, V]) validate() error {
	n, err := t.validatetree(t.root)
	if err != nil {
		return err
	} else if n != t.n_count {
		return fmt.Errorf("found %v nodes, expected Count():%v", n, t.n_count)
	} else if t.n_count != t.n_inserts {
		fmsg := "n_count:%v != n_inserts:%v"
		return fmt.Errorf(fmsg, t.n_count, t.n_inserts)
	} else if t.n_nodes != t.n_inserts {
		fmsg := "n_nodes:%v != n_inserts:%v"
		return fmt.Errorf(fmsg, t.n_nodes, t.n_inserts)
	}
	return nil
}

// validatetree return the number of nodes in the sub-tree, with every
// key in left sub-tree sorting before nd and every key in right
// sub-tree sorting after nd.
func (t *BST[K, V]) validatetree(nd *Node[K, V]) (int64, error) {
	if nd == nil {
		return 0, nil
	}
	ln, err := t.validatetree(nd.left)
	if err != nil {
		return 0, err
	}
	rn, err := t.validatetree(nd.right)
	if err != nil {
		return 0, err
	}
	if nd.left != nil {
		if max := maxnode(nd.left); t.hooks.Compare(max.key, nd.key) >= 0 {
			fmsg := "sort order, left node %v is >= node %v"
			return 0, fmt.Errorf(fmsg, max.key, nd.key)
		}
	}
	if nd.right != nil {
		if min := minnode(nd.right); t.hooks.Compare(min.key, nd.key) <= 0 {
			fmsg := "sort order, right node %v is <= node %v"
			return 0, fmt.Errorf(fmsg, min.key, nd.key)
		}
	}
	return ln + rn + 1, nil
}

func minnode[K, V any](nd *Node[K, V]) *Node[K, V] {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

func maxnode[K, V any](nd *Node[K, V]) *Node[K, V] {
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}
