package llrb

import "fmt"
import "math"
import "errors"

import "github.com/bnclabs/llrbtree/bst"

// height of a LLRB tree cannot exceed 2*log2(n+1). For example if the
// tree holds 1-million entries, its height cannot exceed 40 levels.
func maxheight(entries int64) int64 {
	return 2 * int64(math.Ceil(math.Log2(float64(entries+1))))
}

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, left leaning.
var redrightlink = errors.New("red right link spotted")

var redroot = errors.New("root is red")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate the sort order and book-keeping of the tree, followed by
// LLRB color rules and height bound. Panic on failure.
func (llrb *LLRB[K, V]) Validate() {
	llrb.BST.Validate()
	if err := llrb.validate(); err != nil {
		errorf("%v %v\n", llrb.logprefix, err)
		panic(fmt.Errorf("Validate(): %v", err))
	}
}

func (llrb *LLRB[K, V]) validate() error {
	root := llrb.Root()
	if root.Isred() {
		return redroot
	}
	if _, err := validatecolors(root, false /*fromred*/, 0); err != nil {
		return err
	}
	entries := llrb.Count()
	if depth := llrb.Depth(); depth > maxheight(entries) {
		fmsg := "max height %v exceeds 2*log2(%v+1)"
		return fmt.Errorf(fmsg, depth, entries)
	}
	return nil
}

// validatecolors return the number of black nodes from nd to any of
// its empty positions, plus the blacks counted so far.
func validatecolors[K, V any](
	nd *bst.Node[K, V], fromred bool, blacks int64) (int64, error) {

	if nd == nil {
		return blacks, nil
	}
	if fromred && nd.Isred() {
		return 0, redafterred
	} else if nd.Right().Isred() {
		return 0, redrightlink
	}
	if nd.Isblack() {
		blacks++
	}
	lblacks, err := validatecolors(nd.Left(), nd.Isred(), blacks)
	if err != nil {
		return 0, err
	}
	rblacks, err := validatecolors(nd.Right(), nd.Isred(), blacks)
	if err != nil {
		return 0, err
	}
	if lblacks != rblacks {
		return 0, unbalancedblacks(lblacks, rblacks)
	}
	return lblacks, nil
}
