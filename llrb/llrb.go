package llrb

import "fmt"

import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/bst"
import s "github.com/bnclabs/gosettings"

// LLRB manage a single instance of in-memory sorted index using
// left-leaning-red-black tree.
type LLRB[K, V any] struct { // tree container
	*bst.BST[K, V]
	llrbstats
	logprefix string
}

type llrbstats struct {
	n_rotatelefts  int64
	n_rotaterights int64
	n_flips        int64
}

// NewLLRB a new instance of in-memory sorted index ordered by compare.
func NewLLRB[K, V any](
	name string, compare api.Comparator[K], setts s.Settings) *LLRB[K, V] {

	if compare == nil {
		panic("NewLLRB(): nil comparator")
	}
	llrb := &LLRB[K, V]{logprefix: fmt.Sprintf("LLRB [%s]", name)}
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	hooks := &llrbhooks[K, V]{compare: compare, stats: &llrb.llrbstats}
	llrb.BST = bst.NewBST[K, V](name, hooks, setts)
	infof("%v started ...\n", llrb.logprefix)
	return llrb
}

// Insert {key,value} into the tree and rebalance. Outcome and error
// are same as bst.BST.Insert(). Root is always black.
func (llrb *LLRB[K, V]) Insert(key K, value V) (api.Outcome, error) {
	outcome, err := llrb.BST.Insert(key, value)
	if root := llrb.Root(); root != nil {
		root.Setblack()
	}
	return outcome, err
}
