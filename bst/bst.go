package bst

import "io"
import "fmt"
import "strings"

import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/lib"
import s "github.com/bnclabs/gosettings"

// BST manage a single instance of in-memory sorted index using an
// ordered binary tree.
type BST[K, V any] struct {
	bststats
	h_insertdepth *lib.HistogramInt64
	h_lookupdepth *lib.HistogramInt64

	name  string
	hooks Hooks[K, V]
	root  *Node[K, V]

	// settings
	duplicate string
	maxdepth  int64
	setts     s.Settings
	logprefix string
}

type bststats struct {
	n_count   int64 // number of entries in the tree
	n_lookups int64
	n_misses  int64
	n_visits  int64 // positions visited by lookups
	n_inserts int64
	n_updates int64
	n_rejects int64
	n_nodes   int64 // nodes constructed
}

// NewBST a new instance of ordered tree, hooks decide the ordering
// and the shape of the tree, use Defaulthooks() for a plain binary
// search tree.
func NewBST[K, V any](name string, hooks Hooks[K, V], setts s.Settings) *BST[K, V] {
	if hooks == nil {
		panic("NewBST(): nil hooks")
	}
	t := &BST[K, V]{name: name, hooks: hooks}
	t.logprefix = fmt.Sprintf("BST [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	// statistics
	t.h_insertdepth = lib.NewhistorgramInt64(1, t.maxdepth, 1)
	t.h_lookupdepth = lib.NewhistorgramInt64(1, t.maxdepth, 1)

	infof("%v started with duplicate:%q ...\n", t.logprefix, t.duplicate)
	return t
}

func (t *BST[K, V]) readsettings(setts s.Settings) {
	t.duplicate = setts.String("duplicate")
	switch t.duplicate {
	case api.DuplicateOverwrite, api.DuplicateReject:
	default:
		panicerr("invalid settings duplicate:%q", t.duplicate)
	}
	if t.maxdepth = setts.Int64("depth.histogram"); t.maxdepth < 2 {
		panicerr("depth.histogram:%v should be atleast 2", t.maxdepth)
	}
}

// ID return the name of this tree.
func (t *BST[K, V]) ID() string {
	return t.name
}

// Count return the number of entries in the tree.
func (t *BST[K, V]) Count() int64 {
	return t.n_count
}

// Root return the root node, nil if tree is empty. Nodes shall not be
// modified outside the tree's hooks.
func (t *BST[K, V]) Root() *Node[K, V] {
	return t.root
}

// Settings return the settings this tree was configured with.
func (t *BST[K, V]) Settings() s.Settings {
	return make(s.Settings).Mixin(t.setts)
}

// Insert {key,value} into the tree. Return api.Inserted for a new key.
// For an existing key return api.Overwritten if duplicate policy is
// "overwrite", else return api.Rejected and api.ErrorDuplicateKey.
func (t *BST[K, V]) Insert(key K, value V) (api.Outcome, error) {
	root, outcome := t.insert(t.root, 1 /*depth*/, key, value)
	t.root = root

	switch outcome {
	case api.Inserted:
		t.n_count++
		t.n_inserts++
	case api.Overwritten:
		t.n_updates++
	case api.Rejected:
		t.n_rejects++
		debugf("%v rejected duplicate key %v\n", t.logprefix, key)
		return outcome, api.ErrorDuplicateKey
	}
	return outcome, nil
}

func (t *BST[K, V]) insert(
	nd *Node[K, V], depth int64, key K, value V) (*Node[K, V], api.Outcome) {

	if nd == nil {
		t.h_insertdepth.Add(depth)
		t.n_nodes++
		return t.hooks.Newnode(key, value), api.Inserted
	}

	var outcome api.Outcome
	var child *Node[K, V]

	if cmp := t.hooks.Compare(nd.key, key); cmp > 0 {
		child, outcome = t.insert(nd.left, depth+1, key, value)
		nd.left = child

	} else if cmp < 0 {
		child, outcome = t.insert(nd.right, depth+1, key, value)
		nd.right = child

	} else {
		t.h_insertdepth.Add(depth)
		if t.duplicate == api.DuplicateReject {
			return nd, api.Rejected
		}
		nd.value = value
		return nd, api.Overwritten
	}

	if outcome == api.Rejected {
		return nd, outcome
	}
	return t.hooks.Oninserted(nd), outcome
}

// Lookup key in the tree, ok is false if key is missing.
func (t *BST[K, V]) Lookup(key K) (value V, ok bool) {
	nd, visits := t.lookup(t.root, 1 /*visits*/, key)

	t.n_lookups++
	t.n_visits += visits
	t.h_lookupdepth.Add(visits)
	if nd == nil {
		t.n_misses++
		return value, false
	}
	return nd.value, true
}

// visits count nodes walked, including the empty position for a
// missing key.
func (t *BST[K, V]) lookup(
	nd *Node[K, V], visits int64, key K) (*Node[K, V], int64) {

	if nd == nil {
		return nil, visits
	}
	if cmp := t.hooks.Compare(nd.key, key); cmp > 0 {
		return t.lookup(nd.left, visits+1, key)
	} else if cmp < 0 {
		return t.lookup(nd.right, visits+1, key)
	}
	return nd, visits
}

// Depth return the number of nodes on the longest path from root
// to a leaf. Walks the full tree.
func (t *BST[K, V]) Depth() int64 {
	return depth(t.root)
}

func depth[K, V any](nd *Node[K, V]) int64 {
	if nd == nil {
		return 0
	}
	left, right := depth(nd.left), depth(nd.right)
	if left > right {
		return left + 1
	}
	return right + 1
}

// Min return the entry that sort before every other entry.
func (t *BST[K, V]) Min() (key K, value V, ok bool) {
	nd := t.root
	if nd == nil {
		return key, value, false
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd.key, nd.value, true
}

// Max return the entry that sort after every other entry.
func (t *BST[K, V]) Max() (key K, value V, ok bool) {
	nd := t.root
	if nd == nil {
		return key, value, false
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd.key, nd.value, true
}

// Iterate over all entries in sort order, until callb return false.
func (t *BST[K, V]) Iterate(callb func(key K, value V) bool) {
	t.iterate(t.root, callb)
}

func (t *BST[K, V]) iterate(nd *Node[K, V], callb func(K, V) bool) bool {
	if nd == nil {
		return true
	}
	if !t.iterate(nd.left, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return t.iterate(nd.right, callb)
}

// Range over entries between lkey and hkey, both inclusive, in sort
// order until callb return false.
func (t *BST[K, V]) Range(lkey, hkey K, callb func(key K, value V) bool) {
	if t.hooks.Compare(lkey, hkey) > 0 {
		return
	}
	t.rangehele(t.root, lkey, hkey, callb)
}

// low <= (keys) <= high
func (t *BST[K, V]) rangehele(
	nd *Node[K, V], lkey, hkey K, callb func(K, V) bool) bool {

	if nd == nil {
		return true
	}
	if t.hooks.Compare(nd.key, hkey) > 0 {
		return t.rangehele(nd.left, lkey, hkey, callb)
	}
	if t.hooks.Compare(nd.key, lkey) < 0 {
		return t.rangehele(nd.right, lkey, hkey, callb)
	}
	if !t.rangehele(nd.left, lkey, hkey, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return t.rangehele(nd.right, lkey, hkey, callb)
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (t *BST[K, V]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph bst {",
		"  node[shape=record];\n",
		"}\n",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	t.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// Pprint tree, one node per line, children indented under parents.
func (t *BST[K, V]) Pprint(w io.Writer) {
	t.root.pprint(w, "")
}
