package llrb

import "fmt"
import "bytes"
import "strings"
import "testing"
import "math/rand"

import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/bst"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

var _ api.Index[int64, string] = &LLRB[int64, string]{}
var _ api.IndexMeta = &LLRB[int64, string]{}

// shape of the tree, "_" for missing child, leaf nodes without braces.
// Red nodes are suffixed with "*".
func shape[K, V any](nd *bst.Node[K, V]) string {
	if nd == nil {
		return "_"
	}
	key := fmt.Sprintf("%v", nd.Key())
	if nd.Isred() {
		key += "*"
	}
	if nd.Left() == nil && nd.Right() == nil {
		return key
	}
	return fmt.Sprintf("%v(%v,%v)", key, shape(nd.Left()), shape(nd.Right()))
}

func newtestllrb(name string, keys []int64) *LLRB[int64, string] {
	llrb := NewLLRB[int64, string](name, api.Int64cmp, Defaultsettings())
	for _, key := range keys {
		value := fmt.Sprintf("DATA %v", key)
		if outcome, err := llrb.Insert(key, value); err != nil {
			panic(err)
		} else if outcome != api.Inserted {
			panic(fmt.Errorf("unexpected %v", outcome))
		}
	}
	return llrb
}

func TestLLRBEmpty(t *testing.T) {
	llrb := NewLLRB[int64, string]("empty", api.Int64cmp, nil)

	if llrb.ID() != "empty" {
		t.Errorf("unexpected %v", llrb.ID())
	} else if llrb.Count() != 0 {
		t.Errorf("unexpected %v", llrb.Count())
	} else if x := llrb.Depth(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if _, ok := llrb.Lookup(10); ok {
		t.Errorf("unexpected key 10 in empty tree")
	}

	llrb.Validate()
	stats := llrb.Fullstats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_rotatelefts"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_rotaterights"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_flips"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_blacks"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	llrb.Log(true)
}

func TestLLRB3Elements(t *testing.T) {
	permutations := [][]int64{
		{1, 3, 5}, {1, 5, 3}, {3, 1, 5}, {3, 5, 1}, {5, 1, 3}, {5, 3, 1},
	}
	for _, keys := range permutations {
		llrb := newtestllrb("three", keys)
		llrb.Validate()

		if x := shape(llrb.Root()); x != "3(1,5)" {
			t.Errorf("%v: unexpected shape %v", keys, x)
		} else if x := llrb.Depth(); x != 2 {
			t.Errorf("%v: unexpected depth %v", keys, x)
		}
		for _, key := range []int64{1, 3, 5} {
			value, ok := llrb.Lookup(key)
			if !ok {
				t.Errorf("%v: missing key %v", keys, key)
			} else if ref := fmt.Sprintf("DATA %v", key); value != ref {
				t.Errorf("%v: expected %q, got %q", keys, ref, value)
			}
		}
	}
}

func TestLLRB7Elements(t *testing.T) {
	permutations := [][]int64{
		{1, 2, 3, 4, 5, 6, 7},
		{1, 7, 2, 6, 3, 5, 4},
		{1, 4, 7, 2, 5, 3, 6},
		{7, 6, 5, 4, 3, 2, 1},
		{4, 5, 3, 6, 2, 7, 1},
	}
	for _, keys := range permutations {
		llrb := newtestllrb("seven", keys)
		llrb.Validate()

		if x := shape(llrb.Root()); x != "4(2(1,3),6(5,7))" {
			t.Errorf("%v: unexpected shape %v", keys, x)
		} else if x := llrb.Depth(); x != 3 {
			t.Errorf("%v: unexpected depth %v", keys, x)
		} else if x := llrb.Count(); x != 7 {
			t.Errorf("%v: unexpected count %v", keys, x)
		}
		stats := llrb.Fullstats()
		if x := stats["n_blacks"].(int64); x != 3 {
			t.Errorf("%v: unexpected black height %v", keys, x)
		}
		if _, ok := llrb.Lookup(8); ok {
			t.Errorf("%v: unexpected key 8", keys)
		}
	}
}

func TestLLRBRotations(t *testing.T) {
	llrb := newtestllrb("rotations", []int64{1, 3})
	if x := shape(llrb.Root()); x != "3(1*,_)" {
		t.Errorf("unexpected shape %v", x)
	}
	stats := llrb.Stats()
	assert.Equal(t, int64(1), stats["n_rotatelefts"].(int64))
	assert.Equal(t, int64(0), stats["n_rotaterights"].(int64))
	assert.Equal(t, int64(0), stats["n_flips"].(int64))

	// 5 makes a 4-node, split by flip.
	_, err := llrb.Insert(5, "DATA 5")
	require.NoError(t, err)
	stats = llrb.Stats()
	assert.Equal(t, int64(1), stats["n_rotatelefts"].(int64))
	assert.Equal(t, int64(1), stats["n_flips"].(int64))
	assert.Equal(t, "3(1,5)", shape(llrb.Root()))

	// descending inserts rotate right.
	llrb = newtestllrb("rotations", []int64{5, 3, 1})
	stats = llrb.Stats()
	assert.Equal(t, int64(0), stats["n_rotatelefts"].(int64))
	assert.Equal(t, int64(1), stats["n_rotaterights"].(int64))
	assert.Equal(t, int64(1), stats["n_flips"].(int64))
}

func TestLLRBDuplicate(t *testing.T) {
	llrb := newtestllrb("overwrite", []int64{1, 2, 3, 4, 5, 6, 7})
	before := shape(llrb.Root())
	outcome, err := llrb.Insert(6, "SIX")
	require.NoError(t, err)
	assert.Equal(t, api.Overwritten, outcome)
	assert.Equal(t, before, shape(llrb.Root()))
	value, ok := llrb.Lookup(6)
	require.True(t, ok)
	assert.Equal(t, "SIX", value)
	assert.Equal(t, int64(7), llrb.Count())
	llrb.Validate()

	setts := Defaultsettings()
	setts["duplicate"] = api.DuplicateReject
	llrb = NewLLRB[int64, string]("reject", api.Int64cmp, setts)
	for _, key := range []int64{1, 2, 3, 4, 5, 6, 7} {
		_, err := llrb.Insert(key, fmt.Sprintf("DATA %v", key))
		require.NoError(t, err)
	}
	before = shape(llrb.Root())
	rotations := llrb.Stats()["n_rotatelefts"].(int64)
	outcome, err = llrb.Insert(6, "SIX")
	assert.Equal(t, api.ErrorDuplicateKey, err)
	assert.Equal(t, api.Rejected, outcome)
	assert.Equal(t, before, shape(llrb.Root()))
	assert.Equal(t, rotations, llrb.Stats()["n_rotatelefts"].(int64))
	value, _ = llrb.Lookup(6)
	assert.Equal(t, "DATA 6", value)
	assert.Equal(t, int64(1), llrb.Stats()["n_rejects"].(int64))
	llrb.Validate()
}

func TestLLRBRandom(t *testing.T) {
	n := 10000
	llrb := NewLLRB[int64, int64]("random", api.Int64cmp, nil)
	refmap := make(map[int64]int64)
	rnd := rand.New(rand.NewSource(100))
	for i := 0; i < n; i++ {
		key := rnd.Int63n(int64(n * 4))
		outcome, err := llrb.Insert(key, int64(i))
		require.NoError(t, err)
		if _, ok := refmap[key]; ok {
			assert.Equal(t, api.Overwritten, outcome)
		} else {
			assert.Equal(t, api.Inserted, outcome)
		}
		refmap[key] = int64(i)
	}
	llrb.Validate()

	if x, y := llrb.Count(), int64(len(refmap)); x != y {
		t.Errorf("expected %v, got %v", y, x)
	}
	if x, y := llrb.Depth(), maxheight(llrb.Count()); x > y {
		t.Errorf("depth %v exceeds %v", x, y)
	}
	for key, ref := range refmap {
		if value, ok := llrb.Lookup(key); !ok {
			t.Errorf("missing key %v", key)
		} else if value != ref {
			t.Errorf("key %v expected %v, got %v", key, ref, value)
		}
	}
	for i := 0; i < 100; i++ {
		key := int64(n*4) + int64(i)
		if _, ok := llrb.Lookup(key); ok {
			t.Errorf("unexpected key %v", key)
		}
	}

	prev := int64(-1)
	llrb.Iterate(func(key, _ int64) bool {
		if key <= prev {
			t.Errorf("key %v after %v", key, prev)
		}
		prev = key
		return true
	})
	llrb.Log(true)
}

func TestLLRBAscending(t *testing.T) {
	llrb := NewLLRB[[]byte, int]("ascending", api.Binarycmp, nil)
	for i := 0; i < 1024; i++ {
		key := []byte(fmt.Sprintf("key%08d", i))
		_, err := llrb.Insert(key, i)
		require.NoError(t, err)
	}
	llrb.Validate()
	// sequential inserts produce a complete tree of 1023 nodes and
	// one extra level for the last key.
	assert.Equal(t, int64(11), llrb.Depth())
	key, value, ok := llrb.Max()
	require.True(t, ok)
	assert.Equal(t, "key00001023", string(key))
	assert.Equal(t, 1023, value)
}

func TestLLRBRotateBlackLink(t *testing.T) {
	stats := &llrbstats{}
	hooks := &llrbhooks[int64, int64]{compare: api.Int64cmp, stats: stats}
	nd := bst.Newnode[int64, int64](10, 10).Setblack()
	nd.Setright(bst.Newnode[int64, int64](20, 20).Setblack())
	nd.Setleft(bst.Newnode[int64, int64](5, 5).Setblack())

	assert.Panics(t, func() { hooks.rotateleft(nd) })
	assert.Panics(t, func() { hooks.rotateright(nd) })
	assert.Equal(t, int64(0), stats.n_rotatelefts)
	assert.Equal(t, int64(0), stats.n_rotaterights)
}

func TestLLRBValidateBroken(t *testing.T) {
	testcases := []struct {
		keys  []int64
		paint func(root *bst.Node[int64, string])
		err   string
	}{
		{
			[]int64{1, 3, 5},
			func(root *bst.Node[int64, string]) { root.Setred() },
			redroot.Error(),
		},
		{
			[]int64{1, 3, 5},
			func(root *bst.Node[int64, string]) { root.Right().Setred() },
			redrightlink.Error(),
		},
		{
			[]int64{1, 3, 5},
			func(root *bst.Node[int64, string]) { root.Left().Setred() },
			"unbalancedblacks {1,2}",
		},
		{
			[]int64{1, 2, 3, 4, 5, 6, 7},
			func(root *bst.Node[int64, string]) {
				root.Left().Setred()
				root.Left().Left().Setred()
			},
			redafterred.Error(),
		},
	}
	for _, tcase := range testcases {
		llrb := newtestllrb("broken", tcase.keys)
		tcase.paint(llrb.Root())
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("expected panic %q", tcase.err)
				} else if x := fmt.Sprintf("%v", r); !strings.Contains(x, tcase.err) {
					t.Errorf("expected %q, got %q", tcase.err, x)
				}
			}()
			llrb.Validate()
		}()
	}
}

func TestLLRBDotdump(t *testing.T) {
	llrb := newtestllrb("dot", []int64{1, 3})
	buf := bytes.NewBuffer(nil)
	llrb.Dotdump(buf)
	out := buf.String()
	if !strings.Contains(out, "\"3\" -> \"1\" [color=red];") {
		t.Errorf("unexpected %s", out)
	}
}

func BenchmarkLLRBInsert(b *testing.B) {
	llrb := NewLLRB[int64, int64]("bench", api.Int64cmp, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		llrb.Insert(int64(i), int64(i))
	}
}

func BenchmarkLLRBLookup(b *testing.B) {
	llrb := NewLLRB[int64, int64]("bench", api.Int64cmp, nil)
	for i := 0; i < 100000; i++ {
		llrb.Insert(int64(i), int64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		llrb.Lookup(int64(i % 100000))
	}
}
