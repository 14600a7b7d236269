package bst

import "fmt"

import "github.com/bnclabs/llrbtree/lib"
import humanize "github.com/dustin/go-humanize"

// Stats return tree counters and depth histograms for inserts and
// lookups.
func (t *BST[K, V]) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":       t.n_count,
		"n_lookups":     t.n_lookups,
		"n_misses":      t.n_misses,
		"n_visits":      t.n_visits,
		"n_inserts":     t.n_inserts,
		"n_updates":     t.n_updates,
		"n_rejects":     t.n_rejects,
		"n_nodes":       t.n_nodes,
		"h_insertdepth": t.h_insertdepth.Fullstats(),
		"h_lookupdepth": t.h_lookupdepth.Fullstats(),
	}
	return stats
}

// Fullstats return Stats along with histogram of node depth, walks the
// full tree.
func (t *BST[K, V]) Fullstats() map[string]interface{} {
	stats := t.Stats()
	h_height := lib.NewhistorgramInt64(1, t.maxdepth, 1)
	heightstats(t.root, 1 /*depth*/, h_height)
	if x := h_height.Samples(); x != t.Count() {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panic(fmt.Errorf(fmsg, x, t.Count()))
	}
	stats["h_height"] = h_height.Fullstats()
	stats["depth"] = h_height.Max()
	return stats
}

func heightstats[K, V any](nd *Node[K, V], depth int64, h *lib.HistogramInt64) {
	if nd == nil {
		return
	}
	h.Add(depth)
	heightstats(nd.left, depth+1, h)
	heightstats(nd.right, depth+1, h)
}

// Log full statistics, if humanize is true counters are logged in human
// readable format as well.
func (t *BST[K, V]) Log(humanize bool) {
	t.Logstats(t.logprefix, t.Fullstats(), humanize)
}

// Logstats log stats under logprefix, counts are humanized if asked.
// Trees built on top of BST use this to log their own stats.
func (t *BST[K, V]) Logstats(
	logprefix string, stats map[string]interface{}, dohumanize bool) {

	if dohumanize {
		count := humanize.Comma(stats["n_count"].(int64))
		lookups := humanize.Comma(stats["n_lookups"].(int64))
		inserts := humanize.Comma(stats["n_inserts"].(int64))
		updates := humanize.Comma(stats["n_updates"].(int64))
		fmsg := "%v count %v, lookups %v, inserts %v, updates %v\n"
		infof(fmsg, logprefix, count, lookups, inserts, updates)
	}
	if h, ok := stats["h_height"].(map[string]interface{}); ok {
		if max := h["max"].(int64); max > t.maxdepth {
			warnf("%v depth %v exceeds histogram %v\n", logprefix, max, t.maxdepth)
		}
	}
	infof("%v stats %v\n", logprefix, lib.Prettystats(stats, false))
}
