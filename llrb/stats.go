package llrb

// Stats return bst statistics along with rotation and flip counts.
func (llrb *LLRB[K, V]) Stats() map[string]interface{} {
	stats := llrb.BST.Stats()
	return llrb.statsrot(stats)
}

// Fullstats return bst full statistics along with the black height of
// the tree, walks the full tree.
func (llrb *LLRB[K, V]) Fullstats() map[string]interface{} {
	stats := llrb.statsrot(llrb.BST.Fullstats())
	nblacks, err := validatecolors(llrb.Root(), false /*fromred*/, 0)
	if err != nil {
		panic(err)
	}
	stats["n_blacks"] = nblacks
	return stats
}

func (llrb *LLRB[K, V]) statsrot(stats map[string]interface{}) map[string]interface{} {
	stats["n_rotatelefts"] = llrb.n_rotatelefts
	stats["n_rotaterights"] = llrb.n_rotaterights
	stats["n_flips"] = llrb.n_flips
	return stats
}

// Log full statistics, if humanize is true counters are logged in human
// readable format as well.
func (llrb *LLRB[K, V]) Log(humanize bool) {
	llrb.Logstats(llrb.logprefix, llrb.Fullstats(), humanize)
}
