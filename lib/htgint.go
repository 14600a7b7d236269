package lib

import "fmt"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram, typically used to sample
// depth of tree nodes.
type HistogramInt64 struct {
	// stats
	n         int64
	minval    int64
	maxval    int64
	sum       int64
	histogram []int64
	// setup
	init  bool
	from  int64
	till  int64
	width int64
}

// NewhistorgramInt64 return a new histogram object. Samples less than
// from and samples greater than or equal to till are accounted in the
// first and last bucket.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	if !h.init || sample < h.minval {
		h.minval, h.init = sample, true
	}
	if h.maxval < sample {
		h.maxval = sample
	}

	switch {
	case sample < h.from:
		h.histogram[0]++
	case sample >= h.till:
		h.histogram[len(h.histogram)-1]++
	default:
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Stats return cumulative count of samples less than each key. Key "+"
// account for all samples.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	last := len(h.histogram) - 1
	for last >= 0 && h.histogram[last] == 0 {
		last--
	}
	cumm := int64(0)
	for j := 0; j <= last; j++ {
		cumm += h.histogram[j]
		if j == last {
			m["+"] = cumm
			break
		}
		m[strconv.Itoa(int(h.from+(int64(j)*h.width)))] = cumm
	}
	return m
}

// Fullstats includes samples,min,max,mean along with Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":   h.Samples(),
		"min":       h.Min(),
		"max":       h.Max(),
		"mean":      h.Mean(),
		"histogram": hmap,
	}
}

// Logstring return Fullstats as loggable string, buckets in sort order.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	ss := []string{}
	for _, k := range []string{"max", "mean", "min", "samples"} {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, k, stats[k]))
	}
	histogram := stats["histogram"].(map[string]interface{})
	hkeys := []int{}
	for k := range histogram {
		if k == "+" {
			continue
		}
		n, _ := strconv.Atoi(k)
		hkeys = append(hkeys, n)
	}
	sort.Ints(hkeys)
	hs := []string{}
	for _, k := range hkeys {
		ks := strconv.Itoa(k)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, ks, histogram[ks]))
	}
	if v, ok := histogram["+"]; ok {
		hs = append(hs, fmt.Sprintf(`"+": %v`, v))
	}
	s := "{" + strings.Join(hs, ",") + "}"
	ss = append(ss, fmt.Sprintf(`"histogram": %v`, s))
	return "{" + strings.Join(ss, ",") + "}"
}
