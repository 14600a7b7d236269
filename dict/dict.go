// Package dict implement an unsorted list of key,value pairs searched
// linearly. Primarily meant as reference for testing and benchmarking
// more useful tree algorithms.
package dict

import "sort"

import "github.com/bnclabs/llrbtree/api"

// Dict is a reference data structure, for validation purpose.
type Dict[K, V any] struct {
	id      string
	compare api.Comparator[K]
	entries []dictentry[K, V]

	n_lookups int64
	n_visits  int64
	n_updates int64
}

type dictentry[K, V any] struct {
	key   K
	value V
}

// NewDict create a new linear list for indexing key,value.
func NewDict[K, V any](id string, compare api.Comparator[K]) *Dict[K, V] {
	if compare == nil {
		panic("NewDict(): nil comparator")
	}
	return &Dict[K, V]{
		id:      id,
		compare: compare,
		entries: make([]dictentry[K, V], 0, 1024),
	}
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.Index{} interface.
func (d *Dict[K, V]) Count() int64 {
	return int64(len(d.entries))
}

// Insert implement api.Index{} interface. Existing keys are always
// overwritten.
func (d *Dict[K, V]) Insert(key K, value V) (api.Outcome, error) {
	if off := d.search(key); off >= 0 {
		d.entries[off].value = value
		d.n_updates++
		return api.Overwritten, nil
	}
	d.entries = append(d.entries, dictentry[K, V]{key: key, value: value})
	return api.Inserted, nil
}

// Load append {key,value} without checking for an existing key, caller
// shall make sure keys are unique.
func (d *Dict[K, V]) Load(key K, value V) {
	d.entries = append(d.entries, dictentry[K, V]{key: key, value: value})
}

// Lookup implement api.Index{} interface.
func (d *Dict[K, V]) Lookup(key K) (value V, ok bool) {
	d.n_lookups++
	if off := d.search(key); off >= 0 {
		return d.entries[off].value, true
	}
	return value, false
}

// Depth implement api.Index{} interface, a missing key is compared
// with every entry.
func (d *Dict[K, V]) Depth() int64 {
	return int64(len(d.entries))
}

func (d *Dict[K, V]) search(key K) int {
	for off := range d.entries {
		d.n_visits++
		if d.compare(d.entries[off].key, key) == 0 {
			return off
		}
	}
	return -1
}

// Iterate over all entries in sort order until callb return false.
// Entries are sorted on every call.
func (d *Dict[K, V]) Iterate(callb func(key K, value V) bool) {
	entries := make([]dictentry[K, V], len(d.entries))
	copy(entries, d.entries)
	sort.Slice(entries, func(i, j int) bool {
		return d.compare(entries[i].key, entries[j].key) < 0
	})
	for _, entry := range entries {
		if !callb(entry.key, entry.value) {
			return
		}
	}
}

// Stats return number of entries, lookups and entries compared.
func (d *Dict[K, V]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":   d.Count(),
		"n_lookups": d.n_lookups,
		"n_visits":  d.n_visits,
		"n_updates": d.n_updates,
	}
}
