// Package api define types and interfaces common to the ordered
// trees implemented by this module.
package api

// Comparator compares two keys, return a negative number if a sorts
// before b, zero if they are equal and a positive number if a sorts
// after b. Comparators must implement a strict total order, trees do
// not detect a broken comparator.
type Comparator[K any] func(a, b K) int

// Outcome of an Insert call.
type Outcome int

const (
	// Inserted a new entry.
	Inserted Outcome = iota + 1
	// Overwritten value of an existing entry, in place.
	Overwritten
	// Rejected insert for an existing key, index is left untouched.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Overwritten:
		return "overwritten"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Index interface for managing key,value pairs in sort order.
type Index[K, V any] interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Insert a new entry. If key is already present in the index,
	// configured duplicate policy decides the outcome.
	Insert(key K, value V) (Outcome, error)

	// Lookup key, return its value. Missing key is not an error,
	// ok shall be false.
	Lookup(key K) (value V, ok bool)

	// Depth return the number of nodes on the longest path from root.
	// Empty index has zero depth.
	Depth() int64
}

// IndexMeta interface for introspecting an index.
type IndexMeta interface {
	// Stats return a set of index statistics.
	Stats() map[string]interface{}

	// Fullstats return an involved set of index statistics, calling this
	// function will walk the full tree.
	Fullstats() map[string]interface{}

	// Validate check whether index is in sane state, panic otherwise.
	Validate()

	// Log current statistics, if humanize is true log some or all of the
	// stats in human readable format.
	Log(humanize bool)
}
