// Package llrbtree implement ordered {key,value} trees held in memory,
// and necessary tools and libraries.
//
// api:
//
// Interface definitions, comparators and errors shared by the trees.
//
// bst:
//
// Ordered binary tree with pluggable hooks to compare keys, construct
// nodes and restructure sub-trees after every insert.
//
// dict:
//
// Unsorted list of {key,value} entries searched linearly. Reference
// index for testing and benchmarking the trees.
//
// lib:
//
// Convinience functions that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// llrb:
//
// A version of Left Leaning Red Black tree for sorting and retrieving
// {key,value} entries, built as hooks over bst. Tree height stays within
// 2*log2(n+1).
//
// tools/llrb:
//
// Command line to benchmark lookups and load random data into llrb.
package llrbtree
