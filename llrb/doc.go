// Package llrb implement a self-balancing verions of binary-tree, called,
// LLRB (Left Leaning Red Black).
//
//   * Index key, value.
//   * Each key shall be unique within the index sample-set.
//   * Height of the tree is bounded by 2*log2(n+1).
//   * Reads and writes are not serialized, callers shall serialize
//     access to the tree.
//
// LLRB reuse the traversal of package bst and supply hooks to color
// new nodes and rebalance the tree on the way up from an insert.
package llrb
