// Package bst implement an ordered binary tree of key,value entries
// that can be extended through hooks.
//
//   * Each key shall be unique within the tree, duplicate keys are
//     either overwritten or rejected, refer to Defaultsettings().
//   * Comparison, node construction and post-insert restructuring are
//     delegated to Hooks. Default hooks give a plain binary search tree.
//   * Not safe for concurrent use, callers shall serialize access.
//
// Balanced trees, like package llrb, supply their own Hooks and reuse
// the same insert, lookup and depth algorithms.
package bst
