package llrb

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/llrbtree/bst"

// Defaultsettings for llrb instance, same as bst.Defaultsettings()
// with histogram sized for balanced trees.
//
// "duplicate" (string, default: "overwrite")
//		"overwrite" or "reject", refer to bst.Defaultsettings().
//
// "depth.histogram" (int64, default: 64)
//		Height of an LLRB tree is bounded by 2*log2(n+1), 64 levels
//		accommodate over 4 billion entries.
func Defaultsettings() s.Settings {
	setts := bst.Defaultsettings()
	setts["depth.histogram"] = int64(64)
	return setts
}
