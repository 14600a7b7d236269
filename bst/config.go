package bst

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/llrbtree/api"

// Defaultsettings for a tree instance.
//
// "duplicate" (string, default: "overwrite")
//		Policy for inserting a key that is already present.
//		"overwrite" will replace the value in place, "reject" will
//		fail the insert with api.ErrorDuplicateKey and leave the tree
//		untouched.
//
// "depth.histogram" (int64, default: 256)
//		Upper bound for depth histograms maintained for inserts and
//		lookups, deeper samples are accounted in the last bucket.
func Defaultsettings() s.Settings {
	return s.Settings{
		"duplicate":       api.DuplicateOverwrite,
		"depth.histogram": int64(256),
	}
}
