package llrb

import "sync/atomic"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbtree/bst"

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled,
// if applications want log information for llrb components
// call this function with "self" or "all" or "llrb" as argument.
// "all" enables logging for the underlying bst as well.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "llrb", "self":
			atomic.StoreInt64(&logok, 1)
		case "all":
			atomic.StoreInt64(&logok, 1)
			bst.LogComponents("all")
		}
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Errorf(format, v...)
	}
}
