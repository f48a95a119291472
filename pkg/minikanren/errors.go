package minikanren

import "github.com/golang/glog"

// maxVarID bounds the 32-bit variable identifier space.
const maxVarID = VarID(1<<31 - 1)

// fatalf reports a programmer-facing, unrecoverable condition. It is
// never reached from goal evaluation itself — failure (no answer) is not
// an error and never calls this.
func fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}
