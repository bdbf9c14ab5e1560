//go:build gldebug && linux

package abi

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// owner is the id of the thread that made the context current.
var owner atomic.Int64

func bindThread(on bool) {
	if !on {
		owner.Store(0)
		return
	}
	owner.Store(int64(unix.Gettid()))
}

func checkThread() {
	want := owner.Load()
	if want == 0 {
		return
	}
	if got := int64(unix.Gettid()); got != want {
		panic(fmt.Sprintf("glhal: context is current on thread %d, called from thread %d", want, got))
	}
}
