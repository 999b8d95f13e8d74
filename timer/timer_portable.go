//go:build !windows && !linux

package timer

import (
	"runtime"
	"time"
)

func sysSleep(seconds float64) error {
	t := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	<-t.C
	return nil
}

func sysYield() {
	runtime.Gosched()
}
