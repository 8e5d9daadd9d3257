//go:build windows

package app

import "os"

func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
