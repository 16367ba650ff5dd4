//go:build windows && win10plus

package uptime

import (
	"time"

	"golang.org/x/sys/windows"
)

const (
	backendName      = "windows-interrupt-time"
	backendPrecision = 100 * time.Nanosecond
)

var (
	kernelbase                            = windows.NewLazySystemDLL("kernelbase.dll")
	procQueryInterruptTime                = kernelbase.NewProc("QueryInterruptTime")
	procQueryUnbiasedInterruptTimePrecise = kernelbase.NewProc("QueryUnbiasedInterruptTimePrecise")
)

// Swappable for tests.
var (
	readBiasedInterruptTime = func() (time.Duration, error) {
		return readInterruptTime(procQueryInterruptTime, false)
	}
	readUnbiasedInterruptTime = func() (time.Duration, error) {
		return readInterruptTime(procQueryUnbiasedInterruptTimePrecise, false)
	}
)

// queryUptime reads the interrupt-time count, which advances in 100 ns units
// from boot and keeps counting across sleep and hibernation. The export
// exists only on Windows 10 and later; a binary carrying this backend is not
// expected to run on older systems, and on one it reports the missing export
// as an error rather than falling back.
func queryUptime() (time.Duration, error) {
	return readBiasedInterruptTime()
}

// queryAwake reads the precise unbiased interrupt-time count, which excludes
// time spent suspended.
func queryAwake() (time.Duration, error) {
	return readUnbiasedInterruptTime()
}
