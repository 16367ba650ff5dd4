//go:build windows && !win10plus

package uptime

import (
	"time"
)

const (
	backendName      = "windows-tick-count"
	backendPrecision = time.Millisecond
)

var (
	procGetTickCount64             = kernel32.NewProc("GetTickCount64")
	procQueryUnbiasedInterruptTime = kernel32.NewProc("QueryUnbiasedInterruptTime")
)

// getTickCount64 is swappable so tests can pin the tick counter.
var getTickCount64 = func() (uint64, error) {
	if err := procGetTickCount64.Find(); err != nil {
		return 0, err
	}
	ret, _, _ := procGetTickCount64.Call()
	return uint64(ret), nil
}

// queryUptime reads the kernel's millisecond tick counter, which includes
// time spent in sleep and hibernation. The counter is 64-bit unsigned and
// resets only on reboot; it wraps after roughly 584 million years of uptime,
// which is documented as a non-concern rather than masked.
func queryUptime() (time.Duration, error) {
	ticks, err := getTickCount64()
	if err != nil {
		return 0, &SyscallError{Call: "GetTickCount64", Err: err}
	}
	return time.Duration(ticks) * time.Millisecond, nil
}

// queryAwake reads the unbiased interrupt-time count, which excludes time the
// system spent suspended. Available since Windows 7, so the legacy backend
// can rely on it.
func queryAwake() (time.Duration, error) {
	return readInterruptTime(procQueryUnbiasedInterruptTime, true)
}
