//go:build linux

package uptime

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	backendName      = "linux-clock-boottime"
	backendPrecision = time.Nanosecond
)

// clockGettime is swappable so tests can feed simulated clock readings.
var clockGettime = unix.ClockGettime

// queryUptime reads CLOCK_BOOTTIME, which counts from boot, keeps running
// across suspend, and is immune to wall-clock adjustments.
func queryUptime() (time.Duration, error) {
	return readClock(unix.CLOCK_BOOTTIME)
}

// queryAwake reads CLOCK_MONOTONIC, which stops while the system is
// suspended.
func queryAwake() (time.Duration, error) {
	return readClock(unix.CLOCK_MONOTONIC)
}

func readClock(clockid int32) (time.Duration, error) {
	var ts unix.Timespec
	if err := clockGettime(clockid, &ts); err != nil {
		return 0, &SyscallError{Call: "clock_gettime", Err: err}
	}
	return time.Duration(ts.Nano()), nil
}
