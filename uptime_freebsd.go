//go:build freebsd

package uptime

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	backendName      = "freebsd-kern-boottime"
	backendPrecision = time.Microsecond
)

// Swappable for tests.
var (
	sysctlBoottime = func() (*unix.Timeval, error) {
		return unix.SysctlTimeval("kern.boottime")
	}
	wallClock    = time.Now
	clockGettime = unix.ClockGettime
)

// queryUptime computes now minus kern.boottime, clamping a negative
// difference to zero. FreeBSD exposes boot time through the same sysctl wire
// format as darwin.
func queryUptime() (time.Duration, error) {
	tv, err := sysctlBoottime()
	if err != nil {
		return 0, &SyscallError{Call: "sysctl kern.boottime", Err: err}
	}
	boot := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	d := wallClock().Sub(boot)
	if d < 0 {
		d = 0
	}
	return d, nil
}

// queryAwake reads CLOCK_UPTIME, FreeBSD's monotonic time-since-boot clock.
func queryAwake() (time.Duration, error) {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_UPTIME, &ts); err != nil {
		return 0, &SyscallError{Call: "clock_gettime", Err: err}
	}
	return time.Duration(ts.Nano()), nil
}
