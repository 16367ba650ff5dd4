//go:build darwin

package uptime

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	backendName      = "darwin-kern-boottime"
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

// queryUptime computes now minus the kernel's kern.boottime timestamp. The
// boot timestamp is wall-clock based, so a clock step after boot (NTP, manual
// adjustment) can push the difference negative; that case is clamped to zero
// rather than surfaced.
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

// queryAwake reads CLOCK_UPTIME_RAW, which does not advance while the machine
// sleeps.
func queryAwake() (time.Duration, error) {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_UPTIME_RAW, &ts); err != nil {
		return 0, &SyscallError{Call: "clock_gettime", Err: err}
	}
	return time.Duration(ts.Nano()), nil
}
