// Package uptime reports how long the host machine has been running.
//
// The package exposes a single point-in-time measurement: each call issues
// one read-only system call and returns a fresh result. Nothing is cached,
// sampled, or retried, and no state is kept between calls, so the package is
// safe to use from any number of goroutines.
//
// Exactly one platform backend is compiled into a binary, selected by build
// target. On Windows the default backend reads the millisecond tick counter;
// building with -tags win10plus swaps in the 100 ns interrupt-time counter
// available on Windows 10 and later. The choice is baked in at build time —
// a binary never probes the running OS version to pick a precision.
package uptime

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupported is returned on build targets that have no uptime backend.
// The package never fabricates a value on such targets.
var ErrUnsupported = errors.New("uptime: unsupported platform")

// SyscallError reports a failed system call. Call names the OS-level
// operation (e.g. "GetTickCount64", "sysctl kern.boottime") and Err carries
// the underlying cause.
type SyscallError struct {
	Call string
	Err  error
}

func (e *SyscallError) Error() string {
	return fmt.Sprintf("uptime: %s: %v", e.Call, e.Err)
}

func (e *SyscallError) Unwrap() error {
	return e.Err
}

// Info identifies the backend compiled into this binary.
type Info struct {
	// Name is a stable identifier for the backend, e.g. "linux-clock-boottime"
	// or "windows-tick-count".
	Name string

	// Precision is the resolution of the raw value the backend reads. It is
	// zero on unsupported targets.
	Precision time.Duration
}

// Get returns the time elapsed since the system booted, including time spent
// in sleep or hibernation where the underlying clock counts it. The result is
// never negative; a result of zero is valid on a just-booted system.
func Get() (time.Duration, error) {
	return queryUptime()
}

// Awake returns the time elapsed since boot excluding time the system spent
// suspended or hibernated. Targets without a suitable clock return
// ErrUnsupported even when Get succeeds.
func Awake() (time.Duration, error) {
	return queryAwake()
}

// BootTime returns the wall-clock instant the system booted, derived from the
// current time and Get. On backends whose raw source is itself a wall-clock
// boot timestamp this round-trips the kernel's value; on monotonic backends
// it is an approximation good to within the backend's precision.
func BootTime() (time.Time, error) {
	d, err := Get()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(-d), nil
}

// Backend reports which backend this binary was built with.
func Backend() Info {
	return Info{Name: backendName, Precision: backendPrecision}
}
