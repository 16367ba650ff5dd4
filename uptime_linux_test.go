//go:build linux

package uptime

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestQueryUptimeSimulated(t *testing.T) {
	orig := clockGettime
	defer func() { clockGettime = orig }()

	tests := []struct {
		name string
		ts   unix.Timespec
		want time.Duration
	}{
		{"just booted", unix.Timespec{}, 0},
		{"sub-second", unix.Timespec{Nsec: 500000000}, 500 * time.Millisecond},
		{"one hour one minute one second", unix.Timespec{Sec: 3661}, 3661 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClock int32
			clockGettime = func(clockid int32, ts *unix.Timespec) error {
				gotClock = clockid
				*ts = tt.ts
				return nil
			}

			d, err := Get()
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if d != tt.want {
				t.Errorf("Get() = %v, want %v", d, tt.want)
			}
			if gotClock != unix.CLOCK_BOOTTIME {
				t.Errorf("Get() read clock %d, want CLOCK_BOOTTIME", gotClock)
			}
		})
	}
}

func TestQueryAwakeUsesMonotonicClock(t *testing.T) {
	orig := clockGettime
	defer func() { clockGettime = orig }()

	var gotClock int32
	clockGettime = func(clockid int32, ts *unix.Timespec) error {
		gotClock = clockid
		*ts = unix.Timespec{Sec: 42}
		return nil
	}

	d, err := Awake()
	if err != nil {
		t.Fatalf("Awake() error: %v", err)
	}
	if d != 42*time.Second {
		t.Errorf("Awake() = %v, want 42s", d)
	}
	if gotClock != unix.CLOCK_MONOTONIC {
		t.Errorf("Awake() read clock %d, want CLOCK_MONOTONIC", gotClock)
	}
}

func TestQueryUptimeSyscallFailure(t *testing.T) {
	orig := clockGettime
	defer func() { clockGettime = orig }()

	clockGettime = func(clockid int32, ts *unix.Timespec) error {
		return unix.EINVAL
	}

	_, err := Get()
	if err == nil {
		t.Fatal("Get() succeeded, want error")
	}
	var se *SyscallError
	if !errors.As(err, &se) {
		t.Fatalf("Get() error = %T, want *SyscallError", err)
	}
	if !errors.Is(err, unix.EINVAL) {
		t.Errorf("Get() error does not wrap the errno: %v", err)
	}
}
