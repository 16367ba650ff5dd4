//go:build windows && win10plus

package uptime

import (
	"errors"
	"testing"
	"time"
)

func TestQueryUptimeSimulatedInterruptTime(t *testing.T) {
	orig := readBiasedInterruptTime
	defer func() { readBiasedInterruptTime = orig }()

	tests := []struct {
		name string
		d    time.Duration
	}{
		{"just booted", 0},
		{"sub-millisecond", 700 * time.Nanosecond},
		{"one hour one minute one second", 3661 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBiasedInterruptTime = func() (time.Duration, error) { return tt.d, nil }

			d, err := Get()
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if d != tt.d {
				t.Errorf("Get() = %v, want %v", d, tt.d)
			}
		})
	}
}

func TestQueryUptimeMissingExport(t *testing.T) {
	orig := readBiasedInterruptTime
	defer func() { readBiasedInterruptTime = orig }()

	cause := errors.New("QueryInterruptTime not found")
	readBiasedInterruptTime = func() (time.Duration, error) {
		return 0, &SyscallError{Call: "QueryInterruptTime", Err: cause}
	}

	_, err := Get()
	if err == nil {
		t.Fatal("Get() succeeded, want error")
	}
	var se *SyscallError
	if !errors.As(err, &se) {
		t.Fatalf("Get() error = %T, want *SyscallError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Get() error does not wrap the cause: %v", err)
	}
}

// TestWin10PlusBackendMarker pins the compile-time identity of the
// high-precision backend so it is distinguishable from a default build.
func TestWin10PlusBackendMarker(t *testing.T) {
	info := Backend()
	if info.Name != "windows-interrupt-time" {
		t.Errorf("Backend().Name = %q, want windows-interrupt-time", info.Name)
	}
	if info.Precision != 100*time.Nanosecond {
		t.Errorf("Backend().Precision = %v, want 100ns", info.Precision)
	}
}
