//go:build windows

package uptime

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows counts interrupt time in system time units of 100 nanoseconds.
const systemTimeUnit = 100

var kernel32 = windows.NewLazySystemDLL("kernel32.dll")

// readInterruptTime invokes one of the realtimeapiset interrupt-time queries,
// which write a 100 ns tick count through their single out parameter.
// checkRet distinguishes the BOOL-returning QueryUnbiasedInterruptTime from
// the void variants. Find is checked first so a missing export (older
// Windows) comes back as an error instead of a panic.
func readInterruptTime(proc *windows.LazyProc, checkRet bool) (time.Duration, error) {
	if err := proc.Find(); err != nil {
		return 0, &SyscallError{Call: proc.Name, Err: err}
	}
	var ticks uint64
	r1, _, callErr := proc.Call(uintptr(unsafe.Pointer(&ticks)))
	if checkRet && r1 == 0 {
		return 0, &SyscallError{Call: proc.Name, Err: callErr}
	}
	return time.Duration(ticks * systemTimeUnit), nil
}
