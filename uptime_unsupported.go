//go:build !windows && !linux && !darwin && !freebsd

package uptime

import "time"

const (
	backendName      = "unsupported"
	backendPrecision = time.Duration(0)
)

// queryUptime fails on targets with no backend. It never guesses.
func queryUptime() (time.Duration, error) {
	return 0, ErrUnsupported
}

func queryAwake() (time.Duration, error) {
	return 0, ErrUnsupported
}
