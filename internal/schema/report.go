// Package schema defines the data structures for the uptime CLI's output
// formats.
package schema

import (
	"os"
	"runtime"
	"time"

	"uptime/internal/format"
)

// Report is the JSON document emitted by "uptime --json". One report
// describes a single query; there is no history.
type Report struct {
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
	Hostname      string  `json:"hostname"`
	Backend       string  `json:"backend"`
	Precision     string  `json:"precision"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Uptime        string  `json:"uptime"`
	BootTimeUTC   string  `json:"boot_time_utc"`
	TimestampUTC  string  `json:"timestamp_utc"`

	// AwakeSeconds is set only when the backend can separate suspended time
	// from total uptime.
	AwakeSeconds *float64 `json:"awake_seconds,omitempty"`
}

// NewReport builds a Report for a measurement taken at queriedAt. awake may
// be nil when the platform has no excluding-suspend clock. backend and
// precision come from the library's compile-time backend marker.
func NewReport(d time.Duration, awake *time.Duration, queriedAt time.Time, backend string, precision time.Duration) *Report {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	r := &Report{
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		Hostname:      hostname,
		Backend:       backend,
		Precision:     precision.String(),
		UptimeSeconds: d.Seconds(),
		Uptime:        format.Duration(d),
		BootTimeUTC:   queriedAt.Add(-d).UTC().Format(time.RFC3339),
		TimestampUTC:  queriedAt.UTC().Format(time.RFC3339),
	}
	if awake != nil {
		s := awake.Seconds()
		r.AwakeSeconds = &s
	}
	return r
}
