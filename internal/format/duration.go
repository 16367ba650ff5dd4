// Package format provides shared time formatting helpers for the uptime CLI.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Duration renders d as a human-readable uptime string like
// "3 days, 2 hours, 1 minute". Sub-second remainders are dropped; anything
// below one second renders as "0 seconds". Negative input is treated as zero.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	add := func(n int64, unit string) {
		switch {
		case n == 1:
			parts = append(parts, fmt.Sprintf("1 %s", unit))
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}
	add(days, "day")
	add(hours, "hour")
	add(minutes, "minute")
	add(seconds, "second")

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

// Compact renders d in the short form "4d3h12m", rounding to the nearest
// minute. Durations under a minute render as "0m".
func Compact(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
