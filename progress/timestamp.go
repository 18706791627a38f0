// Package progress converts timestamps and renders the playback progress line.
package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// Seconds parses "M:SS" or "H:MM:SS" into total seconds.
// Any other shape, or a component that is not a non-negative integer, yields 0.
func Seconds(timestamp string) int {
	parts := strings.Split(strings.TrimSpace(timestamp), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0
		}
		values[i] = v
	}

	if len(values) == 2 {
		return 60*values[0] + values[1]
	}
	return 3600*values[0] + 60*values[1] + values[2]
}

// Format renders seconds as "M:SS". Minutes are not wrapped into hours.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Timestamp renders seconds the way the platform prints durations: "M:SS", or "H:MM:SS" past an hour.
func Timestamp(seconds int) string {
	if seconds < 3600 {
		return Format(seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
