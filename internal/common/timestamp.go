package common

import (
	"fmt"
	"time"
)

// FormatTimestamp renders a caption offset as m:ss, or h:mm:ss past the hour.
func FormatTimestamp(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
