package transcript

import (
	"fmt"
	"time"
)

// FormatOffset renders an offset from audio start as zero-padded
// HH:MM:SS. Hours wrap at 24 the way wall-clock formatting of an
// elapsed duration does; recordings past a day wrap rather than grow a
// wider hour field. Negative offsets clamp to zero.
func FormatOffset(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h := secs / 3600 % 24
	m := secs / 60 % 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
