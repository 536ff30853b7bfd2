package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d with a unit scaled to its magnitude:
// microseconds below a millisecond, milliseconds below a second, and the
// standard Go string form otherwise. The driver CLI's verbose result line
// uses this so a fast calculation on a small index doesn't print as "0s".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
