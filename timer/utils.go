package timer

import "fmt"

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// FormatTotal converts a number of seconds into h:mm:ss once it exceeds an
// hour, mm:ss otherwise. Used for the accumulated totals display.
func FormatTotal(sec int) string {
	if sec < 0 {
		sec = 0
	}
	if sec < 3600 {
		return FormatTime(sec)
	}
	return fmt.Sprintf("%d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}
