package listing

import (
	"fmt"
	"time"
)

const (
	BYTE     = 1
	KILOBYTE = 1024 * BYTE
	MEGABYTE = 1024 * KILOBYTE
	GIGABYTE = 1024 * MEGABYTE

	timeFormat = "Jan 02 15:04"
)

// FormatPermissions pads a permission string to the usual 10 columns.
func FormatPermissions(permissions string) string {
	return fmt.Sprintf("%-10s", permissions)
}

// FormatTime renders a modification time the way ls does, in local time.
func FormatTime(t time.Time) string {
	return t.Local().Format(timeFormat)
}

// HumanReadableSize scales a byte count at 1024 boundaries, keeping one
// decimal place above bytes.
func HumanReadableSize(size int64) string {
	switch {
	case size < KILOBYTE:
		return fmt.Sprintf("%dB", size)
	case size < MEGABYTE:
		return fmt.Sprintf("%.1fK", float64(size)/KILOBYTE)
	case size < GIGABYTE:
		return fmt.Sprintf("%.1fM", float64(size)/MEGABYTE)
	default:
		return fmt.Sprintf("%.1fG", float64(size)/GIGABYTE)
	}
}
