package features

import "time"

// timeNow is a package-level variable for testability.
// Tests replace it to pin the archive date.
var timeNow = time.Now

// DateLayout is the calendar date format used in archive folder names.
const DateLayout = "2006-01-02"

// Today returns the current UTC calendar date as YYYY-MM-DD.
func Today() string {
	return timeNow().UTC().Format(DateLayout)
}
