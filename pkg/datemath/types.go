package datemath

import "time"

// DateFormatISO is the calendar-date layout used in prompts.
const DateFormatISO = "2006-01-02"

// DateContext anchors relative expressions for the model.
type DateContext struct {
	Now       time.Time
	Today     string
	Weekday   string
	Tomorrow  string
	WeekStart string // Monday
	WeekEnd   string // Sunday
	Timezone  string
}
