package domain

// Day indices used by the weekly schedule (0 = Monday ... 6 = Sunday)
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// DaysInWeek is the number of schedulable day indices
const DaysInWeek = 7

// WeekdayNames maps schedule day indices to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayIndexes maps lower-case day names and abbreviations to schedule day indices
var WeekdayIndexes = map[string]int{
	"monday": Monday, "mon": Monday,
	"tuesday": Tuesday, "tue": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday,
	"thursday": Thursday, "thu": Thursday,
	"friday": Friday, "fri": Friday,
	"saturday": Saturday, "sat": Saturday,
	"sunday": Sunday, "sun": Sunday,
}

// DefaultContactID is the reserved identifier of the fallback contact
const DefaultContactID = "DEFAULT_CONTACT"

// DefaultContacts and DefaultSchedule describe the roster used when no
// roster source overrides them
const (
	DefaultContacts = "EDWARD,JOHNNY_R,CHRIS,JOHNNATHAN"
	DefaultSchedule = "0=JOHNNY_R,1=EDWARD,2=CHRIS,3=CHRIS,4=EDWARD,5=CHRIS,6=EDWARD"
)

// DefaultCallControlURL is the TwiML document played to outbound test calls
const DefaultCallControlURL = "http://demo.twilio.com/docs/voice.xml"

// StatusCallbackEvents are the call progress events requested for outbound calls
var StatusCallbackEvents = []string{"initiated", "ringing", "answered", "completed"}

// ErrorMessage is spoken to the caller when no contact can be reached
const ErrorMessage = "Sorry, we encountered an error. Please try again later."

// IsValidDay reports whether day is a schedulable day index
func IsValidDay(day int) bool {
	return day >= Monday && day <= Sunday
}

// DayIndex converts a time.Weekday value (Sunday = 0) to a schedule day index (Monday = 0)
func DayIndex(weekday int) int {
	return (weekday + 6) % DaysInWeek
}

// Day returns a pointer to day, for callers that resolve an explicit day
func Day(day int) *int {
	return &day
}
