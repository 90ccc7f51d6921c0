package entity

// FallbackReason explains why a resolution did not use the scheduled contact.
type FallbackReason string

const (
	FallbackNone           FallbackReason = ""
	FallbackUnscheduledDay FallbackReason = "unscheduled_day"
	FallbackNotInDirectory FallbackReason = "not_in_directory"
	FallbackNoPhone        FallbackReason = "no_phone"
	FallbackInternalFault  FallbackReason = "internal_fault"
)

// Assignment is the result of resolving the on-call contact for a day.
type Assignment struct {
	ContactID   string
	Phone       string
	Weekday     string
	Day         int
	ScheduledID string
	Fallback    FallbackReason
}

func (a Assignment) HasPhone() bool {
	return a.Phone != ""
}

func (a Assignment) IsFallback() bool {
	return a.Fallback != FallbackNone
}

// RouteKind selects the call-control response for an inbound call.
type RouteKind int

const (
	RouteForward RouteKind = iota + 1
	RouteSpokenError
)

func (k RouteKind) String() string {
	switch k {
	case RouteForward:
		return "forward"
	case RouteSpokenError:
		return "spoken_error"
	default:
		return "unknown"
	}
}

// RouteDecision is what to do with an inbound call: forward it to Number, or
// speak Message and hang up.
type RouteDecision struct {
	Kind       RouteKind
	Number     string
	Message    string
	Reason     string
	Assignment Assignment
}

func ForwardTo(a Assignment) RouteDecision {
	return RouteDecision{
		Kind:       RouteForward,
		Number:     a.Phone,
		Assignment: a,
	}
}

func SpokenError(a Assignment, message, reason string) RouteDecision {
	return RouteDecision{
		Kind:       RouteSpokenError,
		Message:    message,
		Reason:     reason,
		Assignment: a,
	}
}
