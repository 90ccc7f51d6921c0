package entity

// OutboundCall holds the parameters of one provider call.
type OutboundCall struct {
	ContactID            string
	To                   string
	From                 string
	ControlURL           string
	StatusCallbackURL    string
	StatusCallbackMethod string
	StatusEvents         []string
}

// CallStatusEvent is an asynchronous call progress notification from the provider.
type CallStatusEvent struct {
	CallSid      string
	CallStatus   string
	From         string
	To           string
	Direction    string
	CallDuration string
	Timestamp    string
}

type PlacedCall struct {
	ContactID string
	To        string
	CallSid   string
}

type FailedCall struct {
	ContactID string
	To        string
	Err       error
}

// BatchReport summarizes one pass over the directory.
type BatchReport struct {
	BatchID      string
	Placed       []PlacedCall
	Failed       []FailedCall
	Skipped      []string
	NotAttempted []string
}

func (r BatchReport) Attempted() int {
	return len(r.Placed) + len(r.Failed)
}
