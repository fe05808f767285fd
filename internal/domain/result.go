package domain

import "time"

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeAPIError       OutcomeKind = "api_error"
	OutcomeDecodeError    OutcomeKind = "decode_error"
	OutcomeTransportError OutcomeKind = "transport_error"
)

// UnknownError is reported when a non-200 body carries no "error" field.
const UnknownError = "Unknown error"

// Outcome is the classified result of probing one item. Only the fields
// relevant to Kind are set: IsPrime for success, Message for api and
// transport errors.
type Outcome struct {
	Item       Item
	Kind       OutcomeKind
	IsPrime    bool
	Message    string
	StatusCode int
	Elapsed    time.Duration
}

func Success(item Item, status int, isPrime bool, elapsed time.Duration) Outcome {
	return Outcome{Item: item, Kind: OutcomeSuccess, StatusCode: status, IsPrime: isPrime, Elapsed: elapsed}
}

func APIError(item Item, status int, msg string, elapsed time.Duration) Outcome {
	return Outcome{Item: item, Kind: OutcomeAPIError, StatusCode: status, Message: msg, Elapsed: elapsed}
}

func DecodeError(item Item, status int, elapsed time.Duration) Outcome {
	return Outcome{Item: item, Kind: OutcomeDecodeError, StatusCode: status, Elapsed: elapsed}
}

func TransportError(item Item, err error, elapsed time.Duration) Outcome {
	msg := "unknown failure"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Outcome{Item: item, Kind: OutcomeTransportError, Message: msg, Elapsed: elapsed}
}

// ElapsedMillis returns the round trip in fractional milliseconds.
func (o Outcome) ElapsedMillis() float64 {
	return float64(o.Elapsed) / float64(time.Millisecond)
}

func (o Outcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}
