package model

import "encoding/json"

// PrimeResponse is the collaborator's JSON body. Fields are kept raw so
// the checker can tell "absent" from "wrong type".
type PrimeResponse struct {
	Number  json.RawMessage `json:"number,omitempty"`
	IsPrime json.RawMessage `json:"isPrime,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// ErrorText renders the "error" field as printed text: strings unquoted,
// any other JSON value verbatim. ok is false when the field is absent or null.
func (r PrimeResponse) ErrorText() (text string, ok bool) {
	if isNull(r.Error) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Error, &s); err == nil {
		return s, true
	}
	return string(r.Error), true
}

// PrimeFlag returns the decoded isPrime value and whether it was a JSON boolean.
func (r PrimeResponse) PrimeFlag() (value, ok bool) {
	if isNull(r.IsPrime) {
		return false, false
	}
	if err := json.Unmarshal(r.IsPrime, &value); err != nil {
		return false, false
	}
	return value, true
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
