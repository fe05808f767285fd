package ports

// BodyDescriber turns a body that failed JSON decoding into a short
// human description for the logs. Empty means nothing useful was found.
type BodyDescriber interface {
	Describe(body []byte) string
}
