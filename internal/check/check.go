package check

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
	"github.com/rojanmagar2001/primeprobe/internal/model"
	"github.com/rojanmagar2001/primeprobe/internal/ports"
)

const (
	DefaultBaseURL   = "http://localhost:3000/check-prime"
	DefaultUserAgent = "primeprobe/0.1"

	// NumberParam is the query parameter the collaborator reads.
	NumberParam = "number"
)

var (
	ErrNotObject      = errors.New("response is not a JSON object")
	ErrMissingIsPrime = errors.New(`response has no boolean "isPrime" field`)
)

type Checker struct {
	Client      ports.HTTPClient
	BaseURL     string
	UserAgent   string
	MaxBodyRead int64
	Describer   ports.BodyDescriber
	Log         zerolog.Logger
}

func NewChecker(client ports.HTTPClient, baseURL, userAgent string, log zerolog.Logger) *Checker {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Checker{
		Client:      client,
		BaseURL:     baseURL,
		UserAgent:   userAgent,
		MaxBodyRead: 1 << 20, // 1MB safety cap
		Log:         log,
	}
}

// BuildURL sets the number query parameter on the base URL, percent-encoding
// the item. Other parameters already on the base URL are kept.
func (c *Checker) BuildURL(item domain.Item) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set(NumberParam, item.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Check issues one GET for item and classifies the response.
func (c *Checker) Check(ctx context.Context, item domain.Item) domain.Outcome {
	link, err := c.BuildURL(item)
	if err != nil {
		return domain.TransportError(item, err, 0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return domain.TransportError(item, fmt.Errorf("new request: %w", err), 0)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return domain.TransportError(item, err, elapsed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBodyRead))
	if err != nil {
		return domain.TransportError(item, fmt.Errorf("read body: %w", err), elapsed)
	}

	return c.classify(item, resp.StatusCode, body, elapsed)
}

func (c *Checker) classify(item domain.Item, status int, body []byte, elapsed time.Duration) domain.Outcome {
	if !json.Valid(body) {
		if c.Describer != nil && c.Log.GetLevel() <= zerolog.DebugLevel {
			c.Log.Debug().
				Str("number", item.String()).
				Int("status", status).
				Str("body", c.Describer.Describe(body)).
				Msg("response is not JSON")
		}
		return domain.DecodeError(item, status, elapsed)
	}

	var pr model.PrimeResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		// Valid JSON that is not an object (array, string, number, null).
		if status != http.StatusOK {
			return domain.APIError(item, status, domain.UnknownError, elapsed)
		}
		return domain.TransportError(item, ErrNotObject, elapsed)
	}

	if status != http.StatusOK {
		msg, ok := pr.ErrorText()
		if !ok {
			msg = domain.UnknownError
		}
		return domain.APIError(item, status, msg, elapsed)
	}

	isPrime, ok := pr.PrimeFlag()
	if !ok {
		return domain.TransportError(item, ErrMissingIsPrime, elapsed)
	}
	return domain.Success(item, status, isPrime, elapsed)
}
