package httpclient

import (
	"net/http"
	"time"
)

type Client struct {
	c *http.Client
}

// New returns a client with the given overall timeout. Zero means no
// timeout, which is net/http's default.
func New(timeout time.Duration) *Client {
	return &Client{c: &http.Client{Timeout: timeout}}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.c.Do(req)
}

func (c *Client) Timeout() time.Duration { return c.c.Timeout }
