package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-read-later"

// HTTPClient embeds *resty.Client so callers configure and issue requests
// on it directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that gives up on a request
// after timeout. A zero timeout means no limit.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
