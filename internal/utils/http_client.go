package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpRetryCount   = 2
	httpRetryWait    = 200 * time.Millisecond
	httpRetryMaxWait = 2 * time.Second
)

// HTTPClient embeds *resty.Client so callers get the full request API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A zero timeout leaves
// resty's default. Only GET requests are retried, on transport errors and
// on 502/503/504 answers.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(httpRetryCount).
		SetRetryWaitTime(httpRetryWait).
		SetRetryMaxWaitTime(httpRetryMaxWait).
		AddRetryCondition(retryIdempotentRead)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func retryIdempotentRead(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
