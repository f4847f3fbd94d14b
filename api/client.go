package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vedic-admin/utils"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://vedicapi.azurewebsites.net/api"

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	ProxyAddr  string
}

// Client talks to the content API. Responses wrapped as {"data": ...} are
// unwrapped and non-2xx responses are turned into *Error.
type Client struct {
	rc *resty.Client
}

func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	transport, err := utils.NewTransport(opts.ProxyAddr)
	if err != nil {
		return nil, err
	}

	rc := resty.New()
	rc.SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTransport(transport).
		SetTimeout(opts.Timeout).
		SetLogger(disableLogger{}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	rc.SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(30 * time.Second).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			if resp.StatusCode() == http.StatusTooManyRequests {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
						return seconds, nil
					}
					if t, err := http.ParseTime(retryAfter); err == nil {
						return time.Until(t), nil
					}
				}
				return 3 * time.Second, nil
			}
			return 0, nil
		}).
		// Only 429 is retried: a create that failed mid-flight may have
		// reached the backend.
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() == http.StatusTooManyRequests
		})
	rc.OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
		if r.IsError() {
			return newError(r)
		}
		return nil
	})

	return &Client{rc: rc}, nil
}

func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.request(ctx).Get(path)
	if err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	resp, err := c.request(ctx).SetBody(body).Put(path)
	if err != nil {
		return err
	}
	return decode(resp.Body(), out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.request(ctx).Delete(path)
	return err
}

// decode unmarshals the payload of body into out, unwrapping the
// {"data": ...} envelope when present.
func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	payload := unwrap(body)
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func unwrap(body []byte) []byte {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return body
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return body
}

type disableLogger struct{}

func (d disableLogger) Errorf(string, ...interface{}) {}
func (d disableLogger) Warnf(string, ...interface{})  {}
func (d disableLogger) Debugf(string, ...interface{}) {}
