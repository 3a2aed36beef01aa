package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 8 << 20
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type TokenSource interface {
	Token() (string, bool)
	Invalidate(ctx context.Context) error
}

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
}

type Client struct {
	baseURL string
	timeout time.Duration
	maxBody int64
	http    HTTPClient
	tokens  TokenSource
}

func New(cfg Config, httpClient HTTPClient, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		maxBody: maxBody,
		http:    httpClient,
		tokens:  tokens,
	}
}

type Request struct {
	Method string
	Path   string
	Body   interface{}
	Auth   bool
}

// Do performs req and returns the raw 2xx body. Any failure is an *Error.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	var token string
	if req.Auth {
		var ok bool
		if c.tokens != nil {
			token, ok = c.tokens.Token()
		}
		if !ok {
			return nil, &Error{Kind: KindUnauthorized, Message: "not logged in"}
		}
	}

	var payload io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: "invalid request body", Err: err}
		}
		payload = bytes.NewReader(encoded)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, req.Method, c.baseURL+req.Path, payload)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "invalid request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, classify(ctx, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: "response too large"}
	}

	if resp.StatusCode == http.StatusUnauthorized && req.Auth {
		if c.tokens != nil {
			if err := c.tokens.Invalidate(ctx); err != nil {
				log.Printf("[apiclient] failed to clear session after 401: %v", err)
			}
		}
		return nil, &Error{
			Kind:    KindUnauthorized,
			Status:  resp.StatusCode,
			Message: messageFromBody(resp.StatusCode, body),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: messageFromBody(resp.StatusCode, body),
		}
	}

	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: "malformed JSON response"}
	}
	return body, nil
}

func Decode(body []byte, v interface{}) error {
	data := body
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if inner, ok := wrapped["data"]; ok {
			data = inner
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &Error{Kind: KindDecode, Message: "unexpected response shape", Err: err}
	}
	return nil
}

func Call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T
	body, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	err = Decode(body, &out)
	return out, err
}

func classify(parent context.Context, err error) *Error {
	switch {
	case errors.Is(parent.Err(), context.Canceled):
		return &Error{Kind: KindCanceled, Message: "request canceled", Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}
	return &Error{Kind: KindNetwork, Message: "network unavailable", Err: err}
}
