package gateway

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
)

type Config struct {
	BackendURL     string
	Prefix         string
	Timeout        time.Duration
	AllowedOrigins []string
}

type Gateway struct {
	config Config
	client apiclient.HTTPClient
	tokens apiclient.TokenSource
}

func New(cfg Config, client apiclient.HTTPClient, tokens apiclient.TokenSource) *Gateway {
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = apiclient.DefaultTimeout
	}
	return &Gateway{config: cfg, client: client, tokens: tokens}
}

// OriginAllowed reports whether a browser request from origin may act as the
// logged-in user. Requests without an Origin header are not cross-site.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range allowed {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, g.config.Prefix)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := g.config.BackendURL + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	log.Printf("[gateway] %s %s -> %s", r.Method, r.URL.Path, url)

	ctx, cancel := context.WithTimeout(r.Context(), g.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.Method, url, r.Body)
	if err != nil {
		log.Printf("[gateway] failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	injected := false
	if req.Header.Get("Authorization") == "" && g.tokens != nil &&
		OriginAllowed(g.config.AllowedOrigins, r.Header.Get("Origin")) {
		if token, ok := g.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			injected = true
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[gateway] failed to proxy to %s: %v", g.config.BackendURL, err)
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		http.Error(w, err.Error(), status)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && injected {
		if err := g.tokens.Invalidate(r.Context()); err != nil {
			log.Printf("[gateway] failed to clear session after 401: %v", err)
		}
	}

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[gateway] failed to copy response: %v", err)
	}
}
