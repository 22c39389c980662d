package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/url"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrPageTooLarge  = errors.New("page too large")
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 30 * time.Second

const maxPageBytes = 8 << 20

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// Client fetches listing pages with a browser TLS fingerprint. Requests go
// through the rotator's proxies when one is set.
type Client struct {
	http       tls_client.HttpClient
	rotator    *Rotator
	userAgents []string
	maxBytes   int64

	mu   sync.Mutex
	rand *rand.Rand
}

func NewClient(rotator *Rotator, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, _ := fhttpcookiejar.New(nil)

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(int(timeout.Seconds())),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:       client,
		rotator:    rotator,
		userAgents: append([]string{}, userAgents...),
		maxBytes:   maxPageBytes,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	proxy, err := c.rotateProxy()
	if err != nil {
		return nil, err
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.randomUA())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

// Fetch GETs target and returns the body. Status codes of 400 and above are
// reported as ErrRequestFailed and bodies over the page limit as
// ErrPageTooLarge.
func (c *Client) Fetch(ctx context.Context, target string, headers map[string]string) ([]byte, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9,de;q=0.8")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrPageTooLarge, c.maxBytes)
	}
	return body, nil
}

func (c *Client) rotateProxy() (*url.URL, error) {
	if c.rotator == nil {
		return nil, nil
	}
	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, err
	}
	if err := c.http.SetProxy(proxy.String()); err != nil {
		return nil, fmt.Errorf("set proxy: %w", err)
	}
	return proxy, nil
}

func (c *Client) randomUA() string {
	if len(c.userAgents) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userAgents[c.rand.Intn(len(c.userAgents))]
}
