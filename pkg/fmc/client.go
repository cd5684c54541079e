// Package fmc is a minimal client for the Firepower Management Center REST
// API: token authentication, device lookup, object listing, and static
// route creation. One token is obtained at login and reused for all calls.
package fmc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fmc-tools/fmcroute/pkg/util"
)

const (
	platformBase = "/api/fmc_platform/v1"
	configBase   = "/api/fmc_config/v1"

	tokenHeader  = "X-auth-access-token"
	domainHeader = "DOMAIN_UUID"
)

// Client talks to one FMC instance. Not safe for concurrent use; the
// migration pipeline is strictly sequential.
type Client struct {
	host   string
	httpc  *http.Client
	token  string
	domain string
}

// Option configures a Client.
type Option func(*Client)

// WithInsecureTLS disables certificate verification. FMC ships with a
// self-signed certificate, so this is the common case for lab migrations.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.httpc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// NewClient creates a client for the given FMC host. The host may be a bare
// hostname/IP (https is assumed) or a full URL.
func NewClient(host string, opts ...Option) *Client {
	c := &Client{
		host:  host,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) baseURL() string {
	if strings.Contains(c.host, "://") {
		return strings.TrimRight(c.host, "/")
	}
	return "https://" + c.host
}

// DomainUUID returns the domain resolved at login.
func (c *Client) DomainUUID() string {
	return c.domain
}

// Login authenticates with basic auth and stores the access token and
// domain UUID returned in the response headers.
func (c *Client) Login(ctx context.Context, username, password string) error {
	url := c.baseURL() + platformBase + "/auth/generatetoken"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrAuthFailed, err)
	}
	req.SetBasicAuth(username, password)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: HTTP %d: %s", util.ErrAuthFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.token = resp.Header.Get(tokenHeader)
	c.domain = resp.Header.Get(domainHeader)
	if c.token == "" {
		return fmt.Errorf("%w: no access token in response", util.ErrAuthFailed)
	}
	util.Debugf("authenticated to %s, domain %s", c.host, c.domain)
	return nil
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.httpError(http.MethodGet, path, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postJSON issues an authenticated POST with a JSON body. The response body
// is discarded on success.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.httpError(http.MethodPost, path, resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) httpError(method, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &util.HTTPError{
		Method: method,
		URL:    c.baseURL() + path,
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(body)),
	}
}
