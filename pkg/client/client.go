package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"skydash/pkg/consts"

	"github.com/sirupsen/logrus"
)

type Config struct {
	BaseURL string
	APIKey  string
}

// Call describes one finished upstream request. URL never contains the api key.
type Call struct {
	Endpoint string
	URL      string
	Status   int
	Duration time.Duration
	Err      error
}

type Observer interface {
	Observe(ctx context.Context, c Call)
}

type Option func(*Client)

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// New builds a client for the given upstream. A nil httpClient means http.DefaultClient.
func New(cfg Config, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = consts.DefaultBaseURL
	}

	c := &Client{cfg: cfg, http: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues an authenticated GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params map[string]string, out any) error {
	query := make(map[string]string, len(params)+1)
	for k, v := range params {
		query[k] = v
	}
	query[consts.ApiKey] = c.cfg.APIKey

	started := time.Now()
	call := Call{Endpoint: endpoint}
	defer func() {
		call.Duration = time.Since(started)
		if c.observer != nil {
			c.observer.Observe(ctx, call)
		}
	}()

	u, err := makeRequest(c.cfg.BaseURL+path, query)
	if err != nil {
		call.Err = &UnknownError{Err: err}
		return call.Err
	}
	call.URL = redactKey(u)

	logrus.Infof("request made to: %s", call.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		call.Err = &UnknownError{Err: err}
		return call.Err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithField("url", call.URL).Errorf("API Error: %s", err)
		call.Err = &UpstreamError{Message: GenericUpstreamMessage, Err: err}
		return call.Err
	}
	defer resp.Body.Close()

	call.Status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		call.Err = &UpstreamError{StatusCode: resp.StatusCode, Message: GenericUpstreamMessage, Err: err}
		return call.Err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"url":    call.URL,
			"status": resp.StatusCode,
		}).Errorf("API Error: %s", body)
		call.Err = newUpstreamError(resp.StatusCode, body)
		return call.Err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithField("url", call.URL).Errorf("API Error: undecodable body: %s", err)
		call.Err = &UnknownError{Err: err}
		return call.Err
	}

	return nil
}

func makeRequest(baseUrl string, params map[string]string) (string, error) {
	ur, err := url.Parse(baseUrl)
	if err != nil {
		return "", err
	}

	q := ur.Query()
	for k, v := range params {
		q.Set(k, v)
	}

	ur.RawQuery = q.Encode()
	return ur.String(), nil
}

func redactKey(raw string) string {
	ur, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	q := ur.Query()
	if q.Has(consts.ApiKey) {
		q.Set(consts.ApiKey, "REDACTED")
	}
	ur.RawQuery = q.Encode()
	return ur.String()
}
