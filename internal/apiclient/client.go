// internal/apiclient/client.go
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/productlist/internal/models"
)

const maxErrorBody = 256

// Client talks to the remote product catalog.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logrus.FieldLogger
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the overall request timeout. Zero keeps the http.Client default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GET /products
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, &url.URL{Path: "products"}, "", &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GET /products/{id}
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	// PathEscape keeps dot segments, which ResolveReference would collapse.
	if id == "" || id == "." || id == ".." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var product *models.Product
	ref := &url.URL{Path: "products/" + id, RawPath: "products/" + url.PathEscape(id)}
	if err := c.get(ctx, ref, id, &product); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &DecodeError{URL: c.baseURL.ResolveReference(ref).String(), Err: errors.New("null product body")}
	}
	return product, nil
}

// get issues a GET against ref resolved on the base URL and decodes the JSON
// body into out. A non-empty productID turns a 404 into a NotFoundError.
func (c *Client) get(ctx context.Context, ref *url.URL, productID string, out interface{}) error {
	endpoint := c.baseURL.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("url", endpoint).Warn("Catalog request failed")
		return &NetworkError{Op: http.MethodGet, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"method":   http.MethodGet,
		"url":      endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Milliseconds(),
	}).Debug("Catalog request completed")

	if resp.StatusCode == http.StatusNotFound && productID != "" {
		io.Copy(io.Discard, resp.Body)
		return &NotFoundError{ID: productID}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: http.MethodGet, URL: endpoint, Err: err}
	}
	// Unmarshal rejects trailing data after the top-level value.
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: endpoint, Err: err}
	}
	return nil
}
