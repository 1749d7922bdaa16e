// Package rest reads the catalog's products table from a PostgREST
// endpoint, such as the one Supabase exposes under /rest/v1.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/IvanBrykalov/catalogcache/catalog"
)

// DefaultTimeout bounds a single request when no client is supplied.
const DefaultTimeout = 15 * time.Second

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rest: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Store implements catalog.Store over HTTP.
type Store struct {
	base   *url.URL
	apiKey string
	client *http.Client
}

// Option customizes a Store.
type Option func(*Store)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option { return func(s *Store) { s.client = c } }

// New returns a Store for the PostgREST root at baseURL
// (e.g. https://xyz.supabase.co/rest/v1). apiKey is sent both as the
// "apikey" header and as a bearer token; it may be empty.
func New(baseURL, apiKey string, opts ...Option) (*Store, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rest: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("rest: base url %q must be absolute", baseURL)
	}
	s := &Store{
		base:   u,
		apiKey: apiKey,
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// endpoint builds the products query:
// ?select=<columns>&active=eq.true&order=name.asc
func (s *Store) endpoint() string {
	q := url.Values{}
	q.Set("select", strings.Join(catalog.Columns, ","))
	q.Set("active", "eq.true")
	q.Set("order", catalog.OrderBy+".asc")

	u := *s.base
	u.Path = u.Path + "/" + catalog.Table
	u.RawQuery = q.Encode()
	return u.String()
}

// row mirrors the JSON PostgREST returns; flavor and the text columns may
// be null.
type row struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Flavor      *string `json:"flavor"`
	Category    *string `json:"category"`
	Size        *string `json:"size"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Fragile     bool    `json:"fragile"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageurl"`
	ImageAlt    *string `json:"imagealt"`
	Active      bool    `json:"active"`
}

func (r row) product() catalog.Product {
	return catalog.Product{
		ID:          r.ID,
		Name:        r.Name,
		Brand:       r.Brand,
		Flavor:      deref(r.Flavor),
		Category:    deref(r.Category),
		Size:        deref(r.Size),
		Price:       r.Price,
		Stock:       r.Stock,
		Fragile:     r.Fragile,
		Description: deref(r.Description),
		ImageURL:    deref(r.ImageURL),
		ImageAlt:    deref(r.ImageAlt),
		Active:      r.Active,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListActiveProducts implements catalog.Store.
func (s *Store) ListActiveProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest: get products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("rest: decode products: %w", err)
	}
	products := make([]catalog.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.product())
	}
	return products, nil
}

var _ catalog.Store = (*Store)(nil)
