package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/logging"
	"github.com/muurk/pokedex/internal/version"
)

const (
	// DefaultBaseURL is the public catalog API root
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is decoded
	maxBodySize = 8 << 20
)

// Client is a read-only HTTP client for the catalog API
type Client struct {
	// BaseURL is the API root without a trailing slash
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client for the given API root.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  "pokedex/" + version.Version,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// ListPokemon fetches one index page of the catalog.
func (c *Client) ListPokemon(ctx context.Context, window catalog.PageWindow) ([]catalog.Summary, error) {
	if err := window.Validate(); err != nil {
		return nil, NewValidationError(err)
	}

	q := url.Values{}
	q.Set("offset", strconv.Itoa(window.Offset))
	q.Set("limit", strconv.Itoa(window.Limit))
	reqURL := c.BaseURL + "/pokemon?" + q.Encode()

	var page pageResponse
	if err := c.getJSON(ctx, reqURL, &page); err != nil {
		return nil, err
	}
	return toSummaries(page.Results), nil
}

// PokemonByURL resolves a summary's detail URL to a full entry.
func (c *Client) PokemonByURL(ctx context.Context, detailURL string) (catalog.Entry, error) {
	var rec pokemonRecord
	if err := c.getJSON(ctx, detailURL, &rec); err != nil {
		return catalog.Entry{}, err
	}
	return rec.toEntry(), nil
}

// Pokemon looks up a single entry by identifier or exact name.
// Any non-success status is reported as ErrTypeNotFound.
func (c *Client) Pokemon(ctx context.Context, ident string) (catalog.Entry, error) {
	ident = strings.ToLower(strings.TrimSpace(ident))
	if ident == "" {
		return catalog.Entry{}, NewValidationError(fmt.Errorf("identifier must not be empty"))
	}
	reqURL := c.BaseURL + "/pokemon/" + url.PathEscape(ident)

	var rec pokemonRecord
	if err := c.getJSON(ctx, reqURL, &rec); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Type == ErrTypeHTTP {
			return catalog.Entry{}, NewNotFoundError(reqURL, apiErr.StatusCode)
		}
		return catalog.Entry{}, err
	}
	return rec.toEntry(), nil
}

// TypeMembers fetches every entry tagged with category, in list order.
func (c *Client) TypeMembers(ctx context.Context, category string) ([]catalog.Summary, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, NewValidationError(fmt.Errorf("category must not be empty"))
	}
	reqURL := c.BaseURL + "/type/" + url.PathEscape(category)

	var resp typeResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	members := make([]namedResource, 0, len(resp.Pokemon))
	for _, p := range resp.Pokemon {
		members = append(members, p.Pokemon)
	}
	return toSummaries(members), nil
}

// getJSON performs a GET and decodes a JSON body into v.
func (c *Client) getJSON(ctx context.Context, reqURL string, v any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		logging.LogRequest(http.MethodGet, reqURL, status, time.Since(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return NewNetworkError("failed to create GET request", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("GET request failed", reqURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return NewHTTPError(resp.StatusCode, reqURL)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(v); err != nil {
		return NewParseError("failed to parse JSON response", reqURL, err)
	}

	return nil
}
