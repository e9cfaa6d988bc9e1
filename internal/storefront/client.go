package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yobeidat/obeidat-motors-backend/internal/cars"
	"github.com/yobeidat/obeidat-motors-backend/pkg/types"
)

// ErrNoID is returned by GetCar when no id is supplied; the detail view
// renders nothing until a car is selected.
var ErrNoID = errors.New("car id is required")

// NotFoundError marks a car the backend reports as missing, as opposed to a
// transport or server failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("car %s not found", e.ID)
}

const defaultClientTTL = 30 * time.Second

// Client is the storefront's read-side access to the inventory API.
// Responses are cached for a short window and concurrent fetches for the same
// key are coalesced into a single request. An abandoned caller does not
// cancel the underlying fetch, so the response still lands in the cache.
type Client struct {
	baseURL string
	httpc   *http.Client
	ttl     time.Duration
	group   singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	payload any
	expires time.Time
}

// NewClient builds a storefront client for the given API base URL. A nil
// httpClient falls back to http.DefaultClient, a zero ttl to 30 seconds.
func NewClient(baseURL string, httpClient *http.Client, ttl time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if ttl <= 0 {
		ttl = defaultClientTTL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpClient,
		ttl:     ttl,
		cache:   make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// ListCars fetches the full inventory. Callers receive their own slice, so
// mutating an element never reaches the cached copy.
func (c *Client) ListCars(ctx context.Context) ([]cars.CarDTO, error) {
	const key = "cars:list"
	if cached, ok := c.cached(key); ok {
		return cloneCarDTOs(cached.([]cars.CarDTO)), nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	result, err, _ := c.group.Do(key, func() (any, error) {
		var dtos []cars.CarDTO
		if err := c.getJSON(fetchCtx, "/api/cars", &dtos); err != nil {
			return nil, err
		}
		c.put(key, dtos)
		return dtos, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneCarDTOs(result.([]cars.CarDTO)), nil
}

func cloneCarDTOs(in []cars.CarDTO) []cars.CarDTO {
	out := make([]cars.CarDTO, len(in))
	copy(out, in)
	return out
}

// GetCar fetches a single listing by id.
func (c *Client) GetCar(ctx context.Context, id string) (*cars.CarDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNoID
	}

	key := "cars:detail:" + id
	if cached, ok := c.cached(key); ok {
		dto := cached.(cars.CarDTO)
		return &dto, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	result, err, _ := c.group.Do(key, func() (any, error) {
		var dto cars.CarDTO
		if err := c.getJSON(fetchCtx, "/api/cars/"+url.PathEscape(id), &dto); err != nil {
			if errors.Is(err, errStatusNotFound) {
				return nil, &NotFoundError{ID: id}
			}
			return nil, err
		}
		c.put(key, dto)
		return dto, nil
	})
	if err != nil {
		return nil, err
	}
	dto := result.(cars.CarDTO)
	return &dto, nil
}

// Invalidate drops every cached response.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheEntry)
}

var errStatusNotFound = errors.New("not found")

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errStatusNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr types.APIError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("inventory api %s: %s", resp.Status, apiErr.Message)
		}
		return fmt.Errorf("inventory api %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) cached(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || c.now().After(entry.expires) {
		delete(c.cache, key)
		return nil, false
	}
	return entry.payload, true
}

func (c *Client) put(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{payload: payload, expires: c.now().Add(c.ttl)}
}
