// Package gateway translates the five logical data operations into calls
// against the upstream ChatpataAI REST API and normalizes every failure
// into a single error kind. No retries, backoff or circuit breaking; the
// views render a terse error state instead.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/smithbhavsar/ChatpataAI/entity"
)

// Error wraps any remote failure, transport errors and non-2xx statuses
// alike, with the underlying cause attached.
type Error struct {
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s: upstream returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client is the remote data gateway. Restaurant and menu listings go
// through the query cache; order and bill views are always fetched fresh.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *queryCache
}

func New(baseURL string, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   newQueryCache(cacheTTL),
	}
}

const keyRestaurants = "restaurants"

func menuKey(restaurantID int64) string {
	return "menu:" + strconv.FormatInt(restaurantID, 10)
}

// cachedList serves a listing from the cache, fetching on a miss. Misses
// for the same key coalesce behind one upstream call; fetches for
// different keys run concurrently and are independent.
func (c *Client) cachedList(ctx context.Context, key, path, op string, out any) error {
	if c.cache.get(key, out) {
		return nil
	}

	mu := c.cache.fillLock(key)
	mu.Lock()
	defer mu.Unlock()
	if c.cache.get(key, out) {
		return nil
	}

	if err := c.do(ctx, http.MethodGet, path, nil, out, op); err != nil {
		return err
	}
	c.cache.set(key, out)
	return nil
}

// ListRestaurants fetches the restaurant list, served from cache within
// the TTL.
func (c *Client) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	if err := c.cachedList(ctx, keyRestaurants, "/restaurants", "list restaurants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMenuItems fetches one restaurant's menu, served from cache within
// the TTL.
func (c *Client) ListMenuItems(ctx context.Context, restaurantID int64) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	path := fmt.Sprintf("/menu-items/%d", restaurantID)
	if err := c.cachedList(ctx, menuKey(restaurantID), path, "list menu items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type placeOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	RestaurantID    int64              `json:"restaurantId"`
	TableNumber     string             `json:"tableNumber,omitempty"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
	Items           []entity.OrderLine `json:"items"`
}

// PlaceOrder submits the cart as a one-way write.
func (c *Client) PlaceOrder(ctx context.Context, customerID string, restaurantID int64, tableNumber, specialRequests string, items []entity.OrderLine) (*entity.OrderConfirmation, error) {
	body := placeOrderRequest{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		TableNumber:     tableNumber,
		SpecialRequests: specialRequests,
		Items:           items,
	}
	var out entity.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/orders", body, &out, "place order"); err != nil {
		return nil, err
	}
	return &out, nil
}

type unbilledRequest struct {
	CustomerID   string `json:"customerId"`
	RestaurantID int64  `json:"restaurantId"`
}

// ListUnbilledOrders fetches a customer's open orders at a restaurant.
// The upstream exposes this read as a POST.
func (c *Client) ListUnbilledOrders(ctx context.Context, customerID string, restaurantID int64) ([]entity.Order, error) {
	body := unbilledRequest{CustomerID: customerID, RestaurantID: restaurantID}
	var out []entity.Order
	if err := c.do(ctx, http.MethodPost, "/orders/unbilled", body, &out, "list unbilled orders"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBills fetches a customer's billing history.
func (c *Client) ListBills(ctx context.Context, customerID string) ([]entity.Bill, error) {
	var out []entity.Bill
	path := "/bills/" + customerID
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "list bills"); err != nil {
		return nil, err
	}
	return out, nil
}

// InvalidateRestaurants forces the next restaurant listing to refetch.
func (c *Client) InvalidateRestaurants() {
	c.cache.invalidate(keyRestaurants)
}

// InvalidateMenu forces the next menu listing for a restaurant to refetch.
func (c *Client) InvalidateMenu(restaurantID int64) {
	c.cache.invalidate(menuKey(restaurantID))
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Err: err}
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &Error{Op: op, Status: res.StatusCode, Err: fmt.Errorf("unexpected status %s", res.Status)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}
