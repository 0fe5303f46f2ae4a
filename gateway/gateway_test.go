package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smithbhavsar/ChatpataAI/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurants(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/restaurants", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.Restaurant{
			{ID: 1, Name: "Green Earth Kitchen", Cuisine: "Healthy", IsVegetarian: true, Rating: 4.6, PriceRange: "$$"},
			{ID: 2, Name: "The Fusion House", Cuisine: "Fusion", Rating: 4.2, PriceRange: "$$$"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	list, err := c.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Green Earth Kitchen", list[0].Name)
	assert.True(t, list[0].IsVegetarian)

	t.Run("second read hits the cache", func(t *testing.T) {
		_, err := c.ListRestaurants(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		c.InvalidateRestaurants()
		_, err := c.ListRestaurants(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestMenuCacheExpires(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/menu-items/7", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.MenuItem{
			{ID: 1, RestaurantID: 7, Name: "Spicy Chicken Ramen", Price: 16.99, Calories: 680},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 30*time.Millisecond)

	_, err := c.ListMenuItems(context.Background(), 7)
	require.NoError(t, err)
	_, err = c.ListMenuItems(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	time.Sleep(50 * time.Millisecond)

	items, err := c.ListMenuItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(2), hits.Load())
}

func TestColdFetchesForDifferentQueriesAreIndependent(t *testing.T) {
	restaurantStarted := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/restaurants":
			close(restaurantStarted)
			<-release
			json.NewEncoder(w).Encode([]entity.Restaurant{{ID: 1, Name: "Green Earth Kitchen"}})
		case "/menu-items/7":
			json.NewEncoder(w).Encode([]entity.MenuItem{{ID: 1, RestaurantID: 7, Name: "Latte"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	restaurantDone := make(chan error, 1)
	go func() {
		_, err := c.ListRestaurants(context.Background())
		restaurantDone <- err
	}()
	<-restaurantStarted

	// the menu fetch must complete while the restaurant fetch is still in
	// flight, not queue behind it
	items, err := c.ListMenuItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)

	close(release)
	require.NoError(t, <-restaurantDone)
}

func TestSameKeyMissesCoalesce(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		json.NewEncoder(w).Encode([]entity.MenuItem{{ID: 1, RestaurantID: 7}})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.ListMenuItems(context.Background(), 7)
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestGatewayErrorOnUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	_, err := c.ListRestaurants(context.Background())
	require.Error(t, err)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusInternalServerError, gwErr.Status)
	assert.Equal(t, "list restaurants", gwErr.Op)
	assert.Error(t, gwErr.Unwrap())
}

func TestGatewayErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, 5*time.Minute)

	_, err := c.ListMenuItems(context.Background(), 1)
	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.Zero(t, gwErr.Status)
	assert.Error(t, gwErr.Unwrap())
}

func TestAbandonedRequestIsCancelled(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.ListRestaurants(ctx)
	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		var body placeOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "42", body.CustomerID)
		assert.Equal(t, int64(7), body.RestaurantID)
		assert.Equal(t, "T3", body.TableNumber)
		require.Len(t, body.Items, 1)
		assert.Equal(t, 2, body.Items[0].Quantity)

		json.NewEncoder(w).Encode(entity.OrderConfirmation{
			OrderID: "ord-1", Status: entity.OrderPending, TotalAmount: 37.98,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	lines := []entity.OrderLine{{MenuItemID: 1, Name: "Grilled Salmon Bowl", UnitPrice: 18.99, Quantity: 2}}
	conf, err := c.PlaceOrder(context.Background(), "42", 7, "T3", "", lines)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", conf.OrderID)
	assert.Equal(t, entity.OrderPending, conf.Status)
}

func TestListUnbilledOrdersAndBills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/unbilled":
			require.Equal(t, http.MethodPost, r.Method)
			var body unbilledRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "42", body.CustomerID)
			assert.Equal(t, int64(7), body.RestaurantID)
			json.NewEncoder(w).Encode([]entity.Order{
				{ID: "ord-1", Status: entity.OrderPreparing, TableNumber: "T3"},
			})
		case "/bills/42":
			require.Equal(t, http.MethodGet, r.Method)
			json.NewEncoder(w).Encode([]entity.Bill{
				{ID: "bill-1", Amount: 21.99, OrderIDs: []string{"ord-0"}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Minute)

	orders, err := c.ListUnbilledOrders(context.Background(), "42", 7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderPreparing, orders[0].Status)

	bills, err := c.ListBills(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, 21.99, bills[0].Amount)
}
